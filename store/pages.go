package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/qiblog/quill/models"
)

// PageFields holds the caller-supplied fields for creating a page.
type PageFields struct {
	Title          string
	Slug           string
	Content        string
	Status         models.Status
	SEOTitle       string
	SEODescription string
}

func (f *PageFields) validate() error {
	if f.Title == "" || f.Slug == "" || f.Content == "" {
		return fmt.Errorf("missing required page fields: %w", ErrInvalidArgument)
	}
	if !f.Status.Valid() {
		return fmt.Errorf("unknown status %q: %w", f.Status, ErrInvalidArgument)
	}
	return nil
}

// CreatePage writes a new static page and its slug index entry in a
// single transaction.
func (s *Store) CreatePage(fields PageFields) (*models.Page, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	page := &models.Page{
		ID:             NewID(),
		Title:          fields.Title,
		Slug:           fields.Slug,
		Content:        fields.Content,
		Status:         fields.Status,
		SEOTitle:       fields.SEOTitle,
		SEODescription: fields.SEODescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	data, err := s.encode(page)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		slugs := tx.Bucket([]byte(BucketPageSlugs))
		if slugs.Get([]byte(page.Slug)) != nil {
			return fmt.Errorf("page slug %q already in use: %w", page.Slug, ErrInvalidArgument)
		}
		if err := tx.Bucket([]byte(BucketPages)).Put([]byte(page.ID), data); err != nil {
			return err
		}
		return slugs.Put([]byte(page.Slug), []byte(page.ID))
	})
	if err != nil {
		return nil, txErr(err)
	}

	s.log.Debug().Str("id", page.ID).Str("slug", page.Slug).Msg("page created")
	return page, nil
}

// GetPageByID retrieves a page by its id.
func (s *Store) GetPageByID(id string) (*models.Page, error) {
	return getByID[models.Page](s, BucketPages, id)
}

// GetPageBySlug retrieves a page through the slug index.
func (s *Store) GetPageBySlug(slug string) (*models.Page, error) {
	return getBySlug[models.Page](s, BucketPages, BucketPageSlugs, slug)
}

// PageUpdate is a partial update; nil fields are left unchanged.
type PageUpdate struct {
	Title          *string
	Slug           *string
	Content        *string
	Status         *models.Status
	SEOTitle       *string
	SEODescription *string
}

func (u *PageUpdate) apply(page *models.Page) {
	if u.Title != nil {
		page.Title = *u.Title
	}
	if u.Slug != nil {
		page.Slug = *u.Slug
	}
	if u.Content != nil {
		page.Content = *u.Content
	}
	if u.Status != nil {
		page.Status = *u.Status
	}
	if u.SEOTitle != nil {
		page.SEOTitle = *u.SEOTitle
	}
	if u.SEODescription != nil {
		page.SEODescription = *u.SEODescription
	}
}

// UpdatePage merges the given fields into the stored page, refreshes
// UpdatedAt and keeps the slug index in lockstep on renames.
func (s *Store) UpdatePage(id string, upd PageUpdate) (*models.Page, error) {
	var page models.Page
	err := s.db.Update(func(tx *bolt.Tx) error {
		pages := tx.Bucket([]byte(BucketPages))
		data := pages.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("page %q: %w", id, ErrNotFound)
		}
		if err := s.decode(data, &page); err != nil {
			return err
		}

		oldSlug := page.Slug
		upd.apply(&page)

		fields := PageFields{Title: page.Title, Slug: page.Slug, Content: page.Content, Status: page.Status}
		if err := fields.validate(); err != nil {
			return err
		}

		page.UpdatedAt = s.now().UTC()
		if page.UpdatedAt.Before(page.CreatedAt) {
			// UpdatedAt never precedes CreatedAt.
			page.UpdatedAt = page.CreatedAt
		}

		slugs := tx.Bucket([]byte(BucketPageSlugs))
		if page.Slug != oldSlug {
			if slugs.Get([]byte(page.Slug)) != nil {
				return fmt.Errorf("page slug %q already in use: %w", page.Slug, ErrInvalidArgument)
			}
			if err := slugs.Delete([]byte(oldSlug)); err != nil {
				return err
			}
			if err := slugs.Put([]byte(page.Slug), []byte(id)); err != nil {
				return err
			}
		}

		updated, err := s.encode(&page)
		if err != nil {
			return err
		}
		return pages.Put([]byte(id), updated)
	})
	if err != nil {
		return nil, txErr(err)
	}
	return &page, nil
}

// DeletePage removes a page and its slug index entry. Deleting a
// nonexistent id is a no-op.
func (s *Store) DeletePage(id string) error {
	return deleteByID(s, BucketPages, BucketPageSlugs, id, func(p *models.Page) string {
		return p.Slug
	})
}

// ListAllPages returns every page in store iteration order.
func (s *Store) ListAllPages() ([]*models.Page, error) {
	return listAll[models.Page](s, BucketPages)
}
