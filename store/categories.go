package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/qiblog/quill/models"
)

// CategoryFields holds the caller-supplied fields for creating a category.
type CategoryFields struct {
	Name           string
	Slug           string
	Description    string
	SEOTitle       string
	SEODescription string
}

func (f *CategoryFields) validate() error {
	if f.Name == "" || f.Slug == "" || f.Description == "" {
		return fmt.Errorf("missing required category fields: %w", ErrInvalidArgument)
	}
	return nil
}

// CreateCategory writes a new category and its slug index entry in a
// single transaction.
func (s *Store) CreateCategory(fields CategoryFields) (*models.Category, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}

	cat := &models.Category{
		ID:             NewID(),
		Name:           fields.Name,
		Slug:           fields.Slug,
		Description:    fields.Description,
		SEOTitle:       fields.SEOTitle,
		SEODescription: fields.SEODescription,
		CreatedAt:      s.now().UTC(),
	}

	data, err := s.encode(cat)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		slugs := tx.Bucket([]byte(BucketCatSlugs))
		if slugs.Get([]byte(cat.Slug)) != nil {
			return fmt.Errorf("category slug %q already in use: %w", cat.Slug, ErrInvalidArgument)
		}
		if err := tx.Bucket([]byte(BucketCategories)).Put([]byte(cat.ID), data); err != nil {
			return err
		}
		return slugs.Put([]byte(cat.Slug), []byte(cat.ID))
	})
	if err != nil {
		return nil, txErr(err)
	}

	s.log.Debug().Str("id", cat.ID).Str("slug", cat.Slug).Msg("category created")
	return cat, nil
}

// GetCategoryByID retrieves a category by its id.
func (s *Store) GetCategoryByID(id string) (*models.Category, error) {
	return getByID[models.Category](s, BucketCategories, id)
}

// GetCategoryBySlug retrieves a category through the slug index.
func (s *Store) GetCategoryBySlug(slug string) (*models.Category, error) {
	return getBySlug[models.Category](s, BucketCategories, BucketCatSlugs, slug)
}

// CategoryUpdate is a partial update; nil fields are left unchanged.
type CategoryUpdate struct {
	Name           *string
	Slug           *string
	Description    *string
	SEOTitle       *string
	SEODescription *string
}

func (u *CategoryUpdate) apply(cat *models.Category) {
	if u.Name != nil {
		cat.Name = *u.Name
	}
	if u.Slug != nil {
		cat.Slug = *u.Slug
	}
	if u.Description != nil {
		cat.Description = *u.Description
	}
	if u.SEOTitle != nil {
		cat.SEOTitle = *u.SEOTitle
	}
	if u.SEODescription != nil {
		cat.SEODescription = *u.SEODescription
	}
}

// UpdateCategory merges the given fields into the stored category,
// keeping the slug index in lockstep on renames.
func (s *Store) UpdateCategory(id string, upd CategoryUpdate) (*models.Category, error) {
	var cat models.Category
	err := s.db.Update(func(tx *bolt.Tx) error {
		cats := tx.Bucket([]byte(BucketCategories))
		data := cats.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("category %q: %w", id, ErrNotFound)
		}
		if err := s.decode(data, &cat); err != nil {
			return err
		}

		oldSlug := cat.Slug
		upd.apply(&cat)

		fields := CategoryFields{Name: cat.Name, Slug: cat.Slug, Description: cat.Description}
		if err := fields.validate(); err != nil {
			return err
		}

		slugs := tx.Bucket([]byte(BucketCatSlugs))
		if cat.Slug != oldSlug {
			if slugs.Get([]byte(cat.Slug)) != nil {
				return fmt.Errorf("category slug %q already in use: %w", cat.Slug, ErrInvalidArgument)
			}
			if err := slugs.Delete([]byte(oldSlug)); err != nil {
				return err
			}
			if err := slugs.Put([]byte(cat.Slug), []byte(id)); err != nil {
				return err
			}
		}

		updated, err := s.encode(&cat)
		if err != nil {
			return err
		}
		return cats.Put([]byte(id), updated)
	})
	if err != nil {
		return nil, txErr(err)
	}
	return &cat, nil
}

// DeleteCategory removes a category and its slug index entry. Deleting
// a nonexistent id is a no-op. Posts referencing the category are left
// untouched.
func (s *Store) DeleteCategory(id string) error {
	return deleteByID(s, BucketCategories, BucketCatSlugs, id, func(c *models.Category) string {
		return c.Slug
	})
}

// ListAllCategories returns every category in store iteration order.
func (s *Store) ListAllCategories() ([]*models.Category, error) {
	return listAll[models.Category](s, BucketCategories)
}
