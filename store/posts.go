package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/qiblog/quill/models"
)

// PostFields holds the caller-supplied fields for creating a post.
type PostFields struct {
	Title          string
	Slug           string
	Content        string
	Excerpt        string
	CategoryID     string
	Status         models.Status
	SEOTitle       string
	SEODescription string
	FeaturedImage  string
}

func (f *PostFields) validate() error {
	if f.Title == "" || f.Slug == "" || f.Content == "" || f.CategoryID == "" {
		return fmt.Errorf("missing required post fields: %w", ErrInvalidArgument)
	}
	if !f.Status.Valid() {
		return fmt.Errorf("unknown status %q: %w", f.Status, ErrInvalidArgument)
	}
	return nil
}

// CreatePost generates a fresh id, stamps timestamps and writes the
// primary record plus its slug index entry in a single transaction.
func (s *Store) CreatePost(fields PostFields) (*models.Post, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	post := &models.Post{
		ID:             NewID(),
		Title:          fields.Title,
		Slug:           fields.Slug,
		Content:        fields.Content,
		Excerpt:        fields.Excerpt,
		CategoryID:     fields.CategoryID,
		Status:         fields.Status,
		SEOTitle:       fields.SEOTitle,
		SEODescription: fields.SEODescription,
		FeaturedImage:  fields.FeaturedImage,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	data, err := s.encode(post)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(BucketCategories)).Get([]byte(post.CategoryID)) == nil {
			return fmt.Errorf("category %q does not exist: %w", post.CategoryID, ErrInvalidArgument)
		}
		slugs := tx.Bucket([]byte(BucketPostSlugs))
		if slugs.Get([]byte(post.Slug)) != nil {
			return fmt.Errorf("post slug %q already in use: %w", post.Slug, ErrInvalidArgument)
		}
		if err := tx.Bucket([]byte(BucketPosts)).Put([]byte(post.ID), data); err != nil {
			return err
		}
		return slugs.Put([]byte(post.Slug), []byte(post.ID))
	})
	if err != nil {
		return nil, txErr(err)
	}

	s.log.Debug().Str("id", post.ID).Str("slug", post.Slug).Msg("post created")
	return post, nil
}

// GetPostByID retrieves a post by its id.
func (s *Store) GetPostByID(id string) (*models.Post, error) {
	return getByID[models.Post](s, BucketPosts, id)
}

// GetPostBySlug retrieves a post through the slug index.
func (s *Store) GetPostBySlug(slug string) (*models.Post, error) {
	return getBySlug[models.Post](s, BucketPosts, BucketPostSlugs, slug)
}

// PostUpdate is a partial update; nil fields are left unchanged.
type PostUpdate struct {
	Title          *string
	Slug           *string
	Content        *string
	Excerpt        *string
	CategoryID     *string
	Status         *models.Status
	SEOTitle       *string
	SEODescription *string
	FeaturedImage  *string
}

func (u *PostUpdate) apply(post *models.Post) {
	if u.Title != nil {
		post.Title = *u.Title
	}
	if u.Slug != nil {
		post.Slug = *u.Slug
	}
	if u.Content != nil {
		post.Content = *u.Content
	}
	if u.Excerpt != nil {
		post.Excerpt = *u.Excerpt
	}
	if u.CategoryID != nil {
		post.CategoryID = *u.CategoryID
	}
	if u.Status != nil {
		post.Status = *u.Status
	}
	if u.SEOTitle != nil {
		post.SEOTitle = *u.SEOTitle
	}
	if u.SEODescription != nil {
		post.SEODescription = *u.SEODescription
	}
	if u.FeaturedImage != nil {
		post.FeaturedImage = *u.FeaturedImage
	}
}

// UpdatePost merges the given fields into the stored post, refreshes
// UpdatedAt and writes back. A slug change deletes the old index entry
// and writes the new one in the same transaction, so the index never
// holds a stale slug.
func (s *Store) UpdatePost(id string, upd PostUpdate) (*models.Post, error) {
	var post models.Post
	err := s.db.Update(func(tx *bolt.Tx) error {
		posts := tx.Bucket([]byte(BucketPosts))
		data := posts.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("post %q: %w", id, ErrNotFound)
		}
		if err := s.decode(data, &post); err != nil {
			return err
		}

		oldSlug := post.Slug
		upd.apply(&post)

		fields := PostFields{
			Title: post.Title, Slug: post.Slug, Content: post.Content,
			CategoryID: post.CategoryID, Status: post.Status,
		}
		if err := fields.validate(); err != nil {
			return err
		}
		if upd.CategoryID != nil {
			if tx.Bucket([]byte(BucketCategories)).Get([]byte(post.CategoryID)) == nil {
				return fmt.Errorf("category %q does not exist: %w", post.CategoryID, ErrInvalidArgument)
			}
		}

		post.UpdatedAt = s.now().UTC()
		if post.UpdatedAt.Before(post.CreatedAt) {
			// UpdatedAt never precedes CreatedAt.
			post.UpdatedAt = post.CreatedAt
		}

		slugs := tx.Bucket([]byte(BucketPostSlugs))
		if post.Slug != oldSlug {
			if slugs.Get([]byte(post.Slug)) != nil {
				return fmt.Errorf("post slug %q already in use: %w", post.Slug, ErrInvalidArgument)
			}
			if err := slugs.Delete([]byte(oldSlug)); err != nil {
				return err
			}
			if err := slugs.Put([]byte(post.Slug), []byte(id)); err != nil {
				return err
			}
		}

		updated, err := s.encode(&post)
		if err != nil {
			return err
		}
		return posts.Put([]byte(id), updated)
	})
	if err != nil {
		return nil, txErr(err)
	}
	return &post, nil
}

// DeletePost removes a post and its slug index entry. Deleting a
// nonexistent id is a no-op.
func (s *Store) DeletePost(id string) error {
	return deleteByID(s, BucketPosts, BucketPostSlugs, id, func(p *models.Post) string {
		return p.Slug
	})
}

// ListAllPosts returns every post in store iteration order.
func (s *Store) ListAllPosts() ([]*models.Post, error) {
	return listAll[models.Post](s, BucketPosts)
}
