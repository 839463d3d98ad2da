package store

import (
	"fmt"

	"github.com/qiblog/quill/models"
	"github.com/qiblog/quill/utils"
)

// The query engine re-scans the full post set per call. The store is
// assumed to hold a small working set; a maintained
// (status, category, -createdAt, id) range index would replace the
// rescan at scale without changing observable results.

// publishedPosts returns published posts, optionally restricted to a
// category, sorted newest-first with ascending-id tie-break.
func (s *Store) publishedPosts(categoryID string) ([]*models.Post, error) {
	all, err := s.ListAllPosts()
	if err != nil {
		return nil, err
	}

	filtered := make([]*models.Post, 0, len(all))
	for _, p := range all {
		if p.Status != models.StatusPublished {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		filtered = append(filtered, p)
	}

	utils.SortPosts(filtered)
	return filtered, nil
}

// paginate slices a 1-indexed page out of posts.
func paginate(posts []*models.Post, page, pageSize int) ([]*models.Post, error) {
	if page < 1 || pageSize <= 0 {
		return nil, fmt.Errorf("page %d, pageSize %d: %w", page, pageSize, ErrInvalidArgument)
	}
	start := (page - 1) * pageSize
	if start >= len(posts) {
		return []*models.Post{}, nil
	}
	end := start + pageSize
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end], nil
}

// PostsByCategory returns one page of published posts in a category,
// newest first. Pages are 1-indexed.
func (s *Store) PostsByCategory(categoryID string, page, pageSize int) ([]*models.Post, error) {
	posts, err := s.publishedPosts(categoryID)
	if err != nil {
		return nil, err
	}
	return paginate(posts, page, pageSize)
}

// CountPostsByCategory returns the number of published posts in a
// category.
func (s *Store) CountPostsByCategory(categoryID string) (int, error) {
	posts, err := s.publishedPosts(categoryID)
	if err != nil {
		return 0, err
	}
	return len(posts), nil
}

// PublishedPosts returns one page of all published posts regardless of
// category, newest first. Used for the home listing.
func (s *Store) PublishedPosts(page, pageSize int) ([]*models.Post, error) {
	posts, err := s.publishedPosts("")
	if err != nil {
		return nil, err
	}
	return paginate(posts, page, pageSize)
}

// CountPublishedPosts returns the total number of published posts.
func (s *Store) CountPublishedPosts() (int, error) {
	posts, err := s.publishedPosts("")
	if err != nil {
		return 0, err
	}
	return len(posts), nil
}

// NeighborPosts locates the post with the given id in the category's
// newest-first sequence and returns its neighbors: prev is the next
// older post, next the next newer one. Both are nil when the id is not
// in the published set; the ends of the sequence yield nil on the
// respective side.
func (s *Store) NeighborPosts(categoryID, id string) (prev, next *models.Post, err error) {
	posts, err := s.publishedPosts(categoryID)
	if err != nil {
		return nil, nil, err
	}

	idx := -1
	for i, p := range posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil, nil
	}

	if idx+1 < len(posts) {
		prev = posts[idx+1]
	}
	if idx > 0 {
		next = posts[idx-1]
	}
	return prev, next, nil
}
