package utils

import (
	"sort"

	"github.com/qiblog/quill/models"
)

// SortPosts orders posts newest-first by creation time. Equal
// timestamps fall back to ascending id so the order is stable across
// runs; neighbor navigation depends on this.
func SortPosts(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
