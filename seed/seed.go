// Package seed populates an empty store with starter content.
package seed

import (
	"github.com/rs/zerolog"

	"github.com/qiblog/quill/models"
	"github.com/qiblog/quill/store"
	"github.com/qiblog/quill/utils"
)

// Run seeds the store with a category, two published posts and an
// about page. A store that already holds posts is left untouched.
func Run(st *store.Store, log zerolog.Logger) error {
	existing, err := st.ListAllPosts()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info().Int("posts", len(existing)).Msg("store already seeded, skipping")
		return nil
	}

	log.Info().Msg("seeding store with starter content")

	category, err := st.CreateCategory(store.CategoryFields{
		Name:           "Technology",
		Slug:           utils.Slugify("Technology"),
		Description:    "Articles about Go, key-value storage and backend development.",
		SEOTitle:       "Technology Posts",
		SEODescription: "Latest technology articles.",
	})
	if err != nil {
		return err
	}
	log.Info().Str("name", category.Name).Msg("created category")

	posts := []store.PostFields{
		{
			Title:          "Getting Started with Bolt",
			Slug:           utils.Slugify("Getting Started with Bolt"),
			Content:        "This first post walks through using an embedded key-value store for persistence: buckets, transactions and why a single atomic update matters.",
			Excerpt:        "A quick guide to setting up an embedded key-value store.",
			CategoryID:     category.ID,
			Status:         models.StatusPublished,
			SEOTitle:       "Bolt Tutorial",
			SEODescription: "Learn embedded key-value basics.",
			FeaturedImage:  "/static/images/bolt.jpg",
		},
		{
			Title:          "Building a Minimalist CMS in Go",
			Slug:           utils.Slugify("Building a Minimalist CMS in Go"),
			Content:        "The second post covers the architecture behind Quill: primary records, slug indexes and brute-force pagination over a small working set.",
			Excerpt:        "Exploring the minimalist approach to CMS backends.",
			CategoryID:     category.ID,
			Status:         models.StatusPublished,
			SEOTitle:       "Minimalist CMS Architecture",
			SEODescription: "Minimalist CMS design in Go.",
			FeaturedImage:  "/static/images/quill.jpg",
		},
	}
	for _, fields := range posts {
		post, err := st.CreatePost(fields)
		if err != nil {
			return err
		}
		log.Info().Str("slug", post.Slug).Msg("created post")
	}

	if _, err := st.CreatePage(store.PageFields{
		Title:          "About Quill",
		Slug:           "about",
		Content:        "Quill is a fast, SEO-friendly, minimalist CMS backend written in Go.",
		Status:         models.StatusPublished,
		SEOTitle:       "About Us",
		SEODescription: "Learn about the project.",
	}); err != nil {
		return err
	}

	log.Info().Msg("seeding complete")
	return nil
}
