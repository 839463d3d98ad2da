package seo

import (
	"time"

	"github.com/spf13/afero"

	"github.com/qiblog/quill/cache"
	"github.com/qiblog/quill/models"
	"github.com/qiblog/quill/store"
)

// Collector gathers site-wide content for sitemap and feed generation,
// memoizing the full-store scans behind TTL caches so repeated
// generations within the TTL window skip the rescan.
type Collector struct {
	store      *store.Store
	ttl        time.Duration
	posts      *cache.Cache[[]*models.Post]
	pages      *cache.Cache[[]*models.Page]
	categories *cache.Cache[[]*models.Category]
}

// NewCollector wraps a store. A non-positive ttl means cache.DefaultTTL.
func NewCollector(st *store.Store, ttl time.Duration) *Collector {
	return &Collector{
		store:      st,
		ttl:        ttl,
		posts:      cache.New[[]*models.Post](),
		pages:      cache.New[[]*models.Page](),
		categories: cache.New[[]*models.Category](),
	}
}

// Posts returns all posts, memoized.
func (c *Collector) Posts() ([]*models.Post, error) {
	return cache.Memoize(c.posts, cache.KeyAllPosts, c.ttl, c.store.ListAllPosts)
}

// Pages returns all pages, memoized.
func (c *Collector) Pages() ([]*models.Page, error) {
	return cache.Memoize(c.pages, cache.KeyAllPages, c.ttl, c.store.ListAllPages)
}

// Categories returns all categories, memoized.
func (c *Collector) Categories() ([]*models.Category, error) {
	return cache.Memoize(c.categories, cache.KeyAllCategories, c.ttl, c.store.ListAllCategories)
}

// Invalidate drops all memoized aggregates. Call after mutations.
func (c *Collector) Invalidate() {
	c.posts.Clear()
	c.pages.Clear()
	c.categories.Clear()
}

// Sitemap renders the sitemap from the collected content.
func (c *Collector) Sitemap(baseURL string) ([]byte, error) {
	posts, err := c.Posts()
	if err != nil {
		return nil, err
	}
	pages, err := c.Pages()
	if err != nil {
		return nil, err
	}
	categories, err := c.Categories()
	if err != nil {
		return nil, err
	}
	return Sitemap(baseURL, posts, pages, categories)
}

// WriteSitemap renders the sitemap and writes it to path on fs.
func (c *Collector) WriteSitemap(fs afero.Fs, path, baseURL string) error {
	data, err := c.Sitemap(baseURL)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0644)
}
