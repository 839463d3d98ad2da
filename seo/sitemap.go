// Package seo generates sitemap XML and meta/structured-data payloads
// from store content.
package seo

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/qiblog/quill/models"
)

const (
	changeFreq = "weekly"
	priority   = "0.8"
)

// Sitemap renders the sitemap XML for the site: homepage, published
// posts, published pages and all categories.
func Sitemap(baseURL string, posts []*models.Post, pages []*models.Page, categories []*models.Category) ([]byte, error) {
	urls := []models.URL{{
		Loc:        baseURL + "/",
		LastMod:    time.Now().Format("2006-01-02"),
		ChangeFreq: changeFreq,
		Priority:   priority,
	}}

	for _, p := range posts {
		if p.Status != models.StatusPublished {
			continue
		}
		urls = append(urls, models.URL{
			Loc:        fmt.Sprintf("%s/%s", baseURL, p.Slug),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}

	for _, p := range pages {
		if p.Status != models.StatusPublished {
			continue
		}
		urls = append(urls, models.URL{
			Loc:        fmt.Sprintf("%s/page/%s", baseURL, p.Slug),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}

	for _, c := range categories {
		urls = append(urls, models.URL{
			Loc:        fmt.Sprintf("%s/category/%s", baseURL, c.Slug),
			LastMod:    c.CreatedAt.Format("2006-01-02"),
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}

	output, err := xml.MarshalIndent(models.URLSet{URLs: urls}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), output...), nil
}

// WriteSitemap renders the sitemap and writes it to path on fs.
func WriteSitemap(fs afero.Fs, path, baseURL string, posts []*models.Post, pages []*models.Page, categories []*models.Category) error {
	data, err := Sitemap(baseURL, posts, pages, categories)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0644)
}
