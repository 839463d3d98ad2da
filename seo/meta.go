package seo

import (
	"time"

	"github.com/qiblog/quill/models"
)

// maxDescriptionLen is the truncation point for meta descriptions.
const maxDescriptionLen = 160

// Meta is the data backing a page's meta tags.
type Meta struct {
	Title       string
	Description string
	URL         string
	Image       string
	Type        string // "article" or "website"
}

// MetaTags fills defaults and truncates the description.
func MetaTags(m Meta) Meta {
	if m.Type == "" {
		m.Type = "website"
	}
	m.Description = truncate(m.Description, maxDescriptionLen)
	return m
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// ArticleMarkup builds Schema.org JSON-LD for a post.
func ArticleMarkup(post *models.Post, category *models.Category, baseURL, siteName string) map[string]interface{} {
	headline := post.Title
	if post.SEOTitle != "" {
		headline = post.SEOTitle
	}
	description := post.Excerpt
	if post.SEODescription != "" {
		description = post.SEODescription
	}
	url := baseURL + "/" + category.Slug + "/" + post.Slug

	markup := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    headline,
		"description": description,
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  siteName,
		},
		"datePublished":  post.CreatedAt.Format(time.RFC3339),
		"dateModified":   post.UpdatedAt.Format(time.RFC3339),
		"articleSection": category.Name,
		"mainEntityOfPage": map[string]interface{}{
			"@type": "WebPage",
			"@id":   url,
		},
		"url": url,
	}
	if post.FeaturedImage != "" {
		markup["image"] = baseURL + post.FeaturedImage
	}
	return markup
}

// WebPageMarkup builds Schema.org JSON-LD for a static page.
func WebPageMarkup(page *models.Page, baseURL string) map[string]interface{} {
	title := page.Title
	if page.SEOTitle != "" {
		title = page.SEOTitle
	}
	description := page.SEODescription
	if description == "" {
		description = truncate(page.Content, 150)
	}
	return map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"name":        title,
		"description": description,
		"url":         baseURL + "/page/" + page.Slug,
	}
}
