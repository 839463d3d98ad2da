// defines the persisted document types shared across the store and generators
package models

import (
	"encoding/xml"
	"time"
)

// Status is the publication state of a post or page.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether s is a known publication status.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Post is a blog post document.
type Post struct {
	ID             string    `msgpack:"id"`
	Title          string    `msgpack:"title"`
	Slug           string    `msgpack:"slug"`
	Content        string    `msgpack:"content"`
	Excerpt        string    `msgpack:"excerpt"`
	CategoryID     string    `msgpack:"category_id"`
	Status         Status    `msgpack:"status"`
	SEOTitle       string    `msgpack:"seo_title,omitempty"`
	SEODescription string    `msgpack:"seo_description,omitempty"`
	FeaturedImage  string    `msgpack:"featured_image,omitempty"`
	CreatedAt      time.Time `msgpack:"created_at"`
	UpdatedAt      time.Time `msgpack:"updated_at"`
}

// Category groups posts.
type Category struct {
	ID             string    `msgpack:"id"`
	Name           string    `msgpack:"name"`
	Slug           string    `msgpack:"slug"`
	Description    string    `msgpack:"description"`
	SEOTitle       string    `msgpack:"seo_title,omitempty"`
	SEODescription string    `msgpack:"seo_description,omitempty"`
	CreatedAt      time.Time `msgpack:"created_at"`
}

// Page is a standalone static page (about, contact, ...).
type Page struct {
	ID             string    `msgpack:"id"`
	Title          string    `msgpack:"title"`
	Slug           string    `msgpack:"slug"`
	Content        string    `msgpack:"content"`
	SEOTitle       string    `msgpack:"seo_title,omitempty"`
	SEODescription string    `msgpack:"seo_description,omitempty"`
	Status         Status    `msgpack:"status"`
	CreatedAt      time.Time `msgpack:"created_at"`
	UpdatedAt      time.Time `msgpack:"updated_at"`
}

// --- Sitemap Structures ---

type URLSet struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}
