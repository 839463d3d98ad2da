package store

import (
	"errors"
	"testing"
	"time"

	"github.com/qiblog/quill/models"
)

// tickingClock makes every store write one minute apart, so creation
// order equals descending-time order reversed.
func tickingClock(s *Store) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { clock = clock.Add(time.Minute); return clock }
}

func TestPostsByCategory_Pagination(t *testing.T) {
	s := newTestStore(t)
	tickingClock(s)

	cat := mustCategory(t, s, "tech")
	other := mustCategory(t, s, "misc")

	// 7 published posts in the target category, plus noise that must
	// never appear: a draft and a post in another category.
	var created []*models.Post
	for _, slug := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
		created = append(created, mustPost(t, s, cat.ID, slug, models.StatusPublished))
	}
	mustPost(t, s, cat.ID, "draft", models.StatusDraft)
	mustPost(t, s, other.ID, "elsewhere", models.StatusPublished)

	const pageSize = 3
	wantPages := [][]string{
		{"p7", "p6", "p5"},
		{"p4", "p3", "p2"},
		{"p1"},
	}

	var all []string
	for page := 1; page <= len(wantPages); page++ {
		posts, err := s.PostsByCategory(cat.ID, page, pageSize)
		if err != nil {
			t.Fatalf("PostsByCategory(page=%d) failed: %v", page, err)
		}
		if len(posts) != len(wantPages[page-1]) {
			t.Fatalf("page %d has %d posts, want %d", page, len(posts), len(wantPages[page-1]))
		}
		for i, p := range posts {
			if p.Slug != wantPages[page-1][i] {
				t.Errorf("page %d[%d] = %q, want %q", page, i, p.Slug, wantPages[page-1][i])
			}
			all = append(all, p.Slug)
		}
	}

	// Concatenated pages must reproduce the full descending sequence
	// exactly once each.
	if len(all) != len(created) {
		t.Errorf("concatenated pages have %d posts, want %d", len(all), len(created))
	}
	seen := make(map[string]bool)
	for _, slug := range all {
		if seen[slug] {
			t.Errorf("slug %q appears on more than one page", slug)
		}
		seen[slug] = true
	}
}

func TestPostsByCategory_InvalidArgs(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "tech")

	cases := []struct {
		name           string
		page, pageSize int
	}{
		{"zero page", 0, 10},
		{"negative page", -1, 10},
		{"zero page size", 1, 0},
		{"negative page size", 1, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.PostsByCategory(cat.ID, tc.page, tc.pageSize); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("PostsByCategory(%d, %d) = %v, want ErrInvalidArgument", tc.page, tc.pageSize, err)
			}
		})
	}
}

func TestPostsByCategory_PageBeyondEnd(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "tech")
	mustPost(t, s, cat.ID, "only", models.StatusPublished)

	posts, err := s.PostsByCategory(cat.ID, 5, 10)
	if err != nil {
		t.Fatalf("PostsByCategory failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("page beyond end has %d posts, want 0", len(posts))
	}
}

func TestCountPostsByCategory(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "tech")
	other := mustCategory(t, s, "misc")

	mustPost(t, s, cat.ID, "a", models.StatusPublished)
	mustPost(t, s, cat.ID, "b", models.StatusPublished)
	mustPost(t, s, cat.ID, "c", models.StatusDraft)
	mustPost(t, s, other.ID, "d", models.StatusPublished)

	count, err := s.CountPostsByCategory(cat.ID)
	if err != nil {
		t.Fatalf("CountPostsByCategory failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestNeighborPosts(t *testing.T) {
	s := newTestStore(t)
	tickingClock(s)

	cat := mustCategory(t, s, "tech")
	// Created oldest to newest; newest-first order is [a, b, c] with
	// a the latest.
	c := mustPost(t, s, cat.ID, "c-oldest", models.StatusPublished)
	b := mustPost(t, s, cat.ID, "b-middle", models.StatusPublished)
	a := mustPost(t, s, cat.ID, "a-newest", models.StatusPublished)

	cases := []struct {
		name               string
		id                 string
		wantPrev, wantNext string // slugs, "" means nil
	}{
		{"middle", b.ID, "c-oldest", "a-newest"},
		{"newest", a.ID, "b-middle", ""},
		{"oldest", c.ID, "", "b-middle"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev, next, err := s.NeighborPosts(cat.ID, tc.id)
			if err != nil {
				t.Fatalf("NeighborPosts failed: %v", err)
			}
			if got := slugOrEmpty(prev); got != tc.wantPrev {
				t.Errorf("prev = %q, want %q", got, tc.wantPrev)
			}
			if got := slugOrEmpty(next); got != tc.wantNext {
				t.Errorf("next = %q, want %q", got, tc.wantNext)
			}
		})
	}
}

func slugOrEmpty(p *models.Post) string {
	if p == nil {
		return ""
	}
	return p.Slug
}

func TestNeighborPosts_NotInSet(t *testing.T) {
	s := newTestStore(t)
	tickingClock(s)

	cat := mustCategory(t, s, "tech")
	mustPost(t, s, cat.ID, "published", models.StatusPublished)
	draft := mustPost(t, s, cat.ID, "draft", models.StatusDraft)

	// Unknown id: both neighbors nil, no error.
	prev, next, err := s.NeighborPosts(cat.ID, "unknown")
	if err != nil {
		t.Fatalf("NeighborPosts failed: %v", err)
	}
	if prev != nil || next != nil {
		t.Errorf("neighbors of unknown id = (%v, %v), want (nil, nil)", prev, next)
	}

	// A draft is outside the published set even though it exists.
	prev, next, err = s.NeighborPosts(cat.ID, draft.ID)
	if err != nil {
		t.Fatalf("NeighborPosts failed: %v", err)
	}
	if prev != nil || next != nil {
		t.Errorf("neighbors of draft = (%v, %v), want (nil, nil)", prev, next)
	}
}

func TestNeighborPosts_TieBreak(t *testing.T) {
	s := newTestStore(t)

	// Frozen clock: all posts share one timestamp, so ordering falls
	// back to ascending id.
	frozen := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }

	cat := mustCategory(t, s, "tech")
	mustPost(t, s, cat.ID, "x", models.StatusPublished)
	mustPost(t, s, cat.ID, "y", models.StatusPublished)
	mustPost(t, s, cat.ID, "z", models.StatusPublished)

	sorted, err := s.publishedPosts(cat.ID)
	if err != nil {
		t.Fatalf("publishedPosts failed: %v", err)
	}
	if len(sorted) != 3 {
		t.Fatalf("got %d posts, want 3", len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].ID >= sorted[i].ID {
			t.Errorf("tie-break order broken at %d: %q >= %q", i, sorted[i-1].ID, sorted[i].ID)
		}
	}

	// Neighbors must agree with that order regardless of which post is
	// probed.
	prev, next, err := s.NeighborPosts(cat.ID, sorted[1].ID)
	if err != nil {
		t.Fatalf("NeighborPosts failed: %v", err)
	}
	if prev == nil || prev.ID != sorted[2].ID {
		t.Errorf("prev = %v, want %q", prev, sorted[2].ID)
	}
	if next == nil || next.ID != sorted[0].ID {
		t.Errorf("next = %v, want %q", next, sorted[0].ID)
	}
}

func TestPublishedPosts_Global(t *testing.T) {
	s := newTestStore(t)
	tickingClock(s)

	cat := mustCategory(t, s, "tech")
	other := mustCategory(t, s, "misc")
	mustPost(t, s, cat.ID, "one", models.StatusPublished)
	mustPost(t, s, other.ID, "two", models.StatusPublished)
	mustPost(t, s, cat.ID, "hidden", models.StatusDraft)

	posts, err := s.PublishedPosts(1, 10)
	if err != nil {
		t.Fatalf("PublishedPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "two" || posts[1].Slug != "one" {
		t.Errorf("order = [%q, %q], want [two, one]", posts[0].Slug, posts[1].Slug)
	}

	count, err := s.CountPublishedPosts()
	if err != nil {
		t.Fatalf("CountPublishedPosts failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
