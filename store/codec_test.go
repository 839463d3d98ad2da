package store

import (
	"strings"
	"testing"

	"github.com/qiblog/quill/models"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 64 {
			t.Fatalf("NewID() length = %d, want 64 hex chars", len(id))
		}
		if seen[id] {
			t.Fatalf("NewID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	post := &models.Post{ID: "id", Title: "small", Slug: "small", Content: "tiny body"}
	data, err := s.encode(post)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if data[0] != tagRaw {
		t.Errorf("small record tag = %d, want tagRaw", data[0])
	}

	var decoded models.Post
	if err := s.decode(data, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Title != post.Title || decoded.Content != post.Content {
		t.Errorf("decoded = %+v, want %+v", decoded, post)
	}
}

func TestCodec_CompressesLargeRecords(t *testing.T) {
	s := newTestStore(t)

	post := &models.Post{
		ID:      "id",
		Title:   "large",
		Slug:    "large",
		Content: strings.Repeat("a long paragraph of body text. ", 2048),
	}
	data, err := s.encode(post)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if data[0] != tagZstd {
		t.Errorf("large record tag = %d, want tagZstd", data[0])
	}
	if len(data) >= len(post.Content) {
		t.Errorf("compressed payload (%d bytes) not smaller than content (%d bytes)", len(data), len(post.Content))
	}

	var decoded models.Post
	if err := s.decode(data, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Content != post.Content {
		t.Error("large content did not survive the round trip")
	}
}

func TestDecode_Empty(t *testing.T) {
	s := newTestStore(t)
	var post models.Post
	if err := s.decode(nil, &post); err == nil {
		t.Error("decode of empty payload should fail")
	}
}
