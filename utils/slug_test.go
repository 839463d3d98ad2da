package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Getting Started with Bolt", "getting-started-with-bolt"},
		{"Café au lait", "cafe-au-lait"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"multiple---separators___here", "multiple-separators-here"},
		{"Ünïcödé Tîtle", "unicode-title"},
		{"already-a-slug", "already-a-slug"},
		{"123 Numbers First", "123-numbers-first"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
