package imagegen

import "testing"

func TestComposePrompt(t *testing.T) {
	got := ComposePrompt("a cat astronaut", "Digital Art")
	if got != "a cat astronaut in Digital Art style" {
		t.Fatalf("unexpected prompt: %q", got)
	}
	if got := ComposePrompt(" spaced ", "anime"); got != " spaced  in anime style" {
		t.Fatalf("user text must pass through untouched, got %q", got)
	}
}

func TestNormalizeSize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1024x1024", "1024x1024"},
		{"1024x1792", "1024x1792"},
		{"1792x1024", "1792x1024"},
		{"256x256", "1024x1024"},
		{"1024X1024", "1024x1024"},
		{"", "1024x1024"},
	}
	for _, tc := range cases {
		if got := NormalizeSize(tc.in); got != tc.want {
			t.Fatalf("NormalizeSize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
