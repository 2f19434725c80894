package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSuggestedStyle(t *testing.T) {
	tests := []struct {
		style string
		want  bool
	}{
		{"Anime", true},
		{"pixel art", true},
		{"3D RENDER", true},
		{"Vaporwave", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.style, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSuggestedStyle(tc.style))
		})
	}
}

func TestOptionSets(t *testing.T) {
	assert.Len(t, Styles, 8)
	assert.Equal(t, []string{"1024x1024", "1024x1792", "1792x1024"}, Sizes)
	assert.Equal(t, Size1024x1024, DefaultSize)
}
