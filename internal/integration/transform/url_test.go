package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storeline/audit-backend/internal/config"
)

func TestRenderURL(t *testing.T) {
	d := NewDeriver(config.TransformConfig{
		BaseURL:         "https://img.example.com/",
		ObjectURLPrefix: "https://media.example.com/objects/",
	})

	got := d.RenderURL("https://media.example.com/objects/photo.heic", "jpeg", 1600)
	assert.Equal(t,
		"https://img.example.com/render?source=https%3A%2F%2Fmedia.example.com%2Fobjects%2Fphoto.heic&format=jpeg&width=1600",
		got)
}

func TestRenderURLNonMatchingShape(t *testing.T) {
	d := NewDeriver(config.TransformConfig{
		BaseURL:         "https://img.example.com",
		ObjectURLPrefix: "https://media.example.com/objects/",
	})

	assert.Empty(t, d.RenderURL("https://elsewhere.example.com/photo.heic", "jpeg", 1600))
}

func TestRenderURLUnconfigured(t *testing.T) {
	d := NewDeriver(config.TransformConfig{})
	assert.Empty(t, d.RenderURL("https://media.example.com/objects/photo.heic", "jpeg", 1600))
}
