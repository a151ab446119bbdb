// Package transform derives render URLs for the external image
// transform service, which can re-encode a stored photo to a requested
// format and bounded width.
package transform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/storeline/audit-backend/internal/config"
)

// Deriver builds render URLs. It is a pure string transform: no network
// traffic happens here.
type Deriver struct {
	baseURL      string
	objectPrefix string
}

func NewDeriver(cfg config.TransformConfig) *Deriver {
	return &Deriver{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		objectPrefix: cfg.ObjectURLPrefix,
	}
}

// RenderURL returns the transform-service URL requesting sourceURL
// re-encoded to format at no more than width pixels. It returns "" when
// the service is not configured or sourceURL does not have the expected
// storage-object shape; callers skip this fallback step on "".
func (d *Deriver) RenderURL(sourceURL, format string, width int) string {
	if d.baseURL == "" || d.objectPrefix == "" {
		return ""
	}
	if !strings.HasPrefix(sourceURL, d.objectPrefix) {
		return ""
	}
	return fmt.Sprintf("%s/render?source=%s&format=%s&width=%d",
		d.baseURL, url.QueryEscape(sourceURL), format, width)
}
