package imagesource

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storeline/audit-backend/internal/config"
	"github.com/storeline/audit-backend/internal/entity"
	"github.com/storeline/audit-backend/internal/integration/transform"
	pkgRetry "github.com/storeline/audit-backend/internal/pkg/retry"
)

func testConnector(t *testing.T, transformCfg config.TransformConfig) *Connector {
	t.Helper()
	cfg := config.ImageSourceConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           5 * time.Second,
			KeepAlive:             5 * time.Second,
			IdleConnTimeout:       5 * time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
		},
		Retry: pkgRetry.RetryConfig{
			Attempts: 1,
			Delay:    time.Millisecond,
			MaxDelay: time.Millisecond,
		},
		FetchConcurrency: 2,
		MaxRenderWidth:   1600,
	}
	return NewConnector(cfg, transform.NewDeriver(transformCfg), zap.NewNop())
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestNormalizeDirectJPEG(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	c := testConnector(t, config.TransformConfig{})
	entry, err := c.Normalize(context.Background(), srv.URL+"/photo.jpg")

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, entity.ImageFormatJPEG, entry.Format)
	assert.Equal(t, []byte("jpeg-bytes"), entry.Bytes)
	assert.Equal(t, srv.URL+"/photo.jpg", entry.SourceURL)
}

func TestNormalizeSniffsAmbiguousContentType(t *testing.T) {
	data := smallPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(data)
	}))
	defer srv.Close()

	c := testConnector(t, config.TransformConfig{})
	entry, err := c.Normalize(context.Background(), srv.URL+"/photo")

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, entity.ImageFormatPNG, entry.Format)
}

func TestNormalizeFallsBackToTransformService(t *testing.T) {
	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		w.Write([]byte("webp-bytes"))
	}))
	defer media.Close()

	var renderHits int
	render := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderHits++
		assert.Equal(t, "/render", r.URL.Path)
		assert.Equal(t, "jpeg", r.URL.Query().Get("format"))
		assert.Equal(t, "1600", r.URL.Query().Get("width"))
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("rendered-jpeg"))
	}))
	defer render.Close()

	c := testConnector(t, config.TransformConfig{
		BaseURL:         render.URL,
		ObjectURLPrefix: media.URL,
	})

	source := media.URL + "/objects/photo.webp"
	entry, err := c.Normalize(context.Background(), source)

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 1, renderHits)
	assert.Equal(t, entity.ImageFormatJPEG, entry.Format)
	assert.Equal(t, []byte("rendered-jpeg"), entry.Bytes)
	assert.Equal(t, source, entry.SourceURL, "entry keeps the original source URL")
}

func TestNormalizeQueryHintFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") == "jpeg" {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write([]byte("hinted-jpeg"))
			return
		}
		w.Header().Set("Content-Type", "image/heic")
		w.Write([]byte("heic-bytes"))
	}))
	defer srv.Close()

	// No transform service configured: chain goes direct -> hint.
	c := testConnector(t, config.TransformConfig{})
	entry, err := c.Normalize(context.Background(), srv.URL+"/photo.heic")

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, []byte("hinted-jpeg"), entry.Bytes)
}

func TestNormalizeExhaustionReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := testConnector(t, config.TransformConfig{})
	entry, err := c.Normalize(context.Background(), srv.URL+"/photo.jpg")

	assert.NoError(t, err, "exhaustion is not an error for the caller")
	assert.Nil(t, entry)
}

func TestNormalizeUnreachableHost(t *testing.T) {
	c := testConnector(t, config.TransformConfig{})
	entry, err := c.Normalize(context.Background(), "http://127.0.0.1:1/photo.jpg")

	assert.NoError(t, err)
	assert.Nil(t, entry)
}
