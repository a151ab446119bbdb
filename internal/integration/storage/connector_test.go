package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storeline/audit-backend/internal/config"
	pkgRetry "github.com/storeline/audit-backend/internal/pkg/retry"
)

func testStorageConfig(baseURL, publicBaseURL string) config.StorageConfig {
	return config.StorageConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           5 * time.Second,
			KeepAlive:             5 * time.Second,
			IdleConnTimeout:       5 * time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			Url:                   baseURL,
		},
		Bucket:        "reports",
		PublicBaseURL: publicBaseURL,
		SignedURLTTL:  time.Hour,
		Retry: pkgRetry.RetryConfig{
			Attempts: 1,
			Delay:    time.Millisecond,
			MaxDelay: time.Millisecond,
		},
	}
}

func TestUpload(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewConnector(testStorageConfig(srv.URL, ""), zap.NewNop())
	err := c.Upload(context.Background(), "abc123/Audit_Test_050824.pdf", []byte("%PDF-fake"), "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "/reports/abc123/Audit_Test_050824.pdf", gotPath)
	assert.Equal(t, "application/pdf", gotContentType)
	assert.Equal(t, []byte("%PDF-fake"), gotBody)
}

func TestUploadFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewConnector(testStorageConfig(srv.URL, ""), zap.NewNop())
	err := c.Upload(context.Background(), "x/y.pdf", []byte("data"), "application/pdf")

	assert.Error(t, err, "storage failures in persisted mode are fatal")
}

func TestResolveURLPublic(t *testing.T) {
	c := NewConnector(testStorageConfig("http://unused.invalid", "https://cdn.example.com/reports/"), zap.NewNop())

	url, err := c.ResolveURL(context.Background(), "abc/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/reports/abc/doc.pdf", url)
}

func TestResolveURLSignedAndCached(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://signed.example.com/abc/doc.pdf?sig=zzz"}`))
	}))
	defer srv.Close()

	c := NewConnector(testStorageConfig(srv.URL, ""), zap.NewNop())

	first, err := c.ResolveURL(context.Background(), "abc/doc.pdf")
	require.NoError(t, err)
	second, err := c.ResolveURL(context.Background(), "abc/doc.pdf")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits, "second resolution must come from the cache")
}
