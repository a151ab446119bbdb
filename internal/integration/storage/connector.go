// Package storage talks to the object-storage collaborator that keeps
// persisted report documents.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/storeline/audit-backend/internal/config"
	"github.com/storeline/audit-backend/internal/integration/common"
	pkghttp "github.com/storeline/audit-backend/pkg/http"
)

type Connector struct {
	config    config.StorageConfig
	connector *pkghttp.Connector
	// signedURLs caches signed links per object path; entries expire a
	// little before the link itself does.
	signedURLs *gocache.Cache
	logger     *zap.Logger
}

func NewConnector(cfg config.StorageConfig, logger *zap.Logger) *Connector {
	cacheTTL := cfg.SignedURLTTL - 5*time.Minute
	if cacheTTL <= 0 {
		cacheTTL = cfg.SignedURLTTL / 2
	}

	return &Connector{
		config:     cfg,
		connector:  common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		signedURLs: gocache.New(cacheTTL, 10*time.Minute),
		logger:     logger,
	}
}

// Bucket returns the configured target bucket.
func (c *Connector) Bucket() string {
	return c.config.Bucket
}

// Upload stores data under objectPath in the configured bucket.
func (c *Connector) Upload(ctx context.Context, objectPath string, data []byte, contentType string) error {
	ctxzap.Info(ctx, "uploading object",
		zap.String("bucket", c.config.Bucket),
		zap.String("path", objectPath),
		zap.Int("size_bytes", len(data)),
	)

	endpoint := c.objectEndpoint(objectPath)
	err := retry.Do(
		func() error {
			return c.connector.DoBinaryRequest(ctx, http.MethodPut, endpoint, data, contentType, nil)
		},
		append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		return fmt.Errorf("upload object %s: %w", objectPath, err)
	}

	return nil
}

// ResolveURL returns a reachable link for a stored object: the public
// URL when the bucket is public, otherwise a long-lived signed URL.
func (c *Connector) ResolveURL(ctx context.Context, objectPath string) (string, error) {
	if c.config.PublicBaseURL != "" {
		return strings.TrimSuffix(c.config.PublicBaseURL, "/") + "/" + objectPath, nil
	}

	if cached, ok := c.signedURLs.Get(objectPath); ok {
		return cached.(string), nil
	}

	var resp signURLResponse
	endpoint := fmt.Sprintf("%s?sign&ttl=%d", c.objectEndpoint(objectPath), int(c.config.SignedURLTTL.Seconds()))
	err := retry.Do(
		func() error {
			return c.connector.DoRequest(ctx, http.MethodPost, endpoint, nil, &resp)
		},
		append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		return "", fmt.Errorf("sign object URL %s: %w", objectPath, err)
	}
	if resp.URL == "" {
		return "", fmt.Errorf("sign object URL %s: empty url in response", objectPath)
	}

	c.signedURLs.SetDefault(objectPath, resp.URL)
	return resp.URL, nil
}

func (c *Connector) objectEndpoint(objectPath string) string {
	return "/" + c.config.Bucket + "/" + objectPath
}

type signURLResponse struct {
	URL string `json:"url"`
}
