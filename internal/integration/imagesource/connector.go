// Package imagesource fetches photo URLs and normalizes them into
// directly embeddable images through an ordered fallback chain.
package imagesource

import (
	"context"
	"net/http"
	"net/url"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/storeline/audit-backend/internal/config"
	"github.com/storeline/audit-backend/internal/entity"
	"github.com/storeline/audit-backend/internal/integration/common"
	"github.com/storeline/audit-backend/internal/integration/transform"
	pkghttp "github.com/storeline/audit-backend/pkg/http"
)

type Connector struct {
	config    config.ImageSourceConfig
	connector *pkghttp.Connector
	deriver   *transform.Deriver
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ImageSourceConfig,
	deriver *transform.Deriver,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		config:    cfg,
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		deriver:   deriver,
		logger:    logger,
	}
}

// Normalize resolves a photo URL into an embeddable image. The fallback
// chain, each step short-circuiting on first success:
//
//  1. fetch the URL directly and accept jpeg/png bytes as-is;
//  2. ask the transform service for a jpeg render at a bounded width;
//  3. retry the original URL with a naive format=jpeg query hint.
//
// Network failures, bad statuses and unusable content types at any step
// mean "try the next step". Exhaustion returns (nil, nil): the caller
// draws a placeholder, it is not an error.
func (c *Connector) Normalize(ctx context.Context, sourceURL string) (*entity.ImageEntry, error) {
	if entry := c.fetchStep(ctx, sourceURL, sourceURL, false); entry != nil {
		return entry, nil
	}

	if renderURL := c.deriver.RenderURL(sourceURL, "jpeg", c.config.MaxRenderWidth); renderURL != "" {
		if entry := c.fetchStep(ctx, renderURL, sourceURL, true); entry != nil {
			return entry, nil
		}
	}

	if entry := c.fetchStep(ctx, withFormatHint(sourceURL), sourceURL, true); entry != nil {
		return entry, nil
	}

	ctxzap.Info(ctx, "image normalization exhausted all fallback steps",
		zap.String("source_url", sourceURL))
	return nil, nil
}

// fetchStep runs one step of the chain. jpegOnly steps requested a jpeg
// re-encode, so anything else in the response is a step failure.
func (c *Connector) fetchStep(ctx context.Context, fetchURL, sourceURL string, jpegOnly bool) *entity.ImageEntry {
	var (
		body      []byte
		mediaType string
	)

	err := retry.Do(
		func() error {
			var ferr error
			body, mediaType, ferr = c.connector.FetchBytes(ctx, fetchURL)
			return ferr
		},
		append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		ctxzap.Debug(ctx, "image fetch step failed",
			zap.String("fetch_url", fetchURL), zap.Error(err))
		return nil
	}

	format, ok := embeddableFormat(mediaType, body)
	if !ok || (jpegOnly && format != entity.ImageFormatJPEG) {
		ctxzap.Debug(ctx, "image fetch step returned unusable content type",
			zap.String("fetch_url", fetchURL), zap.String("media_type", mediaType))
		return nil
	}

	return &entity.ImageEntry{
		Format:    format,
		Bytes:     body,
		SourceURL: sourceURL,
	}
}

// embeddableFormat classifies a response. When the declared content type
// is missing or ambiguous the bytes are sniffed instead.
func embeddableFormat(mediaType string, body []byte) (entity.ImageFormat, bool) {
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = http.DetectContentType(body)
	}
	switch mediaType {
	case "image/jpeg", "image/jpg":
		return entity.ImageFormatJPEG, true
	case "image/png":
		return entity.ImageFormatPNG, true
	default:
		return "", false
	}
}

// withFormatHint appends the last-resort format=jpeg query parameter.
func withFormatHint(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return sourceURL
	}
	q := u.Query()
	q.Set("format", "jpeg")
	u.RawQuery = q.Encode()
	return u.String()
}
