package imagesource

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/storeline/audit-backend/internal/entity"
)

// MockConnector returns a fixed generated image for every URL, so the
// full rendering path can run without any photo sources.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Normalize(ctx context.Context, sourceURL string) (*entity.ImageEntry, error) {
	ctxzap.Info(ctx, "[MOCK] normalizing image",
		zap.String("source_url", sourceURL),
	)

	img := image.NewRGBA(image.Rect(0, 0, 160, 120))
	for x := 0; x < 160; x++ {
		for y := 0; y < 120; y++ {
			img.Set(x, y, color.RGBA{R: 180, G: 180, B: 180, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return &entity.ImageEntry{
		Format:    entity.ImageFormatPNG,
		Bytes:     buf.Bytes(),
		SourceURL: sourceURL,
	}, nil
}
