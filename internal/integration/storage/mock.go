package storage

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector pretends every upload succeeds and hands back a fake
// public URL.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Bucket() string {
	return "mock-reports"
}

func (m *MockConnector) Upload(ctx context.Context, objectPath string, data []byte, contentType string) error {
	ctxzap.Info(ctx, "[MOCK] uploading object",
		zap.String("path", objectPath),
		zap.Int("size_bytes", len(data)),
	)
	return nil
}

func (m *MockConnector) ResolveURL(ctx context.Context, objectPath string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] resolving object URL",
		zap.String("path", objectPath),
	)
	return "https://storage.invalid/mock-reports/" + objectPath, nil
}
