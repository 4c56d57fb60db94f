package storage

import (
	"context"
	"io"
)

// Provider abstracts where uploaded bytes physically live. The disk
// implementation serves local deployments; the s3 implementation is a
// drop-in alternative selected by configuration at startup.
//
//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock
type Provider interface {
	// Save persists the reader under storedName and returns the number of
	// bytes written.
	Save(ctx context.Context, storedName string, r io.Reader) (int64, error)
	Delete(ctx context.Context, storedName string) error
	// URL returns the public URL clients use to fetch the object.
	URL(storedName string) string
}

// Opener is the read-back capability both providers also implement; the OCR
// consumer depends on it to fetch stored bytes.
type Opener interface {
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)
}
