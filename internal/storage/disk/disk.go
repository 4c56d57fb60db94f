package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hr-backoffice/internal/storage"
)

// Store keeps uploaded bytes on the local filesystem under baseDir. The
// files are exposed read-only by the HTTP layer under publicBaseURL/files.
type Store struct {
	baseDir       string
	publicBaseURL string
}

func New(baseDir, publicBaseURL string) storage.Provider {
	return &Store{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *Store) Save(ctx context.Context, storedName string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	clean, err := s.safePath(storedName)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	f, err := os.OpenFile(clean, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}

	return written, nil
}

func (s *Store) Delete(ctx context.Context, storedName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean, err := s.safePath(storedName)
	if err != nil {
		return err
	}

	return os.Remove(clean)
}

func (s *Store) URL(storedName string) string {
	return s.publicBaseURL + "/files/" + storedName
}

// Open is used by the OCR consumer to read stored bytes back.
func (s *Store) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := s.safePath(storedName)
	if err != nil {
		return nil, err
	}

	return os.Open(clean)
}

func (s *Store) safePath(storedName string) (string, error) {
	clean := filepath.Clean(storedName)
	if clean != storedName || strings.Contains(clean, "..") || filepath.IsAbs(clean) || strings.ContainsRune(clean, filepath.Separator) {
		return "", fmt.Errorf("invalid stored name: %q", storedName)
	}
	return filepath.Join(s.baseDir, clean), nil
}
