package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hayZedTech/vibestream-backend/config"
)

// BlobStore is the opaque "store blob -> URL" capability used for avatars and
// post images. The serving side is whoever exposes BaseURL.
type BlobStore interface {
	Store(ctx context.Context, name string, r io.Reader) (string, error)
}

// Interface guard
var _ BlobStore = (*diskStore)(nil)

// diskStore keeps blobs on the local filesystem under one flat directory.
type diskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(cfg *config.Config) (BlobStore, error) {
	if err := os.MkdirAll(cfg.Media.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: create dir %s: %w", cfg.Media.Dir, err)
	}
	return &diskStore{
		dir:     cfg.Media.Dir,
		baseURL: strings.TrimSuffix(cfg.Media.BaseURL, "/"),
	}, nil
}

// Store writes the blob under a generated name and returns its public URL.
// Only the extension of the client-supplied name is kept; everything else is
// replaced to keep path handling trivial.
func (s *diskStore) Store(_ context.Context, name string, r io.Reader) (string, error) {
	fileName := uuid.New().String() + sanitizeExt(name)
	path := filepath.Join(s.dir, fileName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("media: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("media: write %s: %w", path, err)
	}
	return s.baseURL + "/" + fileName, nil
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return ext
	default:
		return ""
	}
}
