package docload

import (
	"context"
	"fmt"
	"path/filepath"

	"paperqa/src/fsutil"
	"paperqa/src/storage/minioctrl"
)

// FileSource reads the document from the local filesystem.
type FileSource struct {
	fs   fsutil.FileStore
	path string
}

func NewFileSource(fs fsutil.FileStore, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

func (s *FileSource) Fetch(ctx context.Context) ([]byte, string, error) {
	if !s.fs.Exists(s.path) {
		return nil, "", fmt.Errorf("document not found: %s", s.path)
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read document: %w", err)
	}
	return data, filepath.Base(s.path), nil
}

// MinioSource reads the document from a MinIO bucket.
type MinioSource struct {
	minioService *minioctrl.MinioService
	bucket       string
	object       string
}

func NewMinioSource(minioService *minioctrl.MinioService, bucket, object string) *MinioSource {
	return &MinioSource{
		minioService: minioService,
		bucket:       bucket,
		object:       object,
	}
}

func (s *MinioSource) Fetch(ctx context.Context) ([]byte, string, error) {
	data, err := s.minioService.GetObject(ctx, s.bucket, s.object)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch document from minio: %w", err)
	}
	return data, filepath.Base(s.object), nil
}
