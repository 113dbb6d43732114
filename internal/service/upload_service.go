package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// 10 MB upload ceiling, matching the server's body limit.
const maxUploadBytes = 10 << 20

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

type UploadService struct {
	store storage.ObjectStore
}

type UploadInput struct {
	Filename string
	Size     int64
	Body     io.Reader
}

func NewUploadService(store storage.ObjectStore) *UploadService {
	return &UploadService{store: store}
}

// UploadImage validates and stores one image file, returning its public URL.
func (s *UploadService) UploadImage(ctx context.Context, in UploadInput) (string, error) {
	if in.Size <= 0 {
		return "", models.NewValidationError("File is empty")
	}
	if in.Size > maxUploadBytes {
		return "", models.NewValidationError("File too large (max 10 MB)")
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		return "", models.NewValidationError("Only jpg, jpeg, png and gif files are allowed")
	}

	url, err := s.store.Put(ctx, storage.RandomKey(ext), contentType, in.Body)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return url, nil
}
