package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type objectStoreStub struct {
	putFn func(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

func (s *objectStoreStub) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	return s.putFn(ctx, key, contentType, body)
}

func TestUploadService_UploadImage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects disallowed extensions", func(t *testing.T) {
		t.Parallel()
		svc := NewUploadService(&objectStoreStub{})
		for _, name := range []string{"file.webp", "file.svg", "file.exe", "file"} {
			_, err := svc.UploadImage(ctx, UploadInput{Filename: name, Size: 10, Body: strings.NewReader("x")})
			assertValidationError(t, err)
		}
	})

	t.Run("rejects empty file", func(t *testing.T) {
		t.Parallel()
		svc := NewUploadService(&objectStoreStub{})
		_, err := svc.UploadImage(ctx, UploadInput{Filename: "a.png", Size: 0})
		assertValidationError(t, err)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		t.Parallel()
		svc := NewUploadService(&objectStoreStub{})
		_, err := svc.UploadImage(ctx, UploadInput{Filename: "a.png", Size: maxUploadBytes + 1})
		assertValidationError(t, err)
	})

	t.Run("stores allowed image and returns url", func(t *testing.T) {
		t.Parallel()
		var gotKey, gotType string
		store := &objectStoreStub{
			putFn: func(_ context.Context, key, contentType string, _ io.Reader) (string, error) {
				gotKey = key
				gotType = contentType
				return "https://media.example.com/" + key, nil
			},
		}
		svc := NewUploadService(store)
		url, err := svc.UploadImage(ctx, UploadInput{
			Filename: "Photo.JPG",
			Size:     128,
			Body:     bytes.NewReader(make([]byte, 128)),
		})
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", gotType)
		assert.True(t, strings.HasSuffix(gotKey, ".jpg"))
		assert.True(t, strings.HasPrefix(url, "https://media.example.com/uploads/"))
	})
}
