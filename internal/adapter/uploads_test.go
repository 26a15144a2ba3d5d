package adapter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/restomenu/restomenu/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		size        int64
		contentType string
		kind        string
		wantErr     error
	}{
		{"ad image under 5MB", 4 << 20, "image/png", UploadKindAds, nil},
		{"ad image over 5MB", 6 << 20, "image/png", UploadKindAds, ErrUploadTooLarge},
		{"category image under 1MB", 512 << 10, "image/jpeg", UploadKindCategories, nil},
		{"category image over 1MB", 2 << 20, "image/jpeg", UploadKindCategories, ErrUploadTooLarge},
		{"item image over 1MB", 2 << 20, "image/webp", UploadKindMenuItems, ErrUploadTooLarge},
		{"not an image", 100, "application/pdf", UploadKindAds, ErrUploadNotImage},
		{"unknown kind", 100, "image/png", "avatars", ErrUploadUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.size, tt.contentType, tt.kind)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUploadRejectsBeforeNetwork(t *testing.T) {
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"success":true,"data":{"url":"https://cdn/x.png"}}`))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(backend.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, zap.NewNop().Sugar())
	uploads := NewUploads(client, zap.NewNop().Sugar())

	_, err := uploads.Upload(context.Background(), bytes.NewReader(nil), "big.png", "image/png", UploadKindAds, 6<<20)
	assert.ErrorIs(t, err, ErrUploadTooLarge)

	_, err = uploads.Upload(context.Background(), bytes.NewReader(nil), "doc.pdf", "application/pdf", UploadKindAds, 100)
	assert.ErrorIs(t, err, ErrUploadNotImage)

	// neither validation failure may reach the backend
	assert.Equal(t, int32(0), requests.Load())
}

func TestUploadHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(8<<20))

		assert.Equal(t, UploadKindMenuItems, r.FormValue("type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "dish.jpg", header.Filename)

		w.Write([]byte(`{"success":true,"data":{"url":"https://cdn/dish.jpg"}}`))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(backend.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, zap.NewNop().Sugar())
	uploads := NewUploads(client, zap.NewNop().Sugar())

	url, err := uploads.Upload(context.Background(), bytes.NewReader([]byte("jpegdata")), "dish.jpg", "image/jpeg", UploadKindMenuItems, 8)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/dish.jpg", url)
}

func TestUploadRejectedByBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(backend.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, zap.NewNop().Sugar())
	uploads := NewUploads(client, zap.NewNop().Sugar())

	_, err := uploads.Upload(context.Background(), bytes.NewReader([]byte("x")), "a.png", "image/png", UploadKindAds, 1)
	assert.Error(t, err)
}
