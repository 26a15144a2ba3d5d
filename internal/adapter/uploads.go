package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/restomenu/restomenu/internal/backend"
	"go.uber.org/zap"
)

// Upload kinds map to storage folders on the backend and to the client-side
// size limit for that context.
const (
	UploadKindAds        = "ads"
	UploadKindCategories = "categories"
	UploadKindMenuItems  = "menu-items"
)

const (
	maxAdImageSize   = 5 << 20 // 5MB
	maxEntityImgSize = 1 << 20 // 1MB
)

var (
	ErrUploadTooLarge    = fmt.Errorf("image exceeds the size limit")
	ErrUploadNotImage    = fmt.Errorf("file is not an image")
	ErrUploadUnknownKind = fmt.Errorf("unknown upload kind")
)

type Uploads struct {
	client *backend.Client
	logger *zap.SugaredLogger
}

func NewUploads(client *backend.Client, logger *zap.SugaredLogger) *Uploads {
	return &Uploads{
		client: client,
		logger: logger,
	}
}

// SizeLimit returns the byte cap for an upload kind.
func SizeLimit(kind string) (int64, error) {
	switch kind {
	case UploadKindAds:
		return maxAdImageSize, nil
	case UploadKindCategories, UploadKindMenuItems:
		return maxEntityImgSize, nil
	default:
		return 0, ErrUploadUnknownKind
	}
}

// ValidateImage enforces the client-side rules before any network call:
// the MIME type must start with image/ and the size must fit the kind's cap.
func ValidateImage(size int64, contentType, kind string) error {
	limit, err := SizeLimit(kind)
	if err != nil {
		return err
	}

	if !strings.HasPrefix(contentType, "image/") {
		return ErrUploadNotImage
	}

	if size > limit {
		return ErrUploadTooLarge
	}

	return nil
}

// Upload validates and forwards an image to the backend storage endpoint,
// returning the public URL. Validation failures never reach the network.
func (a *Uploads) Upload(ctx context.Context, file io.Reader, filename, contentType, kind string, size int64) (string, error) {
	if err := ValidateImage(size, contentType, kind); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := form.WriteField("type", kind); err != nil {
		return "", fmt.Errorf("failed to build multipart form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	raw, err := a.client.DoMultipart(ctx, "/uploads", &buf, form.FormDataContentType())
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if !resp.Success || resp.Data.URL == "" {
		return "", fmt.Errorf("upload rejected by backend")
	}

	return resp.Data.URL, nil
}
