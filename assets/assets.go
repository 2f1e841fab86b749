// Package assets turns data-URL encoded images into publicly readable
// objects. The registrar validates the payload, probes its dimensions,
// uploads the bytes and persists the Asset row; any failure on that path is
// returned, so callers never end up referencing a broken image.
package assets

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"food-order-api/models"
)

var (
	ErrNoImageData    = errors.New("no image data supplied")
	ErrNotDataURL     = errors.New("image data is not a base64 data URL")
	ErrBadImage       = errors.New("image data could not be decoded")
	ErrUnsupportedExt = errors.New("unsupported file type")
)

// IsValidation reports whether err was caused by the caller's payload
// rather than by storage.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoImageData) || errors.Is(err, ErrNotDataURL) ||
		errors.Is(err, ErrBadImage) || errors.Is(err, ErrUnsupportedExt)
}

// allowedExtensions is the fixed allow-list of image file types.
var allowedExtensions = map[string]bool{
	"png":  true,
	"gif":  true,
	"jpg":  true,
	"jpeg": true,
}

var dataURLPattern = regexp.MustCompile(`^data:image/([A-Za-z]+);base64,`)

const saltLength = 16

const saltChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Registrar stores image blobs and the Asset rows describing them.
type Registrar struct {
	DB       *gorm.DB
	Uploader Uploader
	BaseURL  string
}

// Create validates a data-URL image, uploads it under a random 16 character
// filename stem and persists the Asset row. The returned asset is immutable.
func (r *Registrar) Create(ctx context.Context, imageData string) (*models.Asset, error) {
	if imageData == "" {
		return nil, ErrNoImageData
	}
	m := dataURLPattern.FindStringSubmatch(imageData)
	if m == nil {
		return nil, ErrNotDataURL
	}
	ext := normalizeExtension(m[1])
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	raw, err := base64.StdEncoding.DecodeString(imageData[len(m[0]):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	salt := newSalt()
	filename := salt + "." + ext
	if err := r.Uploader.Upload(ctx, filename, "image/"+strings.ToLower(m[1]), raw); err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	asset := models.Asset{
		BaseURL:   r.BaseURL,
		Salt:      salt,
		Extension: ext,
		Width:     cfg.Width,
		Height:    cfg.Height,
		CreatedAt: time.Now(),
	}
	if err := r.DB.Create(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// normalizeExtension lowercases the data-URL subtype and maps the jpeg MIME
// subtype onto the jpg extension.
func normalizeExtension(subtype string) string {
	ext := strings.ToLower(subtype)
	if ext == "jpeg" {
		return "jpg"
	}
	return ext
}

// newSalt returns a random uppercase-alphanumeric filename stem.
func newSalt() string {
	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	for i := range b {
		b[i] = saltChars[int(b[i])%len(saltChars)]
	}
	return string(b)
}
