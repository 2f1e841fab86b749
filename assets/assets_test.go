package assets

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-order-api/models"
)

// 1x1 image fixtures
const (
	pngPixel = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="
	gifPixel = "R0lGODlhAQABAAAAACH5BAEKAAEALAAAAAABAAEAAAICTAEAOw=="
)

type fakeUploader struct {
	files map[string][]byte
	types map[string]string
	err   error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{files: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeUploader) Upload(_ context.Context, filename, contentType string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.files[filename] = data
	f.types[filename] = contentType
	return nil
}

func newTestRegistrar(t *testing.T) (*Registrar, *fakeUploader) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Asset{}))

	uploader := newFakeUploader()
	return &Registrar{DB: db, Uploader: uploader, BaseURL: "https://assets.test"}, uploader
}

var saltPattern = regexp.MustCompile(`^[A-Z0-9]{16}$`)

func TestCreate_PNG(t *testing.T) {
	r, uploader := newTestRegistrar(t)

	asset, err := r.Create(context.Background(), "data:image/png;base64,"+pngPixel)
	require.NoError(t, err)

	assert.Regexp(t, saltPattern, asset.Salt)
	assert.Equal(t, "png", asset.Extension)
	assert.Equal(t, 1, asset.Width)
	assert.Equal(t, 1, asset.Height)
	assert.Equal(t, "https://assets.test/"+asset.Salt+".png", asset.URL())
	assert.False(t, asset.CreatedAt.IsZero())

	require.Len(t, uploader.files, 1)
	assert.Contains(t, uploader.files, asset.Salt+".png")
	assert.Equal(t, "image/png", uploader.types[asset.Salt+".png"])

	var count int64
	require.NoError(t, r.DB.Model(&models.Asset{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreate_GIF(t *testing.T) {
	r, _ := newTestRegistrar(t)

	asset, err := r.Create(context.Background(), "data:image/gif;base64,"+gifPixel)
	require.NoError(t, err)
	assert.Equal(t, "gif", asset.Extension)
	assert.Equal(t, 1, asset.Width)
	assert.Equal(t, 1, asset.Height)
}

func TestCreate_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		imageData string
		want      error
	}{
		{name: "empty payload", imageData: "", want: ErrNoImageData},
		{name: "not a data URL", imageData: "just-some-text", want: ErrNotDataURL},
		{name: "http url", imageData: "https://example.com/cat.png", want: ErrNotDataURL},
		{name: "unsupported type", imageData: "data:image/bmp;base64," + pngPixel, want: ErrUnsupportedExt},
		{name: "broken base64", imageData: "data:image/png;base64,%%%%", want: ErrBadImage},
		{name: "valid base64, not an image", imageData: "data:image/png;base64,aGVsbG8=", want: ErrBadImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uploader := newTestRegistrar(t)
			_, err := r.Create(context.Background(), tt.imageData)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, IsValidation(err))
			assert.Empty(t, uploader.files, "nothing may be uploaded on rejection")

			var count int64
			require.NoError(t, r.DB.Model(&models.Asset{}).Count(&count).Error)
			assert.Zero(t, count, "no asset row may persist on rejection")
		})
	}
}

func TestCreate_UploadFailurePersistsNothing(t *testing.T) {
	r, uploader := newTestRegistrar(t)
	uploader.err = errors.New("bucket unreachable")

	_, err := r.Create(context.Background(), "data:image/png;base64,"+pngPixel)
	require.Error(t, err)
	assert.False(t, IsValidation(err))

	var count int64
	require.NoError(t, r.DB.Model(&models.Asset{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNormalizeExtension(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "jpg", normalizeExtension("jpeg"))
	assert.Equal(t, "jpg", normalizeExtension("JPEG"))
	assert.Equal(t, "png", normalizeExtension("PNG"))
	assert.Equal(t, "gif", normalizeExtension("gif"))
}
