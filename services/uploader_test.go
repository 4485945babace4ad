package services

import (
	"bytes"
	"context"
	"image"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeyFormat(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	key := ObjectKey("staff", "Photo.JPG", now)
	assert.Regexp(t, regexp.MustCompile(`^staff/1700000000123_[0-9a-f]{8}\.jpg$`), key)

	assert.Regexp(t, `^misc/1700000000123_[0-9a-f]{8}$`, ObjectKey("/", "noext", now))
	assert.NotEqual(t, key, ObjectKey("staff", "Photo.JPG", now))
}

func TestUploadOneStoresFile(t *testing.T) {
	store := newMemStorage()
	up := newTestUploader(store)

	fh := fileHeaders(t, "file", testFile{"receipt.pdf", []byte("%PDF-1.4 fake")})[0]
	got, err := up.UploadOne(context.Background(), "receipts", fh)
	require.NoError(t, err)

	assert.Contains(t, got.Key, "receipts/")
	assert.Equal(t, "https://cdn.test/"+got.Key, got.URL)
	assert.Equal(t, []byte("%PDF-1.4 fake"), store.objects[got.Key])
}

func TestUploadOneNilFile(t *testing.T) {
	_, err := newTestUploader(newMemStorage()).UploadOne(context.Background(), "x", nil)
	assert.ErrorIs(t, err, ErrEmptyUpload)
}

func TestUploadOneResizesWideImages(t *testing.T) {
	store := newMemStorage()
	up := NewUploader(store, 50, nil)

	fh := fileHeaders(t, "file", testFile{"wide.png", pngBytes(t, 200, 100)})[0]
	got, err := up.UploadOne(context.Background(), "slides", fh)
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(store.objects[got.Key]))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 25, cfg.Height)
}

func TestUploadManyContinuesPastFailures(t *testing.T) {
	store := newMemStorage()
	up := newTestUploader(store)

	files := fileHeaders(t, "images",
		testFile{"one.png", pngBytes(t, 4, 4)},
		testFile{"two.png", []byte("not a png")},
		testFile{"three.png", pngBytes(t, 4, 4)},
	)
	results := up.UploadMany(context.Background(), "news", files)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrUnsupportedImage)
	assert.NoError(t, results[2].Err)

	ok := Succeeded(results)
	require.Len(t, ok, 2)
	assert.Equal(t, results[0].File, ok[0])
	assert.Equal(t, results[2].File, ok[1])
	assert.Equal(t, 2, store.count())

	failed := Failures(results)
	require.Len(t, failed, 1)
	assert.Equal(t, "two.png", failed[0].Filename)
}

func TestUploaderReplaceDeletesPrevious(t *testing.T) {
	store := newMemStorage()
	up := newTestUploader(store)
	ctx := context.Background()

	first, err := up.UploadOne(ctx, "slides", fileHeaders(t, "file", testFile{"a.gif", []byte("GIF89a")})[0])
	require.NoError(t, err)

	second, err := up.Replace(ctx, "slides", first.Key, fileHeaders(t, "file", testFile{"b.gif", []byte("GIF89a")})[0])
	require.NoError(t, err)

	assert.False(t, store.has(first.Key))
	assert.True(t, store.has(second.Key))
}

func TestUploadOneStorageFailure(t *testing.T) {
	store := newMemStorage()
	store.failPut = true
	_, err := newTestUploader(store).UploadOne(context.Background(), "x",
		fileHeaders(t, "file", testFile{"a.pdf", []byte("x")})[0])
	assert.Error(t, err)
}

func TestLocalStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "partners/logo.png", bytes.NewReader([]byte("data")), 4, "image/png"))
	assert.Equal(t, "http://localhost:8080/uploads/partners/logo.png", s.PublicURL("partners/logo.png"))
	assert.Equal(t, "", s.PublicURL(""))

	// path นอก Dir ถูกดึงกลับเข้ามาใน Dir
	full, err := s.path("../../etc/passwd")
	require.NoError(t, err)
	assert.Contains(t, full, dir)

	require.NoError(t, s.Delete(ctx, "partners/logo.png"))
	require.NoError(t, s.Delete(ctx, "partners/logo.png"))
}
