package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "/uploads", 5, 10)

	url, err := store.Save(fileHeader(t, "Team Photo.PNG", pngBytes), CategoryImage)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/images/"), "got %s", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension lowercased: %s", url)

	// the file is actually on disk
	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, "images", name))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestSaveRejectsDisallowedType(t *testing.T) {
	store := New(t.TempDir(), "/uploads", 5, 10)

	_, err := store.Save(fileHeader(t, "script.sh", []byte("#!/bin/sh\nrm -rf /")), CategoryImage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestSaveRejectsSpoofedExtension(t *testing.T) {
	store := New(t.TempDir(), "/uploads", 5, 10)

	// plain text pretending to be a png; content sniffing wins
	_, err := store.Save(fileHeader(t, "fake.png", []byte("just some text")), CategoryImage)
	require.Error(t, err)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := New(t.TempDir(), "/uploads", 1, 1)

	big := make([]byte, 2<<20)
	copy(big, pngBytes)
	_, err := store.Save(fileHeader(t, "big.png", big), CategoryImage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestSaveUnknownCategory(t *testing.T) {
	store := New(t.TempDir(), "/uploads", 5, 10)
	_, err := store.Save(fileHeader(t, "a.png", pngBytes), Category("videos"))
	require.Error(t, err)
}

func TestQualifyFilename(t *testing.T) {
	shape := regexp.MustCompile(`^\d+-[0-9a-f]{8}-[a-z0-9_-]+\.png$`)

	name := QualifyFilename("My Vacation Photo!.PNG")
	assert.Regexp(t, shape, name)
	assert.Contains(t, name, "my-vacation-photo")

	// two calls never collide
	assert.NotEqual(t, QualifyFilename("a.png"), QualifyFilename("a.png"))
}

func TestQualifyFilenameDegenerateNames(t *testing.T) {
	name := QualifyFilename("???.jpg")
	assert.Contains(t, name, "-file.jpg")

	long := strings.Repeat("a", 200) + ".png"
	name = QualifyFilename(long)
	assert.LessOrEqual(t, len(name), 100)
}
