// Package upload stores multipart file uploads under a static-served root,
// one subdirectory per category, with collision-proof filenames and
// per-category size and MIME limits.
package upload

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Category routes a file to its subdirectory and limit set.
type Category string

const (
	CategoryImage    Category = "images"
	CategoryAvatar   Category = "avatars"
	CategoryDocument Category = "documents"
)

var imageMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/svg+xml"}

var documentMIMEs = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
}

// Limits is the per-category policy.
type Limits struct {
	MaxBytes     int64
	AllowedMIMEs []string
}

// Store saves uploads and maps them to public URLs.
type Store struct {
	root       string
	publicBase string
	limits     map[Category]Limits
}

// New creates a store rooted at dir; publicBase is the URL prefix the static
// file server mounts the root under. Max sizes are per category, in MB.
func New(dir, publicBase string, maxImageMB, maxDocumentMB int) *Store {
	return &Store{
		root:       dir,
		publicBase: strings.TrimRight(publicBase, "/"),
		limits: map[Category]Limits{
			CategoryImage:    {MaxBytes: int64(maxImageMB) << 20, AllowedMIMEs: imageMIMEs},
			CategoryAvatar:   {MaxBytes: int64(maxImageMB) << 20, AllowedMIMEs: imageMIMEs},
			CategoryDocument: {MaxBytes: int64(maxDocumentMB) << 20, AllowedMIMEs: documentMIMEs},
		},
	}
}

// Root returns the directory served statically.
func (s *Store) Root() string { return s.root }

// PublicBase returns the URL prefix files are served under.
func (s *Store) PublicBase() string { return s.publicBase }

// Save validates and persists an upload, returning the public URL. The MIME
// type is sniffed from content, not trusted from the client header.
func (s *Store) Save(header *multipart.FileHeader, category Category) (string, error) {
	limits, ok := s.limits[category]
	if !ok {
		return "", fmt.Errorf("unknown upload category %q", category)
	}
	if header.Size > limits.MaxBytes {
		return "", fmt.Errorf("file exceeds the %d MB limit", limits.MaxBytes>>20)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to detect file type: %w", err)
	}
	if !allowed(mtype.String(), limits.AllowedMIMEs) {
		return "", fmt.Errorf("file type %s is not allowed", mtype.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	dir := filepath.Join(s.root, string(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := QualifyFilename(header.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(s.publicBase, string(category), name), nil
}

// QualifyFilename prefixes the original name with a timestamp and random
// suffix so concurrent uploads of the same file never collide.
func QualifyFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = sanitizeBase(base)

	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%d-%s-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), base, ext)
}

func sanitizeBase(base string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "file"
	}
	if len(out) > 60 {
		out = out[:60]
	}
	return out
}

func allowed(mime string, list []string) bool {
	for _, m := range list {
		if m == mime {
			return true
		}
	}
	return false
}
