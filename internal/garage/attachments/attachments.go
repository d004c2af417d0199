// Package attachments stores invoice and legal document files on local disk.
package attachments

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/google/uuid"
)

// DefaultMaxBytes is the upload limit when none is configured.
const DefaultMaxBytes = 5 << 20

// Kind selects the subdirectory a file is stored under.
type Kind string

const (
	KindInvoice    Kind = "invoices"
	KindObligation Kind = "obligations"
)

var (
	ErrTooLarge    = errors.New("attachments: file too large")
	ErrUnsupported = errors.New("attachments: only PDF and image files are accepted")
	ErrEmpty       = errors.New("attachments: empty file")
	ErrBadPath     = errors.New("attachments: invalid path")
	ErrNotFound    = errors.New("attachments: file not found")
)

var extensions = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/bmp":       ".bmp",
}

// Storage keeps files under Root. Stored paths are always relative to Root
// and use forward slashes.
type Storage struct {
	Root     string
	MaxBytes int64
}

func New(root string, maxBytes int64) (*Storage, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	for _, k := range []Kind{KindInvoice, KindObligation} {
		if err := os.MkdirAll(filepath.Join(root, string(k)), 0o750); err != nil {
			return nil, fmt.Errorf("attachments: create %s dir: %w", k, err)
		}
	}
	return &Storage{Root: root, MaxBytes: maxBytes}, nil
}

// Save sniffs the content type, enforces the size limit and writes the file
// as <kind>/<vehicleID>-<uuid><ext>. The returned path is relative to Root.
func (s *Storage) Save(kind Kind, vehicleID string, up domain.Upload) (string, error) {
	if up.Content == nil {
		return "", ErrEmpty
	}
	if up.Size > s.MaxBytes {
		return "", ErrTooLarge
	}

	br := bufio.NewReaderSize(up.Content, 512)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("attachments: read: %w", err)
	}
	if len(head) == 0 {
		return "", ErrEmpty
	}

	ctype, _, _ := strings.Cut(http.DetectContentType(head), ";")
	ext, ok := extensions[ctype]
	if !ok {
		return "", ErrUnsupported
	}

	rel := path.Join(string(kind), fmt.Sprintf("%s-%s%s", safeName(vehicleID), uuid.NewString(), ext))
	full := filepath.Join(s.Root, filepath.FromSlash(rel))

	f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("attachments: create: %w", err)
	}

	// Read one byte past the limit so oversize files are caught even when
	// the declared size lied.
	n, err := io.Copy(f, io.LimitReader(br, s.MaxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = os.Remove(full)
		return "", fmt.Errorf("attachments: write: %w", err)
	case closeErr != nil:
		_ = os.Remove(full)
		return "", fmt.Errorf("attachments: close: %w", closeErr)
	case n > s.MaxBytes:
		_ = os.Remove(full)
		return "", ErrTooLarge
	}
	return rel, nil
}

// Open returns the stored file and its content type.
func (s *Storage) Open(rel string) (*os.File, string, error) {
	full, err := s.resolve(rel)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(full)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return f, contentType(rel), nil
}

// Remove deletes a stored file. Missing files and empty paths are ignored.
func (s *Storage) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Storage) resolve(rel string) (string, error) {
	if rel == "" || !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", ErrBadPath
	}
	return filepath.Join(s.Root, filepath.FromSlash(rel)), nil
}

func contentType(rel string) string {
	ext := path.Ext(rel)
	for ct, e := range extensions {
		if e == ext {
			return ct
		}
	}
	return "application/octet-stream"
}

func safeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, s)
}
