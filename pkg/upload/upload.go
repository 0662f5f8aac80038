// Package upload validates and persists PDF uploads for the resource
// library. Files are stored under opaque generated names, never the
// user-supplied one, so a filename can neither collide nor traverse paths.
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const pdfContentType = "application/pdf"

var pdfSignature = []byte("%PDF")

// Rejection reasons, checked in order. The first failure wins.
var (
	ErrBadExtension     = errors.New("file must have a .pdf extension")
	ErrBadContentType   = errors.New("file must be of type application/pdf")
	ErrTooLarge         = errors.New("file exceeds the maximum allowed size")
	ErrInvalidSignature = errors.New("file is not a valid PDF")
)

// Store validates PDF uploads and owns the upload root directory.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates the upload root if needed and returns a Store.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// SavePDF validates the upload and, on success, persists it under a fresh
// UUID filename inside the upload root. It returns the stored relative
// path and the byte size.
//
// Checks short-circuit in order: extension, declared content type, size
// ceiling, %PDF magic bytes. The reader is bounded while buffering so an
// oversize stream cannot exhaust memory.
func (s *Store) SavePDF(filename, contentType string, r io.Reader) (string, int64, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return "", 0, ErrBadExtension
	}

	// Declared type may carry parameters, e.g. "application/pdf; charset=binary".
	declared := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if !strings.EqualFold(declared, pdfContentType) {
		return "", 0, ErrBadContentType
	}

	content, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", 0, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(content)) > s.maxBytes {
		return "", 0, ErrTooLarge
	}

	if !validPDFContent(content) {
		return "", 0, ErrInvalidSignature
	}

	name := uuid.New().String() + ".pdf"
	fullPath := filepath.Join(s.dir, name)
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return "", 0, fmt.Errorf("write upload: %w", err)
	}

	return filepath.ToSlash(filepath.Join(s.dir, name)), int64(len(content)), nil
}

// validPDFContent checks the %PDF magic bytes, corroborated by content
// sniffing. The signature check is authoritative.
func validPDFContent(content []byte) bool {
	if len(content) < len(pdfSignature) {
		return false
	}
	if !strings.HasPrefix(string(content[:len(pdfSignature)]), string(pdfSignature)) {
		return false
	}

	// Sniffing recognizes "%PDF-" specifically; anything else with a bare
	// %PDF prefix is not a real PDF header.
	detected := http.DetectContentType(content)
	return strings.HasPrefix(detected, pdfContentType)
}

// FullPath resolves a stored path and rejects anything outside the upload
// root.
func (s *Store) FullPath(stored string) (string, error) {
	full := filepath.Clean(filepath.FromSlash(stored))
	root := filepath.Clean(s.dir)
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes upload root", stored)
	}
	return full, nil
}

// Exists reports whether the stored file is present on disk.
func (s *Store) Exists(stored string) bool {
	full, err := s.FullPath(stored)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}

// Delete removes a stored file. Deleting a file that is already gone is
// not an error.
func (s *Store) Delete(stored string) error {
	full, err := s.FullPath(stored)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}
