package upload

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), 1024)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestSavePDF(t *testing.T) {
	store := newTestStore(t)

	path, size, err := store.SavePDF("notes.pdf", "application/pdf", bytes.NewReader(pdfContent))
	if err != nil {
		t.Fatalf("SavePDF failed: %v", err)
	}
	if size != int64(len(pdfContent)) {
		t.Errorf("expected size %d, got %d", len(pdfContent), size)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Errorf("stored path should end in .pdf, got %q", path)
	}
	// stored under a generated name, never the client's
	if strings.Contains(path, "notes") {
		t.Errorf("stored path must not contain the original filename, got %q", path)
	}
	if !store.Exists(path) {
		t.Error("stored file should exist")
	}
}

func TestSavePDFContentTypeParams(t *testing.T) {
	store := newTestStore(t)

	if _, _, err := store.SavePDF("a.pdf", "application/pdf; charset=binary", bytes.NewReader(pdfContent)); err != nil {
		t.Fatalf("content type with parameters should be accepted: %v", err)
	}
}

func TestSavePDFRejections(t *testing.T) {
	store := newTestStore(t)

	cases := []struct {
		name        string
		filename    string
		contentType string
		content     []byte
		wantErr     error
	}{
		{"wrong extension", "evil.exe", "application/pdf", pdfContent, ErrBadExtension},
		{"wrong content type", "a.pdf", "text/html", pdfContent, ErrBadContentType},
		{"oversize", "a.pdf", "application/pdf", bytes.Repeat([]byte("x"), 2048), ErrTooLarge},
		{"bad signature", "evil.pdf", "application/pdf", []byte("MZ\x90\x00 not a pdf"), ErrInvalidSignature},
		{"bare magic without header", "a.pdf", "application/pdf", []byte("%PDFjunk"), ErrInvalidSignature},
		{"empty file", "a.pdf", "application/pdf", nil, ErrInvalidSignature},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := store.SavePDF(tc.filename, tc.contentType, bytes.NewReader(tc.content))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	// nothing may be written for a rejected upload
	entries, err := os.ReadDir(store.dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected uploads must not leave files, found %d", len(entries))
	}
}

func TestFullPathRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, stored := range []string{
		"../../etc/passwd",
		store.dir + "/../outside.pdf",
		"/etc/passwd",
	} {
		if _, err := store.FullPath(stored); err == nil {
			t.Errorf("FullPath(%q) should be rejected", stored)
		}
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	path, _, err := store.SavePDF("a.pdf", "application/pdf", bytes.NewReader(pdfContent))
	if err != nil {
		t.Fatalf("SavePDF failed: %v", err)
	}

	if err := store.Delete(path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Exists(path) {
		t.Error("file should be gone after Delete")
	}

	// second delete is a no-op, not an error
	if err := store.Delete(path); err != nil {
		t.Errorf("Delete of a missing file should not fail: %v", err)
	}

	if err := store.Delete(filepath.Join("..", "escape.pdf")); err == nil {
		t.Error("Delete outside the root should fail")
	}
}
