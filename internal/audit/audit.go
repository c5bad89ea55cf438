// Package audit persists a copy of every XML payload sent to the storefront.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timestampFormat = "20060102_150405"

// Status names the subdirectory an audit copy lands in.
type Status string

const (
	StatusOK     Status = "ok"
	StatusErrors Status = "errors"
)

// Writer writes timestamped audit copies under a base directory.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter creates an audit writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// NewWriterWithClock creates a writer with an injected clock.
func NewWriterWithClock(dir string, now func() time.Time) *Writer {
	return &Writer{dir: dir, now: now}
}

// Save writes xmlContent as <dir>/<status>/<timestamp>_<productID>.xml,
// creating directories as needed. Returns the written path.
func (w *Writer) Save(xmlContent, productID string, status Status) (string, error) {
	dir := filepath.Join(w.dir, string(status))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create audit directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.xml", w.now().Format(timestampFormat), productID)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(xmlContent), 0o644); err != nil {
		return "", fmt.Errorf("write audit copy: %w", err)
	}
	return path, nil
}
