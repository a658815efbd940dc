package ggcanvas

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ErrEmpty is returned when writing a snapshot of a zero-size canvas.
var ErrEmpty = errors.New("ggcanvas: canvas is empty")

// WritePNG encodes the current pixels to dir/<timestamp>_<label>.png and
// returns the path written. The directory is created if needed.
func (c *Canvas) WritePNG(dir, label string) (string, error) {
	if c.empty() {
		return "", ErrEmpty
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := c.writePNG(path); err != nil {
		return "", err
	}
	return path, nil
}

// SnapshotFunc adapts WritePNG for squares.HeadlessHost.SetSnapshotFunc.
func (c *Canvas) SnapshotFunc(dir string) func(label string) error {
	return func(label string) error {
		_, err := c.WritePNG(dir, label)
		return err
	}
}

func (c *Canvas) writePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.ctx.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel maps a snapshot label to a file-name-safe stem. Runes
// outside [A-Za-z0-9.-] become underscores; a blank label is "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(fileRune, label)
}

func fileRune(r rune) rune {
	if r < utf8.RuneSelf && (r == '-' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return r
	}
	return '_'
}
