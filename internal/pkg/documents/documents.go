// Package documents stores rendered invoice files on local disk and serves
// them back under a fixed public prefix.
package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AKM-dv/servicemate/internal/pkg/env"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"github.com/gofiber/fiber/v2"
)

// PublicPrefix is the URL prefix rendered documents are served under.
const PublicPrefix = "/files/invoices"

// Dir resolves the storage directory for rendered invoices.
func Dir() string {
	return env.GetEnv("INVOICE_PDF_DIR", filepath.Join("static", "invoices"))
}

// Filename builds the timestamped name for one render. The timestamp is the
// render time in the civil zone, so a later re-render of the same invoice
// yields a new file and old files are kept.
func Filename(renderedAt time.Time, leadID uint) string {
	ts := timeutil.ToCivil(renderedAt).Format("20060102T150405")
	return fmt.Sprintf("INV_%s_%d.pdf", ts, leadID)
}

// Write persists document bytes and returns the public relative path.
func Write(filename string, data []byte) (string, error) {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create invoice dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write invoice document: %w", err)
	}
	return PublicPrefix + "/" + filename, nil
}

// AbsoluteURL resolves a stored relative document path to an absolute URL
// when a request context is available; otherwise the bare path is returned.
func AbsoluteURL(c *fiber.Ctx, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	p := *path
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return &p
	}
	if c != nil {
		abs := strings.TrimSuffix(c.BaseURL(), "/") + p
		return &abs
	}
	return &p
}
