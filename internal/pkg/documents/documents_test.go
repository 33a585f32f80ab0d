package documents

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	timeutil.SetLocation(loc)
	t.Cleanup(func() { timeutil.SetLocation(time.UTC) })

	// 19:54:34 UTC on Nov 6 is 01:24:34 on Nov 7 in Kolkata.
	generated := time.Date(2025, 11, 6, 19, 54, 34, 0, time.UTC)
	assert.Equal(t, "INV_20251107T012434_7.pdf", Filename(generated, 7))
}

func TestWriteReturnsPublicPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INVOICE_PDF_DIR", dir)

	path, err := Write("INV_20251107T012434_7.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, "/files/invoices/INV_20251107T012434_7.pdf", path)

	data, err := os.ReadFile(filepath.Join(dir, "INV_20251107T012434_7.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))
}

func TestWriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "invoices")
	t.Setenv("INVOICE_PDF_DIR", dir)

	_, err := Write("a.pdf", []byte("x"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "a.pdf"))
	assert.NoError(t, err)
}

func TestAbsoluteURLWithoutContext(t *testing.T) {
	assert.Nil(t, AbsoluteURL(nil, nil))

	empty := ""
	assert.Nil(t, AbsoluteURL(nil, &empty))

	rel := "/files/invoices/a.pdf"
	got := AbsoluteURL(nil, &rel)
	require.NotNil(t, got)
	assert.Equal(t, rel, *got, "no request context keeps the bare relative path")

	abs := "https://cdn.example.com/a.pdf"
	got = AbsoluteURL(nil, &abs)
	require.NotNil(t, got)
	assert.Equal(t, abs, *got)
}
