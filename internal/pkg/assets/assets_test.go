package assets

import (
	"bytes"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	for x := 0; x < 4; x++ {
		for y := 0; y < 6; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestLoadRemoteCachesSuccess(t *testing.T) {
	Flush()
	t.Cleanup(Flush)

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(testPNG(t))
	}))
	defer srv.Close()

	first := Load(srv.URL)
	require.NotNil(t, first)
	assert.Equal(t, 4, first.Width)
	assert.Equal(t, 6, first.Height)
	assert.NotEmpty(t, first.PNG)

	second := Load(srv.URL)
	require.NotNil(t, second)
	assert.Equal(t, 1, hits, "second load must come from the cache")
}

func TestLoadRemoteFailureIsSoftAndUncached(t *testing.T) {
	Flush()
	t.Cleanup(Flush)

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.Nil(t, Load(srv.URL))
	assert.Nil(t, Load(srv.URL))
	assert.Equal(t, 2, hits, "failures must not be cached")
}

func TestLoadLocalFile(t *testing.T) {
	Flush()
	t.Cleanup(Flush)

	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, testPNG(t), 0644))

	got := Load(path)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Width)
}

func TestLoadMissingLocalFile(t *testing.T) {
	Flush()
	t.Cleanup(Flush)

	assert.Nil(t, Load(filepath.Join(t.TempDir(), "missing.png")))
}

func TestLoadEmptySource(t *testing.T) {
	assert.Nil(t, Load(""))
}

func TestLoadUndecodableBytes(t *testing.T) {
	Flush()
	t.Cleanup(Flush)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	assert.Nil(t, Load(srv.URL))
}
