// Package assets fetches brand/QR images for invoice documents. Fetches are
// best-effort: any failure is logged and reported as a missing asset so
// document generation can continue without it.
package assets

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	gocache "github.com/patrickmn/go-cache"
)

const fetchTimeout = 10 * time.Second

// maxCachedAssets caps the process-lifetime cache. Entries never expire;
// sources beyond the cap are still fetched, just not retained.
const maxCachedAssets = 32

var httpClient = &http.Client{Timeout: fetchTimeout}

// Entries are immutable once stored, so the cache is safe to share across
// requests.
var store = gocache.New(gocache.NoExpiration, 0)

// Image is a fetched asset normalized to PNG for document embedding.
type Image struct {
	PNG    []byte
	Width  int
	Height int
}

// Load resolves a local path or http(s) URL to a normalized image. Returns
// nil when the asset cannot be fetched or decoded; only successful loads are
// cached, so transient failures are retried on the next render.
func Load(source string) *Image {
	if source == "" {
		return nil
	}

	if cached, ok := store.Get(source); ok {
		return cached.(*Image)
	}

	raw, err := read(source)
	if err != nil {
		log.Printf("Warning: failed to load asset %s: %v", source, err)
		return nil
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Printf("Warning: failed to decode asset %s: %v", source, err)
		return nil
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		log.Printf("Warning: failed to encode asset %s: %v", source, err)
		return nil
	}

	bounds := img.Bounds()
	asset := &Image{
		PNG:    buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	if store.ItemCount() < maxCachedAssets {
		store.Set(source, asset, gocache.NoExpiration)
	}
	return asset
}

// Flush clears the cache. Used by tests.
func Flush() {
	store.Flush()
}

func read(source string) ([]byte, error) {
	if isRemote(source) {
		resp, err := httpClient.Get(source)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(source)
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
