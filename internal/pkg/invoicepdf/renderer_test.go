package invoicepdf

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AKM-dv/servicemate/internal/pkg/assets"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		BusinessName:    "Neighshop Global",
		BusinessAddress: "Mansarovar, Jaipur, Rajasthan 302020",
		ContactPhone:    "+91 8307802643",
		UPILabel:        "8307802643@axl",
		PaymentLines: []string{
			"Bank Name: STATE BANK OF INDIA",
			"Account Holder: Suman Kumari",
			"Account Number: 42213259870",
			"UPI: 8307802643@axl",
		},
	}
}

func TestRenderWithoutAnyAssets(t *testing.T) {
	assets.Flush()
	t.Cleanup(assets.Flush)
	timeutil.SetLocation(time.UTC)

	inv := detailsFixture("500.00")
	inv.GeneratedAt = time.Date(2025, 11, 7, 1, 24, 34, 0, time.UTC)

	// No logo path/URL and no QR configured: every text element must still
	// render and the output must be a complete PDF.
	out, err := Render(inv, testConfig())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(out), 1000)
}

func TestRenderSurvivesAssetFetchFailure(t *testing.T) {
	assets.Flush()
	t.Cleanup(assets.Flush)
	timeutil.SetLocation(time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.LogoURL = srv.URL + "/logo.png"
	cfg.QRImageURL = srv.URL + "/qr.jpeg"

	out, err := Render(detailsFixture("0"), cfg)
	require.NoError(t, err, "asset failure must never abort the render")
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderIsDeterministicInShape(t *testing.T) {
	assets.Flush()
	t.Cleanup(assets.Flush)
	timeutil.SetLocation(time.UTC)

	inv := detailsFixture("0")
	inv.GeneratedAt = time.Date(2025, 11, 7, 1, 24, 34, 0, time.UTC)

	first, err := Render(inv, testConfig())
	require.NoError(t, err)
	second, err := Render(inv, testConfig())
	require.NoError(t, err)

	// Same inputs produce the same amount of drawn content.
	assert.InDelta(t, len(first), len(second), 64)
}
