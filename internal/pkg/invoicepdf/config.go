package invoicepdf

import (
	"strings"

	"github.com/AKM-dv/servicemate/internal/pkg/env"
)

const defaultBusinessAddress = "Shri Ram Nagar, 8-B, opp. Dhanwantri Hospital & Research Centre, " +
	"near New Sanganer Road, Mansarovar, Jaipur, Rajasthan 302020"

// Config is the fixed branding and payment-instruction surface of rendered
// invoices. Resolved once per render from environment values that are fixed
// at process start.
type Config struct {
	BusinessName    string
	BusinessAddress string
	ContactPhone    string
	LogoLocalPath   string
	LogoURL         string
	QRImageURL      string
	UPILabel        string
	PaymentLines    []string
}

// ConfigFromEnv resolves the render configuration. INVOICE_PAYMENT_LINES is
// a pipe-delimited override for the four default payment instruction lines.
func ConfigFromEnv() Config {
	upiID := env.GetEnv("UPI_ID", "8307802643@axl")

	cfg := Config{
		BusinessName:    env.GetEnv("BUSINESS_NAME", "Neighshop Global"),
		BusinessAddress: env.GetEnv("BUSINESS_ADDRESS", defaultBusinessAddress),
		ContactPhone:    env.GetEnv("CONTACT_PHONE", "+91 8307802643"),
		LogoLocalPath:   env.GetEnv("INVOICE_LOGO_PATH", "logo.png"),
		LogoURL:         env.GetEnv("INVOICE_LOGO_URL", ""),
		QRImageURL:      env.GetEnv("QR_IMAGE_URL", ""),
		UPILabel:        env.GetEnv("UPI_LABEL", upiID),
	}

	if raw := env.GetEnv("INVOICE_PAYMENT_LINES", ""); raw != "" {
		for _, line := range strings.Split(raw, "|") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				cfg.PaymentLines = append(cfg.PaymentLines, trimmed)
			}
		}
	}
	if len(cfg.PaymentLines) == 0 {
		cfg.PaymentLines = []string{
			"Bank Name: " + env.GetEnv("BANK_NAME", "STATE BANK OF INDIA"),
			"Account Holder: " + env.GetEnv("ACCOUNT_HOLDER", "Suman Kumari"),
			"Account Number: " + env.GetEnv("BANK_ACCOUNT_NO", "42213259870"),
			"UPI: " + cfg.UPILabel,
		}
	}

	return cfg
}
