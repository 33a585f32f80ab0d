package models

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The schema exists twice: the SQL migration and the gorm column tags fed to
// AutoMigrate at boot. When they disagree, AutoMigrate silently alters the
// freshly migrated column, so the column types asserted here must stay in
// lockstep with the model tags.
func TestMigrationMatchesModelColumnTypes(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000001_init_schema.up.sql"))
	require.NoError(t, err)
	ddl := strings.ToLower(string(raw))

	columns := []struct {
		column string
		ddlRe  string
	}{
		{column: "invoices.invoice_number", ddlRe: `invoice_number varchar\(64\) not null`},
		{column: "users.pin_hash", ddlRe: `pin_hash varchar\(255\) null`},
		{column: "invoice_counters.month_prefix", ddlRe: `month_prefix varchar\(16\)`},
		{column: "lead_payments.payment_method", ddlRe: `payment_method varchar\(64\)`},
		{column: "plans.name", ddlRe: `name varchar\(120\) not null`},
		{column: "leads.phone", ddlRe: `phone varchar\(20\) not null`},
		{column: "plans.sort_order", ddlRe: `sort_order int not null`},
	}

	for _, c := range columns {
		if !regexp.MustCompile(c.ddlRe).MatchString(ddl) {
			t.Errorf("migration column %s does not match the model tag (want /%s/)", c.column, c.ddlRe)
		}
	}
}
