package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The discount applies to the one-time setup fee, and the wire key says so.
func TestCreateInvoiceRequestSetupDiscountKey(t *testing.T) {
	var payload createInvoiceRequest
	err := json.Unmarshal([]byte(`{"lead_id":7,"plan_id":1,"setup_discount":500.00}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, uint(7), payload.LeadID)
	assert.Equal(t, uint(1), payload.PlanID)
	assert.Equal(t, "500.00", payload.Discount.String())
}

func TestCreateInvoiceRequestDiscountOptional(t *testing.T) {
	var payload createInvoiceRequest
	err := json.Unmarshal([]byte(`{"lead_id":7,"plan_id":1}`), &payload)
	require.NoError(t, err)
	assert.Empty(t, payload.Discount)
}
