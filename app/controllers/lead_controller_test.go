package controllers

import (
	"testing"
	"time"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadUpdatesPartialFields(t *testing.T) {
	updates, err := leadUpdates(map[string]interface{}{
		"name":  "Acme Stores",
		"email": "  acme@example.com ",
	})
	require.NoError(t, err)

	name := updates["name"].(*string)
	require.NotNil(t, name)
	assert.Equal(t, "Acme Stores", *name)

	email := updates["email"].(*string)
	require.NotNil(t, email)
	assert.Equal(t, "acme@example.com", *email)

	_, present := updates["status"]
	assert.False(t, present, "absent keys must not be touched")
}

// JSON numbers decode as float64 in a map payload; a numeric status is a
// type error the handler must reject, not crash on.
func TestLeadUpdatesRejectsNonStringStatus(t *testing.T) {
	_, err := leadUpdates(map[string]interface{}{"status": float64(5)})
	require.Error(t, err)
	assert.Equal(t, "Invalid status", err.Error())
}

func TestLeadUpdatesRejectsUnknownStatus(t *testing.T) {
	_, err := leadUpdates(map[string]interface{}{"status": "Imaginary"})
	require.Error(t, err)
	assert.Equal(t, "Invalid status", err.Error())
}

func TestLeadUpdatesConvertedStampsDate(t *testing.T) {
	updates, err := leadUpdates(map[string]interface{}{
		"status":       models.LeadStatusConverted,
		"converted_on": "2025-11-07",
	})
	require.NoError(t, err)

	converted, ok := updates["converted_on"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2025, converted.Year())
	assert.Equal(t, time.November, converted.Month())
	assert.Equal(t, 7, converted.Day())
}

// A malformed converted_on value falls back to the current time instead of
// being dereferenced.
func TestLeadUpdatesConvertedWithNumericDate(t *testing.T) {
	before := time.Now().Add(-time.Minute)
	updates, err := leadUpdates(map[string]interface{}{
		"status":       models.LeadStatusConverted,
		"converted_on": float64(123),
	})
	require.NoError(t, err)

	converted, ok := updates["converted_on"].(time.Time)
	require.True(t, ok)
	assert.True(t, converted.After(before))
}

func TestLeadUpdatesRejectsEmptyPhone(t *testing.T) {
	_, err := leadUpdates(map[string]interface{}{"phone": "  "})
	require.Error(t, err)
	assert.Equal(t, "Phone number cannot be empty", err.Error())
}

func TestLeadUpdatesRejectsEmptyPayload(t *testing.T) {
	_, err := leadUpdates(map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, "Nothing to update", err.Error())
}
