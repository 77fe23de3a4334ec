package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	assert.Equal(t, OrderAscending, ParseOrder("asc"))
	assert.Equal(t, OrderDescending, ParseOrder("desc"))
	assert.Equal(t, OrderDescending, ParseOrder(""))
	assert.Equal(t, OrderDescending, ParseOrder("newest"))
}

func TestAccountStatusValid(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusInactive.Valid())
	assert.False(t, AccountStatus("FROZEN").Valid())
	assert.False(t, AccountStatus("").Valid())
}

func TestAccountJSONUsesWireFieldNames(t *testing.T) {
	account := Account{
		ID:         "abc",
		Name:       "John Doe",
		NationalID: "36070315502",
		Status:     StatusActive,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	body, err := json.Marshal(account)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(body, &wire))
	assert.Equal(t, "36070315502", wire["nationalId"])
	assert.Equal(t, "ACTIVE", wire["status"])
	assert.Contains(t, wire, "createdAt")
	assert.Contains(t, wire, "updatedAt")
}
