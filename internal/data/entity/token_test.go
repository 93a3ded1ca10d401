package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRecord_Lifecycle(t *testing.T) {
	var record TokenRecord
	assert.True(t, record.IsEmpty())
	assert.False(t, record.IsExpired(time.Now()))

	record = NewTokenRecord("tok-123", time.Hour)
	assert.False(t, record.IsEmpty())
	assert.False(t, record.IsExpired(time.Now()))
	assert.True(t, record.IsExpired(time.Now().Add(2*time.Hour)))

	record.Clear()
	assert.True(t, record.IsEmpty())
	assert.Nil(t, record.ExpiresAt)
}

func TestTokenRecord_JSON(t *testing.T) {
	// Cleared records marshal to an empty object so the JSONB column holds
	// {} rather than null fields.
	var empty TokenRecord
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	record := NewTokenRecord("tok-123", time.Hour)
	data, err = json.Marshal(record)
	require.NoError(t, err)

	var decoded TokenRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "tok-123", decoded.Token)
	require.NotNil(t, decoded.ExpiresAt)
	assert.WithinDuration(t, *record.ExpiresAt, *decoded.ExpiresAt, time.Second)
}
