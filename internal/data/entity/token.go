package entity

import "time"

// TokenRecord is a single-use, time-limited token gating one of the three
// verification flows. The zero value is the "empty" state; an issued record
// holds a non-empty token with a future expiration. Stored as a JSONB column
// on the user row.
type TokenRecord struct {
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiration,omitempty"`
}

// NewTokenRecord issues an active record expiring ttl from now.
func NewTokenRecord(token string, ttl time.Duration) TokenRecord {
	expiresAt := time.Now().Add(ttl)
	return TokenRecord{
		Token:     token,
		ExpiresAt: &expiresAt,
	}
}

func (t TokenRecord) IsEmpty() bool {
	return t.Token == ""
}

func (t TokenRecord) IsExpired(now time.Time) bool {
	if t.IsEmpty() || t.ExpiresAt == nil {
		return false
	}
	return t.ExpiresAt.Before(now)
}

// Clear resets the record to the empty state. Redemption clears the record
// in the same update that applies its effect.
func (t *TokenRecord) Clear() {
	t.Token = ""
	t.ExpiresAt = nil
}
