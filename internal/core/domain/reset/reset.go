package reset

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Token is the plaintext reset secret. It is handed to the user out-of-band
// and never persisted.
type Token string

func (t Token) String() string {
	return "***"
}

// TokenDigest is the only form of the token the record store ever sees.
type TokenDigest string

func NewTokenDigest(token Token) TokenDigest {
	sum := sha256.Sum256([]byte(token))
	return TokenDigest(hex.EncodeToString(sum[:]))
}

// Record is one outstanding or historical password-reset attempt. UserID and
// ExpiresAt are optional so that a corrupted record can be detected instead of
// decoded into zero values.
type Record struct {
	UserID      c.Optional[user.ID]
	Email       c.Email
	TokenDigest TokenDigest
	CreatedAt   time.Time
	ExpiresAt   c.Optional[time.Time]
	UsedAt      c.Optional[time.Time]
}

func (r *Record) IsUsed() bool {
	return r.UsedAt.IsPresent
}

func (r *Record) IsExpired(now time.Time) bool {
	if !r.ExpiresAt.IsPresent {
		return true
	}
	return r.ExpiresAt.Value.Before(now)
}
