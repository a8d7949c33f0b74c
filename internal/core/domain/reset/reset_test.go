package reset

import (
	c "accounts/internal/core/domain/common"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTokenDigest(t *testing.T) {
	assert := require.New(t)

	digest := NewTokenDigest(Token("abc"))
	assert.Equal(
		TokenDigest("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"),
		digest,
	)
	assert.Equal(digest, NewTokenDigest(Token("abc")))
	assert.NotEqual(digest, NewTokenDigest(Token("abd")))
	assert.Len(string(NewTokenDigest(Token(""))), 64)
}

func TestTokenIsMaskedWhenFormatted(t *testing.T) {
	assert := require.New(t)

	assert.Equal("***", Token("very-secret-token").String())
}

func TestRecordIsExpired(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		id        string
		expiresAt c.Optional[time.Time]
		expired   bool
	}{
		{id: "future expiry", expiresAt: c.NewOptional(now.Add(time.Minute), true), expired: false},
		{id: "past expiry", expiresAt: c.NewOptional(now.Add(-time.Minute), true), expired: true},
		{id: "missing expiry", expiresAt: c.NewOptional(time.Time{}, false), expired: true},
	}
	for _, testCase := range cases {
		t.Run(testCase.id, func(t *testing.T) {
			record := Record{ExpiresAt: testCase.expiresAt}
			require.Equal(t, testCase.expired, record.IsExpired(now))
		})
	}
}
