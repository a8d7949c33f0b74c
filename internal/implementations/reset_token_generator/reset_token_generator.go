package resettokengenerator

import (
	"accounts/internal/core/domain/reset"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const TOKEN_BYTES = 32

// Generator draws reset tokens from crypto/rand. Tokens authorize a password
// change, so a seedable PRNG is not good enough here.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() reset.Token {
	b := make([]byte, TOKEN_BYTES)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return reset.Token(base64.RawURLEncoding.EncodeToString(b))
}
