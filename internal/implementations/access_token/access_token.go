package accesstoken

import (
	"accounts/internal/core/domain/user"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT issues and verifies HS256 bearer tokens whose subject is the user ID.
type JWT struct {
	secretKey     []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewJWT(secretKey string, validDuration time.Duration, now func() time.Time) *JWT {
	return &JWT{
		secretKey:     []byte(secretKey),
		validDuration: validDuration,
		now:           now,
	}
}

func (g *JWT) GenerateAccessToken(userID user.ID) (user.AccessToken, error) {
	now := g.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.validDuration)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secretKey)
	if err != nil {
		return user.AccessToken(""), err
	}
	return user.AccessToken(token), nil
}

func (g *JWT) ValidateAccessToken(token user.AccessToken) (userID user.ID, ok bool) {
	parsed, err := jwt.ParseWithClaims(
		string(token),
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) { return g.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil || !parsed.Valid {
		return userID, false
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return userID, false
	}
	rawUserID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return userID, false
	}
	return user.ID(rawUserID), true
}
