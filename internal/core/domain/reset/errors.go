package reset

import "errors"

var (
	ErrRecordDoesNotExist = errors.New("password reset record does not exist")
	ErrInvalidToken       = errors.New("invalid password reset token")
	ErrTokenAlreadyUsed   = errors.New("password reset token already used")
	ErrTokenExpired       = errors.New("password reset token expired")
)
