package reset

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"context"
	"time"
)

type CreateRecordInput struct {
	UserID      user.ID
	Email       c.Email
	TokenDigest TokenDigest
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateRecordInput) (Record, error)
	GetByDigest(ctx context.Context, digest TokenDigest) (Record, error)
	// DeleteByUserID removes every record of the user, used or not.
	DeleteByUserID(ctx context.Context, userID user.ID) (count int64, err error)
	// MarkUsed sets used_at only if it is still unset. A record that was
	// already consumed yields ErrTokenAlreadyUsed, a missing one
	// ErrRecordDoesNotExist.
	MarkUsed(ctx context.Context, digest TokenDigest, at time.Time) error
}

type TokenGenerator interface {
	GenerateResetToken() Token
}

type LinkSender interface {
	SendResetLink(ctx context.Context, email c.Email, token Token) error
}
