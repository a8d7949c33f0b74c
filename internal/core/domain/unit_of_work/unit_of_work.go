package uow

import (
	"accounts/internal/core/domain/reset"
	"accounts/internal/core/domain/user"
	"context"
)

type Context interface {
	Users() user.UserRepository
	ResetRecords() reset.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
