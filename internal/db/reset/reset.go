package reset

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/reset"
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxRecordRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxRecordRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxRecordRepository{db: db}
}

func (r *PgxRecordRepository) Create(
	ctx context.Context,
	input reset.CreateRecordInput,
) (rec reset.Record, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO password_reset (user_id, email, token_digest, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING user_id, email, token_digest, created_at, expires_at, used_at`,
		int64(input.UserID),
		string(input.Email),
		string(input.TokenDigest),
		input.CreatedAt,
		input.ExpiresAt,
	)
	return scanRecord(row)
}

func (r *PgxRecordRepository) GetByDigest(
	ctx context.Context,
	digest reset.TokenDigest,
) (rec reset.Record, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT user_id, email, token_digest, created_at, expires_at, used_at
		 FROM password_reset WHERE token_digest = $1`,
		string(digest),
	)
	rec, err = scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rec, reset.ErrRecordDoesNotExist
	}
	return rec, err
}

func (r *PgxRecordRepository) DeleteByUserID(ctx context.Context, userID user.ID) (count int64, err error) {
	commandTag, err := r.db.Exec(
		ctx,
		`DELETE FROM password_reset WHERE user_id = $1`,
		int64(userID),
	)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

func (r *PgxRecordRepository) MarkUsed(ctx context.Context, digest reset.TokenDigest, at time.Time) error {
	commandTag, err := r.db.Exec(
		ctx,
		`UPDATE password_reset SET used_at = $2 WHERE token_digest = $1 AND used_at IS NULL`,
		string(digest),
		at,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() > 0 {
		return nil
	}

	row := r.db.QueryRow(
		ctx,
		`SELECT 1 FROM password_reset WHERE token_digest = $1`,
		string(digest),
	)
	var one int
	err = row.Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return reset.ErrRecordDoesNotExist
	}
	if err != nil {
		return err
	}
	return reset.ErrTokenAlreadyUsed
}

func scanRecord(row pgx.Row) (rec reset.Record, err error) {
	var (
		userID      sql.NullInt64
		email       string
		tokenDigest string
		createdAt   time.Time
		expiresAt   sql.NullTime
		usedAt      sql.NullTime
	)
	err = row.Scan(&userID, &email, &tokenDigest, &createdAt, &expiresAt, &usedAt)
	if err != nil {
		return rec, err
	}
	return reset.Record{
		UserID:      c.NewOptional(user.ID(userID.Int64), userID.Valid),
		Email:       c.Email(email),
		TokenDigest: reset.TokenDigest(tokenDigest),
		CreatedAt:   createdAt,
		ExpiresAt:   c.NewOptional(expiresAt.Time, expiresAt.Valid),
		UsedAt:      c.NewOptional(usedAt.Time, usedAt.Valid),
	}, nil
}
