package confirmpasswordreset

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/reset"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Token       reset.Token
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	recordRepository reset.Repository
	passwordHasher   user.PasswordHasher
	now              func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	recordRepository reset.Repository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if recordRepository == nil {
		panic(e.NewNilArgumentError("recordRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		recordRepository: recordRepository,
		passwordHasher:   passwordHasher,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	digest := reset.NewTokenDigest(input.Token)

	record, err := s.recordRepository.GetByDigest(ctx, digest)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, reset.ErrRecordDoesNotExist) {
		s.log.Info(ctx, "Reset record not found for submitted token.")
		return result, reset.ErrInvalidToken
	}
	if err != nil {
		s.log.Error(ctx, "Could not get reset record.", logging.Entry("err", err))
		return result, err
	}

	if record.IsUsed() {
		return result, reset.ErrTokenAlreadyUsed
	}
	if record.IsExpired(s.now()) {
		return result, reset.ErrTokenExpired
	}
	if !record.UserID.IsPresent {
		// A record without an owner should not exist. The client gets the
		// same answer as for an unknown token.
		s.log.Error(
			ctx,
			"Reset record has no user reference.",
			logging.Entry("tokenDigest", record.TokenDigest),
		)
		return result, reset.ErrInvalidToken
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	// The password update has to land before the record is consumed. A crash
	// in between leaves the token redeemable, not silently lost.
	err = s.userRepository.SetPassword(ctx, record.UserID.Value, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Warning(
			ctx,
			"Reset record points to a missing user.",
			logging.Entry("userID", record.UserID.Value),
		)
		return result, reset.ErrInvalidToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", record.UserID.Value),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.recordRepository.MarkUsed(ctx, digest, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, reset.ErrTokenAlreadyUsed) {
		// Lost the race against a concurrent redemption of the same token.
		return result, reset.ErrTokenAlreadyUsed
	}
	if errors.Is(err, reset.ErrRecordDoesNotExist) {
		return result, reset.ErrInvalidToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not mark reset record used.",
			logging.Entry("userID", record.UserID.Value),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", record.UserID.Value),
	)
	return result, nil
}
