package requestpasswordreset

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/reset"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email c.Email
}

// Result carries the plaintext token for out-of-band delivery only. Token is
// absent when the email is unknown; callers must not let the difference show.
type Result struct {
	Email c.Email
	Token c.Optional[reset.Token]
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	userRepository user.UserRepository
	tokenGenerator reset.TokenGenerator
	tokenTTL       time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	userRepository user.UserRepository,
	tokenGenerator reset.TokenGenerator,
	tokenTTL time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		userRepository: userRepository,
		tokenGenerator: tokenGenerator,
		tokenTTL:       tokenTTL,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result.Email = input.Email

	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Not an error: the caller-visible outcome must not reveal whether
		// the account exists.
		s.log.Info(ctx, "Password reset requested for unknown email.")
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset request.",
			logging.Entry("err", err),
		)
		return result, err
	}

	token := s.tokenGenerator.GenerateResetToken()
	now := s.now()

	unit, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer unit.Rollback(ctx)

	// Superseding any outstanding record keeps at most one active token per
	// user; orphaned tokens stop matching a stored digest and die with them.
	_, err = unit.ResetRecords().DeleteByUserID(ctx, u.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete previous reset records.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	_, err = unit.ResetRecords().Create(ctx, reset.CreateRecordInput{
		UserID:      u.ID,
		Email:       u.Email,
		TokenDigest: reset.NewTokenDigest(token),
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.tokenTTL),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create reset record.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	err = unit.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset record has been created.",
		logging.Entry("userID", u.ID),
	)
	result.Token = c.NewOptional(token, true)
	return result, nil
}
