package login

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

type Result struct {
	Token user.AccessToken
}

type service struct {
	log                  logging.Logger
	userRepository       user.UserRepository
	passwordHasher       user.PasswordHasher
	accessTokenGenerator user.AccessTokenGenerator
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	accessTokenGenerator user.AccessTokenGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if accessTokenGenerator == nil {
		panic(e.NewNilArgumentError("accessTokenGenerator"))
	}
	return &service{
		log:                  log,
		userRepository:       userRepository,
		passwordHasher:       passwordHasher,
		accessTokenGenerator: accessTokenGenerator,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(input.Password)
		return result, user.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(ctx, "Could not get user by email.", logging.Entry("err", err))
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	accessToken, err := s.accessTokenGenerator.GenerateAccessToken(u.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not generate access token for user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User successfully authenticated, access token issued.",
		logging.Entry("userID", u.ID),
	)
	return Result{Token: accessToken}, nil
}
