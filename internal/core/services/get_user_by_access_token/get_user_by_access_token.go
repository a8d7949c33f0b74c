package getuserbyaccesstoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Token user.AccessToken
}

type Result struct {
	User user.User
}

type service struct {
	log                  logging.Logger
	userRepository       user.UserRepository
	accessTokenGenerator user.AccessTokenGenerator
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	accessTokenGenerator user.AccessTokenGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if accessTokenGenerator == nil {
		panic(e.NewNilArgumentError("accessTokenGenerator"))
	}
	return &service{
		log:                  log,
		userRepository:       userRepository,
		accessTokenGenerator: accessTokenGenerator,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	userID, ok := s.accessTokenGenerator.ValidateAccessToken(input.Token)
	if !ok {
		return result, user.ErrInvalidAccessToken
	}
	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Token outlived the account.
		return result, user.ErrInvalidAccessToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by ID.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{User: u}, nil
}
