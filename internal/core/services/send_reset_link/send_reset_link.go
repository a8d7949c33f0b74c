package sendresetlink

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/reset"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Email c.Email
	Token reset.Token
}

type Result struct{}

type service struct {
	log    logging.Logger
	sender reset.LinkSender
}

func New(
	log logging.Logger,
	sender reset.LinkSender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &service{log: log, sender: sender}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.sender.SendResetLink(ctx, input.Email, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not deliver password reset link.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"Password reset link has been sent.",
		logging.Entry("email", input.Email),
	)
	return result, nil
}
