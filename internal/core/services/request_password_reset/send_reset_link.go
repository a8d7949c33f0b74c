package requestpasswordreset

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/reset"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type serviceWithResetLinkSending struct {
	log    logging.Logger
	sender reset.LinkSender
	inner  services.Service[Input, Result]
}

// NewWithResetLinkSending hands the issued token to the sender after the
// record is durable. Sender failures are logged and swallowed: the response
// has already been committed as successful and must stay that way.
func NewWithResetLinkSending(
	log logging.Logger,
	sender reset.LinkSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithResetLinkSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithResetLinkSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if err != nil {
		return result, err
	}
	if !result.Token.IsPresent {
		return result, nil
	}

	err = s.sender.SendResetLink(ctx, result.Email, result.Token.Value)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error(
			ctx,
			"Could not send password reset link.",
			logging.Entry("email", result.Email),
			logging.Entry("err", err),
		)
	}
	return result, nil
}
