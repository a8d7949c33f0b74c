package services

import (
	"accounts/internal/app/deps"
	"accounts/internal/core/services"
	confirmpasswordreset "accounts/internal/core/services/confirm_password_reset"
	getuserbyaccesstoken "accounts/internal/core/services/get_user_by_access_token"
	login "accounts/internal/core/services/log_in"
	requestpasswordreset "accounts/internal/core/services/request_password_reset"
	sendresetlink "accounts/internal/core/services/send_reset_link"
	signup "accounts/internal/core/services/sign_up"
)

type Services struct {
	SignUp               services.Service[signup.Input, signup.Result]
	LogIn                services.Service[login.Input, login.Result]
	GetUserByAccessToken services.Service[getuserbyaccesstoken.Input, getuserbyaccesstoken.Result]
	RequestPasswordReset services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	ConfirmPasswordReset services.Service[confirmpasswordreset.Input, confirmpasswordreset.Result]
	SendResetLink        services.Service[sendresetlink.Input, sendresetlink.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogIn = login.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.AccessTokenGenerator,
	)
	s.GetUserByAccessToken = getuserbyaccesstoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.AccessTokenGenerator,
	)
	s.RequestPasswordReset = requestpasswordreset.NewWithResetLinkSending(
		deps.Logger,
		deps.ResetLinkPublisher,
		requestpasswordreset.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.UserRepository,
			deps.ResetTokenGenerator,
			deps.ResetTokenTTL,
			deps.Now,
		),
	)
	s.ConfirmPasswordReset = confirmpasswordreset.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetRecordRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.SendResetLink = sendresetlink.New(
		deps.Logger,
		deps.EmailSender,
	)

	return s
}
