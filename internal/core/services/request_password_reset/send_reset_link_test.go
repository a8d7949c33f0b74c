package requestpasswordreset

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/reset"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type sendTestSuite struct {
	suite.Suite
	Logger  *logging.FakeLogger
	Uow     *uow.FakeUnitOfWork
	Sender  *reset.FakeLinkSender
	Service services.Service[Input, Result]
}

func (suite *sendTestSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Uow = uow.NewFakeUnitOfWork()
	suite.Sender = reset.NewFakeLinkSender()
	suite.Service = NewWithResetLinkSending(
		suite.Logger,
		suite.Sender,
		New(
			suite.Logger,
			suite.Uow,
			suite.Uow.Context.UserRepository,
			reset.NewFakeTokenGenerator(RESET_TOKEN),
			TOKEN_TTL,
			func() time.Time { return Now },
		),
	)
}

func TestRequestPasswordResetWithLinkSending(t *testing.T) {
	suite.Run(t, new(sendTestSuite))
}

func (s *sendTestSuite) TestLinkSentForKnownEmail() {
	s.createUser(EMAIL)

	_, err := s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL)})
	s.Nil(err)

	s.Equal(1, s.Sender.SentCount())
	s.Equal(c.Email(EMAIL), s.Sender.Sent[0].Email)
	s.Equal(reset.Token(RESET_TOKEN), s.Sender.Sent[0].Token)
}

func (s *sendTestSuite) TestNothingSentForUnknownEmail() {
	_, err := s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL)})
	s.Nil(err)
	s.Equal(0, s.Sender.SentCount())
}

func (s *sendTestSuite) TestSenderErrorIsSwallowed() {
	s.createUser(EMAIL)
	s.Sender.ReturnError = true

	result, err := s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL)})
	s.Nil(err)
	s.True(result.Token.IsPresent)
	s.Equal(1, len(s.Logger.LoggedWithLevel(logging.ERROR)))
}

func (s *sendTestSuite) createUser(email string) user.User {
	hasher := user.NewFakePasswordHasher()
	passwordHash, err := hasher.HashPassword(user.RawPassword("old-password"))
	s.Nil(err)
	u, err := s.Uow.Context.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(email),
		PasswordHash: passwordHash,
		CreatedAt:    Now,
	})
	s.Nil(err)
	return u
}
