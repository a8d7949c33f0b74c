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

const (
	EMAIL       = "test@test.test"
	RESET_TOKEN = "test-reset-token"
	TOKEN_TTL   = 30 * time.Minute
)

var Now time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	Uow            *uow.FakeUnitOfWork
	TokenGenerator *reset.FakeTokenGenerator
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Uow = uow.NewFakeUnitOfWork()
	suite.TokenGenerator = reset.NewFakeTokenGenerator(RESET_TOKEN)
	suite.Service = New(
		suite.Logger,
		suite.Uow,
		suite.Uow.Context.UserRepository,
		suite.TokenGenerator,
		TOKEN_TTL,
		func() time.Time { return Now },
	)
}

func TestRequestPasswordResetService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccessRecordCreated() {
	u := s.createUser(EMAIL)

	result, err := s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL)})
	s.Nil(err)
	s.True(result.Token.IsPresent)
	s.Equal(reset.Token(RESET_TOKEN), result.Token.Value)
	s.Equal(c.Email(EMAIL), result.Email)

	records := s.Uow.Context.RecordRepository.Records
	s.Equal(1, len(records))
	record := records[0]
	s.Equal(u.ID, record.UserID.Value)
	s.Equal(c.Email(EMAIL), record.Email)
	s.Equal(reset.NewTokenDigest(reset.Token(RESET_TOKEN)), record.TokenDigest)
	s.Equal(Now, record.CreatedAt)
	s.True(record.ExpiresAt.IsPresent)
	s.Equal(Now.Add(TOKEN_TTL), record.ExpiresAt.Value)
	s.False(record.UsedAt.IsPresent)

	s.True(s.Uow.Context.WasCommitCalled)
}

func (s *testSuite) TestSecondRequestSupersedesFirstRecord() {
	u := s.createUser(EMAIL)

	_, err := s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL)})
	s.Nil(err)
	firstDigest := s.Uow.Context.RecordRepository.Records[0].TokenDigest

	s.TokenGenerator.Token = reset.Token("another-reset-token")
	_, err = s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL)})
	s.Nil(err)

	records := s.Uow.Context.RecordRepository.Records
	s.Equal(1, len(records))
	s.Equal(u.ID, records[0].UserID.Value)
	s.NotEqual(firstDigest, records[0].TokenDigest)

	_, err = s.Uow.Context.RecordRepository.GetByDigest(context.Background(), firstDigest)
	s.ErrorIs(err, reset.ErrRecordDoesNotExist)
}

func (s *testSuite) TestUnknownEmailNoTokenNoSideEffects() {
	s.createUser(EMAIL)

	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.Email("unknown@test.test")},
	)
	s.Nil(err)
	s.False(result.Token.IsPresent)

	s.Equal(0, len(s.Uow.Context.RecordRepository.Records))
	s.False(s.Uow.Context.WasCommitCalled)
}

func (s *testSuite) TestRecordCreationFailed() {
	s.createUser(EMAIL)
	s.Uow.Context.RecordRepository.ReturnError = true

	result, err := s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL)})
	s.NotNil(err)
	s.False(result.Token.IsPresent)
	s.False(s.Uow.Context.WasCommitCalled)
	s.True(s.Uow.Context.WasRollbackCalled)
}

func (s *testSuite) createUser(email string) user.User {
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
