package getuserbyaccesstoken

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = "test@test.test"
	ACCESS_TOKEN = "test-access-token"
)

var Now time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	TokenGenerator *user.FakeAccessTokenGenerator
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.TokenGenerator = user.NewFakeAccessTokenGenerator(ACCESS_TOKEN)
	suite.Service = New(suite.Logger, suite.UserRepository, suite.TokenGenerator)
}

func TestGetUserByAccessTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()
	token, err := s.TokenGenerator.GenerateAccessToken(u.ID)
	s.Nil(err)

	result, err := s.Service.Run(context.Background(), Input{Token: token})
	s.Nil(err)
	s.Equal(u.ID, result.User.ID)
	s.Equal(u.Email, result.User.Email)
}

func (s *testSuite) TestInvalidToken() {
	u := s.createUser()
	_, err := s.TokenGenerator.GenerateAccessToken(u.ID)
	s.Nil(err)

	_, err = s.Service.Run(
		context.Background(),
		Input{Token: user.AccessToken("not-the-token")},
	)
	s.ErrorIs(err, user.ErrInvalidAccessToken)
}

func (s *testSuite) TestTokenForMissingUser() {
	token, err := s.TokenGenerator.GenerateAccessToken(user.ID(42))
	s.Nil(err)

	_, err = s.Service.Run(context.Background(), Input{Token: token})
	s.ErrorIs(err, user.ErrInvalidAccessToken)
}

func (s *testSuite) createUser() user.User {
	hasher := user.NewFakePasswordHasher()
	passwordHash, err := hasher.HashPassword(user.RawPassword("Password123"))
	s.Nil(err)
	u, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		PasswordHash: passwordHash,
		CreatedAt:    Now,
	})
	s.Nil(err)
	return u
}
