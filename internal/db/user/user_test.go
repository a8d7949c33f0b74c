package user

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateSuccess() {
	u, err := suite.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewEmail(EMAIL),
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			CreatedAt:    NOW,
		},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(c.NewEmail(EMAIL), u.Email)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.True(NOW.Equal(u.CreatedAt))
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	input := user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	}
	_, err := suite.repo.Create(context.Background(), input)

	assert := suite.Require()
	assert.Nil(err)

	_, err = suite.repo.Create(context.Background(), input)
	assert.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestGetByID() {
	created := s.createUser(EMAIL)

	u, err := s.repo.GetByID(context.Background(), created.ID)
	s.Nil(err)
	s.Equal(created.ID, u.ID)
	s.Equal(created.Email, u.Email)
	s.Equal(created.PasswordHash, u.PasswordHash)

	_, err = s.repo.GetByID(context.Background(), user.ID(111222333))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestGetByEmail() {
	created := s.createUser(EMAIL)

	u, err := s.repo.GetByEmail(context.Background(), c.NewEmail(EMAIL))
	s.Nil(err)
	s.Equal(created.ID, u.ID)

	_, err = s.repo.GetByEmail(context.Background(), c.NewEmail("unknown@test.test"))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestSetPassword() {
	u := s.createUser(EMAIL)
	s.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)

	newPassword := user.PasswordHash("new-password-hash")
	err := s.repo.SetPassword(context.Background(), u.ID, newPassword)
	s.Nil(err)

	userAfterUpdate := s.getUserByID(u.ID)
	s.Equal(newPassword, userAfterUpdate.PasswordHash)
}

func (s *testSuite) TestSetPasswordReturnsErrorIfUserDoesNotExist() {
	u := s.createUser(EMAIL)

	newPassword := user.PasswordHash("new-password-hash")
	err := s.repo.SetPassword(context.Background(), user.ID(111222333), newPassword)
	s.True(errors.Is(err, user.ErrUserDoesNotExist))

	userAfterUpdate := s.getUserByID(u.ID)
	s.Equal(u, userAfterUpdate)
}

func (s *testSuite) createUser(email string) user.User {
	s.T().Helper()
	u, err := s.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewEmail(email),
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNowf("could not create user", "err: %v", err)
	}
	return u
}

func (s *testSuite) getUserByID(id user.ID) user.User {
	s.T().Helper()
	u, err := s.repo.GetByID(context.Background(), id)
	if err != nil {
		s.FailNowf("could not get user by ID", "id: %v, err: %v", id, err)
	}
	return u
}
