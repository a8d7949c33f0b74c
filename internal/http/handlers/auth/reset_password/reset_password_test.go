package resetpassword

import (
	"accounts/internal/core/domain/reset"
	"accounts/internal/core/domain/user"
	service "accounts/internal/core/services/confirm_password_reset"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	return result, nil
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{
			id:             "success",
			body:           `{"token": "test-reset-token", "password": "new-password"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "token too short",
			body:           `{"token": "short", "password": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password too short",
			body:           `{"token": "test-reset-token", "password": "1234567"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing token",
			body:           `{"password": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid token",
			body:           `{"token": "test-reset-token", "password": "new-password"}`,
			serviceErr:     reset.ErrInvalidToken,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "invalid token",
		},
		{
			id:             "token already used",
			body:           `{"token": "test-reset-token", "password": "new-password"}`,
			serviceErr:     reset.ErrTokenAlreadyUsed,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "token already used",
		},
		{
			id:             "token expired",
			body:           `{"token": "test-reset-token", "password": "new-password"}`,
			serviceErr:     reset.ErrTokenExpired,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "token expired",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/auth/password/reset", strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{err: testcase.serviceErr}
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedError != "" {
				assert.Contains(t, rr.Body.String(), testcase.expectedError)
			}
		})
	}
}

func TestResetPasswordPassesInputToService(t *testing.T) {
	req, err := http.NewRequest(
		"POST",
		"/auth/password/reset",
		strings.NewReader(`{"token": "test-reset-token", "password": "new-password"}`),
	)
	if err != nil {
		t.Fatal(err)
	}

	stub := &stubService{}
	rr := httptest.NewRecorder()
	handler := New(stub)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(
		t,
		&service.Input{
			Token:       reset.Token("test-reset-token"),
			NewPassword: user.RawPassword("new-password"),
		},
		stub.input,
	)
}
