package app

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	forgotpassword "accounts/internal/http/handlers/auth/forgot_password"
	login "accounts/internal/http/handlers/auth/log_in"
	me "accounts/internal/http/handlers/auth/me"
	resetpassword "accounts/internal/http/handlers/auth/reset_password"
	signup "accounts/internal/http/handlers/auth/sign_up"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/register", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserByAccessToken))
	authRouter.Method(http.MethodPost, "/password/forgot", forgotpassword.New(s.RequestPasswordReset, isTestMode))
	authRouter.Method(http.MethodPost, "/password/reset", resetpassword.New(s.ConfirmPasswordReset))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
