package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       uint16 `env:"PORT" envDefault:"8080"`
	Secret     string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`

	RabbitmqURL               string `env:"RABBITMQ_URL,required"`
	RabbitmqResetLinkExchange string `env:"RABBITMQ_RESET_LINK_EXCHANGE" envDefault:""`
	RabbitmqResetLinkQueue    string `env:"RABBITMQ_RESET_LINK_QUEUE" envDefault:"password-reset-link"`

	BcryptHasherCost            int `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	AccessTokenValidDurationHrs int `env:"ACCESS_TOKEN_VALID_DURATION_HOURS" envDefault:"24"`
	PasswordResetExpireMinutes  int `env:"PASSWORD_RESET_EXPIRE_MINUTES" envDefault:"30"`

	FrontendBaseURL url.URL `env:"FRONTEND_BASE_URL,required"`

	AwsRegion                     string `env:"AWS_REGION" envDefault:"eu-west-1"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender                string `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"password-reset"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return config, nil
}
