package email

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/reset"
	"context"
	"encoding/json"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Sender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                string
	passwordResetTemplate string
	frontendBaseURL       url.URL
}

func NewSender(
	awsConfig aws.Config,
	sender string,
	passwordResetTemplate string,
	frontendBaseURL url.URL,
) *Sender {
	return &Sender{
		ses:                   ses.NewFromConfig(awsConfig),
		sender:                sender,
		passwordResetTemplate: passwordResetTemplate,
		frontendBaseURL:       frontendBaseURL,
	}
}

type passwordResetTemplateParams struct {
	PasswordResetUrl string `json:"password_reset_url"`
}

func (s *Sender) SendResetLink(ctx context.Context, email c.Email, token reset.Token) error {
	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			PasswordResetUrl: s.buildResetLink(token),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	destination := string(email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{destination},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

func (s *Sender) buildResetLink(token reset.Token) string {
	link := s.frontendBaseURL.JoinPath("reset-password")
	query := url.Values{}
	query.Set("token", string(token))
	link.RawQuery = query.Encode()
	return link.String()
}
