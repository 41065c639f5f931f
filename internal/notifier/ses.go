package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"personalbook/internal/logger"
	"personalbook/internal/model"
)

// sesAPI is the slice of the SES client used here, mockable in tests.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

var _ model.Notifier = (*SES)(nil)

// SES sends the registration email through Amazon SES. The sender address
// must be SES-verified.
type SES struct {
	api    sesAPI
	sender string
	logger *logger.Logger
}

// NewSES creates an SES notifier for the given region and sender address.
func NewSES(ctx context.Context, region, sender string, logger *logger.Logger) (*SES, error) {
	if sender == "" {
		return nil, fmt.Errorf("sender email address is not configured")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &SES{
		api:    ses.NewFromConfig(cfg),
		sender: sender,
		logger: logger,
	}, nil
}

// NewSESWithAPI allows injecting a mockable API (used in tests).
func NewSESWithAPI(api sesAPI, sender string, logger *logger.Logger) *SES {
	return &SES{api: api, sender: sender, logger: logger}
}

// Notify emails the new user their secret id.
func (n *SES) Notify(ctx context.Context, email, username, secretID string) error {
	htmlBody := fmt.Sprintf(`<html><body>
<h2>Welcome to Personal Book, %s!</h2>
<p>Your master admin has successfully registered you.</p>
<p>Use the following details to log in:</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Secret User ID:</strong> <code>%s</code></p>
<br/>
<p>This is your unique ID to access and manage your profile.</p>
</body></html>`, username, email, secretID)
	textBody := fmt.Sprintf("Welcome to Personal Book, %s! Your Secret User ID is: %s. Use this to log in.",
		username, secretID)

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{email},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String("Your Personal Book Registration Details"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(htmlBody),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(textBody),
				},
			},
		},
		Source: aws.String(n.sender),
	}

	if _, err := n.api.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send registration email: %w", err)
	}

	n.logger.Info("SES notifier: registration email sent", "email", email)

	return nil
}
