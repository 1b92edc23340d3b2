package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends transactional email via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates a new email service. When fromEmail is empty the
// service is disabled and all sends are silently skipped.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendFamilyInvite emails an invitation to join a family. The link carries a
// signed token; the invite code is included for manual entry.
func (s *EmailService) SendFamilyInvite(ctx context.Context, toEmail, inviterName, familyName, inviteToken, inviteCode string) error {
	if !s.enabled {
		return nil
	}

	inviteURL := fmt.Sprintf("%s/invite/accept?token=%s", s.appBaseURL, inviteToken)
	subject := fmt.Sprintf("%s invited you to join %s on Famify", inviterName, familyName)

	htmlBody := fmt.Sprintf(`
		<h2>You're invited!</h2>
		<p>%s invited you to join the family <strong>%s</strong> on Famify.</p>
		<p><a href="%s">Accept the invitation</a></p>
		<p>Or enter this invite code after signing up: <strong>%s</strong></p>
		<p>This invitation expires in 7 days.</p>
	`, inviterName, familyName, inviteURL, inviteCode)

	textBody := fmt.Sprintf(
		"%s invited you to join the family %s on Famify.\n\nAccept: %s\n\nOr enter this invite code after signing up: %s\n\nThis invitation expires in 7 days.\n",
		inviterName, familyName, inviteURL, inviteCode)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *EmailService) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := s.fromEmail
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody)},
					Text: &types.Content{Data: aws.String(textBody)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
