package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sesTypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"quanlytaitro_backend/internals/configs"
)

// Mailer gửi email qua AWS SES v2. Nil nghĩa là SES chưa cấu hình,
// lúc đó hệ thống chỉ ghi email_logs (giống môi trường dev).
type Mailer struct {
	client *sesv2.Client
	sender string
}

// NewMailer trả về nil khi thiếu access key, caller phải chịu được nil.
func NewMailer(ctx context.Context) (*Mailer, error) {
	if configs.SESAccessKey == "" {
		return nil, nil
	}

	creds := credentials.NewStaticCredentialsProvider(
		configs.SESAccessKey,
		configs.SESSecretKey,
		"",
	)
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(configs.SESRegion),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Mailer{
		client: sesv2.NewFromConfig(awsCfg),
		sender: configs.SESSender,
	}, nil
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m == nil || m.client == nil {
		return nil
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination: &sesTypes.Destination{
			ToAddresses: []string{to},
		},
		Content: &sesTypes.EmailContent{
			Simple: &sesTypes.Message{
				Subject: &sesTypes.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &sesTypes.Body{
					Text: &sesTypes.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}
	return nil
}
