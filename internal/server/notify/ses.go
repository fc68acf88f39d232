package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/dmitrijs2005/dailylog/internal/server/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newSESClientFromConfig = func(cfg aws.Config, optFns ...func(*sesv2.Options)) *sesv2.Client {
		return sesv2.NewFromConfig(cfg, optFns...)
	}

	sendEmail = func(c *sesv2.Client, ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
		return c.SendEmail(ctx, in, optFns...)
	}
)

// SESNotifier sends mail through Amazon SES (API v2).
type SESNotifier struct {
	client   *sesv2.Client
	from     string
	appName  string
	validity time.Duration
}

// NewSESNotifier builds an SES client from static credentials when given,
// otherwise from the default AWS credential chain.
func NewSESNotifier(ctx context.Context, cfg *config.Config) (*SESNotifier, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.SESRegion),
	}
	if cfg.SESAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.SESAccessKeyID,
			cfg.SESSecretAccessKey,
			"",
		)))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := newSESClientFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.SESBaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.SESBaseEndpoint)
		}
	})

	return &SESNotifier{
		client:   client,
		from:     cfg.MailFrom,
		appName:  cfg.AppName,
		validity: cfg.OTPValidityDuration,
	}, nil
}

func (n *SESNotifier) DeliverCode(ctx context.Context, email, code string) error {
	msg := ComposeCode(n.appName, code, n.validity)

	in := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from),
		Destination:      &types.Destination{ToAddresses: []string{email}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	if _, err := sendEmail(n.client, ctx, in); err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
