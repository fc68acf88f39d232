// Package notify delivers one-time verification codes to account owners.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/logging"
	"github.com/dmitrijs2005/dailylog/internal/server/config"
)

// Notifier delivers a verification code to an email address. Delivery is
// synchronous; an error means the code may not have reached the owner.
type Notifier interface {
	DeliverCode(ctx context.Context, email, code string) error
}

// Message is a rendered verification email.
type Message struct {
	Subject string
	Body    string
}

const verifySubject = "Verify your email"

// ComposeCode renders the verification email for code.
func ComposeCode(appName, code string, validity time.Duration) Message {
	body := fmt.Sprintf(
		"Hello,\n\n"+
			"Thank you for signing up for %s! To complete your registration, please use the verification code below:\n\n"+
			"Verification Code: %s\n\n"+
			"This code will expire in %d minutes.\n\n"+
			"Best regards,\nThe %s Team",
		appName, code, int(validity.Minutes()), appName)

	return Message{Subject: verifySubject, Body: body}
}

// New builds the notifier selected by cfg.Mailer.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (Notifier, error) {
	switch cfg.Mailer {
	case config.MailerSMTP:
		return NewSMTPNotifier(cfg), nil
	case config.MailerSES:
		return NewSESNotifier(ctx, cfg)
	case config.MailerLog, "":
		return NewLogNotifier(logger, cfg), nil
	default:
		return nil, fmt.Errorf("unknown mailer %q", cfg.Mailer)
	}
}
