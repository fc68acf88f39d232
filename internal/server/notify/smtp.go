package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/server/config"
)

// sendMail is a seam for testing smtp.SendMail.
var sendMail = smtp.SendMail

// SMTPNotifier sends plain-text mail through an authenticated SMTP relay.
type SMTPNotifier struct {
	host     string
	port     int
	user     string
	password string
	from     string
	appName  string
	validity time.Duration
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPNotifier{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		appName:  cfg.AppName,
		validity: cfg.OTPValidityDuration,
	}
}

func (n *SMTPNotifier) DeliverCode(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := ComposeCode(n.appName, code, n.validity)

	// RFC 822 headers, CRLF separated, blank line before the body.
	lines := []string{
		fmt.Sprintf("From: %s", n.from),
		fmt.Sprintf("To: %s", email),
		fmt.Sprintf("Subject: %s", msg.Subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		msg.Body,
	}

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	auth := smtp.PlainAuth("", n.user, n.password, n.host)

	if err := sendMail(addr, auth, n.from, []string{email}, []byte(strings.Join(lines, "\r\n"))); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
