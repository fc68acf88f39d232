package notify

import (
	"context"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/logging"
	"github.com/dmitrijs2005/dailylog/internal/server/config"
)

// LogNotifier writes codes to the log instead of sending mail. Development only.
type LogNotifier struct {
	logger   logging.Logger
	appName  string
	validity time.Duration
}

func NewLogNotifier(logger logging.Logger, cfg *config.Config) *LogNotifier {
	return &LogNotifier{
		logger:   logger.With("module", "notify", "channel", config.MailerLog),
		appName:  cfg.AppName,
		validity: cfg.OTPValidityDuration,
	}
}

func (n *LogNotifier) DeliverCode(ctx context.Context, email, code string) error {
	msg := ComposeCode(n.appName, code, n.validity)
	n.logger.Info(ctx, "verification code", "email", email, "subject", msg.Subject, "code", code)
	return nil
}
