package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/dmitrijs2005/dailylog/internal/logging"
	"github.com/dmitrijs2005/dailylog/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(mailer string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Mailer = mailer
	cfg.SMTPUser = "bot@example.com"
	cfg.SMTPPassword = "pw"
	return cfg
}

func TestComposeCode(t *testing.T) {
	msg := ComposeCode("dailylog", "482913", 10*time.Minute)

	assert.Equal(t, "Verify your email", msg.Subject)
	assert.Contains(t, msg.Body, "482913")
	assert.Contains(t, msg.Body, "10 minutes")
	assert.Contains(t, msg.Body, "dailylog")
}

func TestNew_SelectsChannel(t *testing.T) {
	n, err := New(context.Background(), testConfig(config.MailerLog), logging.Nop{})
	require.NoError(t, err)
	assert.IsType(t, &LogNotifier{}, n)

	n, err = New(context.Background(), testConfig(""), logging.Nop{})
	require.NoError(t, err)
	assert.IsType(t, &LogNotifier{}, n)

	n, err = New(context.Background(), testConfig(config.MailerSMTP), logging.Nop{})
	require.NoError(t, err)
	assert.IsType(t, &SMTPNotifier{}, n)

	_, err = New(context.Background(), testConfig("pigeon"), logging.Nop{})
	assert.ErrorContains(t, err, "pigeon")
}

func TestLogNotifier_LogsCode(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logging.NewJSON(&buf, "debug"), testConfig(config.MailerLog))

	require.NoError(t, n.DeliverCode(context.Background(), "a@x.io", "123456"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "123456", rec["code"])
	assert.Equal(t, "a@x.io", rec["email"])
	assert.Equal(t, "notify", rec["module"])
}

func TestSMTPNotifier_DeliverCode(t *testing.T) {
	orig := sendMail
	defer func() { sendMail = orig }()

	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  string
	)
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
		return nil
	}

	n := NewSMTPNotifier(testConfig(config.MailerSMTP))
	require.NoError(t, n.DeliverCode(context.Background(), "a@x.io", "654321"))

	assert.Equal(t, "smtp.gmail.com:587", gotAddr)
	assert.Equal(t, "no-reply@dailylog.local", gotFrom)
	assert.Equal(t, []string{"a@x.io"}, gotTo)
	assert.True(t, strings.HasPrefix(gotMsg, "From: no-reply@dailylog.local\r\nTo: a@x.io\r\nSubject: Verify your email\r\n"))
	assert.Contains(t, gotMsg, "\r\n\r\n")
	assert.Contains(t, gotMsg, "654321")
}

func TestSMTPNotifier_FallsBackToUserAsSender(t *testing.T) {
	cfg := testConfig(config.MailerSMTP)
	cfg.MailFrom = ""
	assert.Equal(t, "bot@example.com", NewSMTPNotifier(cfg).from)
}

func TestSMTPNotifier_Errors(t *testing.T) {
	orig := sendMail
	defer func() { sendMail = orig }()
	sendMail = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("relay down") }

	n := NewSMTPNotifier(testConfig(config.MailerSMTP))
	err := n.DeliverCode(context.Background(), "a@x.io", "1")
	assert.ErrorContains(t, err, "smtp send: relay down")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.DeliverCode(ctx, "a@x.io", "1"), context.Canceled)
}

func stubSES(t *testing.T) {
	t.Helper()
	origLoad, origNew, origSend := loadDefaultAWSConfig, newSESClientFromConfig, sendEmail
	t.Cleanup(func() {
		loadDefaultAWSConfig, newSESClientFromConfig, sendEmail = origLoad, origNew, origSend
	})
}

func TestNewSESNotifier_AppliesOptions(t *testing.T) {
	stubSES(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "eu-west-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		if lo.Credentials == nil {
			t.Fatalf("static credentials not applied")
		}
		return aws.Config{}, nil
	}

	var capturedBaseEndpoint string
	newSESClientFromConfig = func(cfg aws.Config, optFns ...func(*sesv2.Options)) *sesv2.Client {
		var opts sesv2.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint != nil {
			capturedBaseEndpoint = *opts.BaseEndpoint
		}
		return &sesv2.Client{}
	}

	cfg := testConfig(config.MailerSES)
	cfg.SESRegion = "eu-west-1"
	cfg.SESAccessKeyID = "AKID"
	cfg.SESSecretAccessKey = "secret"
	cfg.SESBaseEndpoint = "http://127.0.0.1:4566"

	n, err := New(context.Background(), cfg, logging.Nop{})
	require.NoError(t, err)
	assert.IsType(t, &SESNotifier{}, n)
	assert.Equal(t, "http://127.0.0.1:4566", capturedBaseEndpoint)
}

func TestNewSESNotifier_LoadError(t *testing.T) {
	stubSES(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := NewSESNotifier(context.Background(), testConfig(config.MailerSES))
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("expected load-fail, got %v", err)
	}
}

func TestSESNotifier_DeliverCode(t *testing.T) {
	stubSES(t)

	var got *sesv2.SendEmailInput
	sendEmail = func(c *sesv2.Client, ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
		got = in
		return &sesv2.SendEmailOutput{}, nil
	}

	n := &SESNotifier{client: &sesv2.Client{}, from: "no-reply@dailylog.local", appName: "dailylog", validity: 10 * time.Minute}
	require.NoError(t, n.DeliverCode(context.Background(), "a@x.io", "111222"))

	require.NotNil(t, got)
	assert.Equal(t, "no-reply@dailylog.local", aws.ToString(got.FromEmailAddress))
	assert.Equal(t, []string{"a@x.io"}, got.Destination.ToAddresses)
	assert.Equal(t, "Verify your email", aws.ToString(got.Content.Simple.Subject.Data))
	assert.Contains(t, aws.ToString(got.Content.Simple.Body.Text.Data), "111222")

	sendEmail = func(*sesv2.Client, context.Context, *sesv2.SendEmailInput, ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
		return nil, errors.New("throttled")
	}
	assert.ErrorContains(t, n.DeliverCode(context.Background(), "a@x.io", "1"), "ses send: throttled")
}
