package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-env", writeTempEnv(t, "")}

	t.Setenv("DAILYLOG_ADDR", ":7000")
	t.Setenv("DAILYLOG_OTP_TTL", "5m")
	t.Setenv("DAILYLOG_BCRYPT_COST", "11")
	t.Setenv("DAILYLOG_MAILER", "smtp")
	t.Setenv("DAILYLOG_SMTP_PORT", "465")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":7000", cfg.EndpointAddrGRPC)
	assert.Equal(t, 5*time.Minute, cfg.OTPValidityDuration)
	assert.Equal(t, 11, cfg.BcryptCost)
	assert.Equal(t, "smtp", cfg.Mailer)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, "accessSecret", cfg.AccessTokenSecret)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	const key = "DAILYLOG_SES_REGION"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	os.Args = []string{"testbin", "-env", writeTempEnv(t, key+"=ap-south-1\n")}

	cfg := &Config{}
	parseEnv(cfg)

	assert.Equal(t, "ap-south-1", cfg.SESRegion)
}

func TestParseEnv_InvalidValuesPanic(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-env", writeTempEnv(t, "")}

	t.Run("duration", func(t *testing.T) {
		t.Setenv("DAILYLOG_ACCESS_TOKEN_TTL", "forever")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("integer", func(t *testing.T) {
		t.Setenv("DAILYLOG_SMTP_PORT", "many")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}

func TestParseEnv_MissingEnvFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "absent.env")}

	require.Panics(t, func() { parseEnv(&Config{}) })
}
