package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/flagx"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the server reads.
const EnvPrefix = "DAILYLOG_"

const defaultEnvFile = ".env"

// loadEnvFile loads the dotenv file named by -env, or ./.env when present.
// Variables already set in the process environment win over the file.
func loadEnvFile() {
	path := flagx.EnvFileFlag()
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return
		}
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		panic(err)
	}
}

// parseEnv overlays DAILYLOG_* variables onto config. Durations use
// time.ParseDuration syntax. Malformed numbers or durations panic.
func parseEnv(config *Config) {
	loadEnvFile()

	envString(&config.EndpointAddrGRPC, "ADDR")
	envString(&config.DatabaseDSN, "DATABASE_DSN")
	envString(&config.AccessTokenSecret, "ACCESS_TOKEN_SECRET")
	envString(&config.RefreshTokenSecret, "REFRESH_TOKEN_SECRET")
	envDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_TTL")
	envDuration(&config.RefreshTokenValidityDuration, "REFRESH_TOKEN_TTL")
	envDuration(&config.OTPValidityDuration, "OTP_TTL")
	envInt(&config.BcryptCost, "BCRYPT_COST")
	envString(&config.LogLevel, "LOG_LEVEL")
	envString(&config.AppName, "APP_NAME")
	envString(&config.Mailer, "MAILER")
	envString(&config.MailFrom, "MAIL_FROM")
	envString(&config.SMTPHost, "SMTP_HOST")
	envInt(&config.SMTPPort, "SMTP_PORT")
	envString(&config.SMTPUser, "SMTP_USER")
	envString(&config.SMTPPassword, "SMTP_PASSWORD")
	envString(&config.SESRegion, "SES_REGION")
	envString(&config.SESAccessKeyID, "SES_ACCESS_KEY_ID")
	envString(&config.SESSecretAccessKey, "SES_SECRET_ACCESS_KEY")
	envString(&config.SESBaseEndpoint, "SES_BASE_ENDPOINT")
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
		*dst = v
	}
}

func envInt(dst *int, key string) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
