// Package services contains server-side business logic. AuthService owns the
// credential and session lifecycle: registration with emailed one-time
// codes, verification, password and external sign-in, renewal and logout.
package services

import (
	"database/sql"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/logging"
	"github.com/dmitrijs2005/dailylog/internal/server/auth"
	"github.com/dmitrijs2005/dailylog/internal/server/config"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
	"github.com/dmitrijs2005/dailylog/internal/server/notify"
	"github.com/dmitrijs2005/dailylog/internal/server/password"
	"github.com/dmitrijs2005/dailylog/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Session is what a successful sign-in returns: the sanitized account and a
// fresh credential pair.
type Session struct {
	Account models.View
	Tokens  auth.TokenPair
}

type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	notifier    notify.Notifier
	issuer      *auth.Issuer
	hasher      *password.Hasher
	otpValidity time.Duration
	logger      logging.Logger

	now          func() time.Time
	generateCode func() (string, error)
	newID        func() string
}

// NewAuthService wires the service from its collaborators and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, n notify.Notifier, cfg *config.Config, logger logging.Logger) *AuthService {
	validity := cfg.OTPValidityDuration
	if validity <= 0 {
		validity = common.DefaultOTPValidity
	}

	return &AuthService{
		db:          db,
		repomanager: m,
		notifier:    n,
		issuer: auth.NewIssuer(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
			cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration),
		hasher:      password.NewHasher(cfg.BcryptCost),
		otpValidity: validity,
		logger:      logger.With("module", "auth_service"),

		now:          time.Now,
		generateCode: common.GenerateOTP,
		newID:        uuid.NewString,
	}
}

// validAccountRef reports whether ref can name an account at all.
func validAccountRef(ref string) bool {
	_, err := uuid.Parse(ref)
	return err == nil
}

// newCode returns a fresh one-time code expiring otpValidity from now.
func (s *AuthService) newCode() (*models.OneTimeCode, error) {
	code, err := s.generateCode()
	if err != nil {
		return nil, common.Infra("generate code", err)
	}
	return &models.OneTimeCode{Code: code, ExpiresAt: s.now().Add(s.otpValidity)}, nil
}

func (s *AuthService) sign(a *models.Account) (auth.TokenPair, error) {
	pair, err := s.issuer.Issue(auth.Profile{
		UserID:      a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
	})
	if err != nil {
		return auth.TokenPair{}, common.Infra("issue tokens", err)
	}
	return pair, nil
}
