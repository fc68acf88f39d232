package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/dbx"
	"github.com/dmitrijs2005/dailylog/internal/server/auth"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
	"github.com/dmitrijs2005/dailylog/internal/server/password"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IssuePair signs a new credential pair for the account and stores the
// renewal half. Any previously issued renewal credential stops working.
func (s *AuthService) IssuePair(ctx context.Context, accountID string) (*auth.TokenPair, error) {
	if !validAccountRef(accountID) {
		return nil, common.ErrorNotFound
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, common.Infra("find account", err)
	}

	pair, err := s.sign(account)
	if err != nil {
		return nil, err
	}

	if err := repo.SetRefreshToken(ctx, account.ID, pair.RefreshToken); err != nil {
		return nil, common.Infra("store refresh token", err)
	}

	return &pair, nil
}

// Login checks a password and signs the account in. Accounts created
// through an external provider have no secret and always fail here.
//
// A correct secret on an unverified account yields ErrNotVerified and no
// session. This is stricter than the older flow, which let such accounts
// sign in; callers are expected to finish VerifyCode first.
func (s *AuthService) Login(ctx context.Context, email, secret string) (*Session, error) {
	if err := validation.Validate(email, required()...); err != nil {
		return nil, invalid(fmt.Errorf("email: %w", err))
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, common.Infra("find account", err)
	}

	hash, ok := models.SecretHash(account.Credential)
	if !ok {
		return nil, fmt.Errorf("%w: account has no password", common.ErrInvalidCredential)
	}

	if err := s.hasher.Compare(secret, hash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, fmt.Errorf("%w: wrong password", common.ErrInvalidCredential)
		}
		return nil, common.Infra("compare secret", err)
	}

	if !account.Verified {
		return nil, common.ErrNotVerified
	}

	pair, err := s.sign(account)
	if err != nil {
		return nil, err
	}

	if err := repo.SetRefreshToken(ctx, account.ID, pair.RefreshToken); err != nil {
		return nil, common.Infra("store refresh token", err)
	}

	s.logger.Info(ctx, "account signed in", "account_id", account.ID)
	return &Session{Account: account.View(), Tokens: pair}, nil
}

// Refresh trades a renewal credential for a new pair. Only the most recently
// issued renewal credential of the account is accepted.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if err := validation.Validate(refreshToken, required()...); err != nil {
		return nil, invalid(fmt.Errorf("refresh token: %w", err))
	}

	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil, tokenError(err)
	}

	var pair auth.TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		account, err := repo.FindByID(ctx, claims.UserID)
		if err != nil {
			return common.Infra("find account", err)
		}

		if account.RefreshToken == "" ||
			subtle.ConstantTimeCompare([]byte(account.RefreshToken), []byte(refreshToken)) != 1 {
			return fmt.Errorf("%w: refresh token revoked", common.ErrInvalidCredential)
		}

		pair, err = s.sign(account)
		if err != nil {
			return err
		}

		if err := repo.SetRefreshToken(ctx, account.ID, pair.RefreshToken); err != nil {
			return common.Infra("store refresh token", err)
		}
		return nil
	})
	if err != nil {
		return nil, common.Infra("refresh", err)
	}

	return &pair, nil
}

// Logout forgets the stored renewal credential. Logging out an account that
// has no active session is not an error.
func (s *AuthService) Logout(ctx context.Context, accountID string) error {
	if !validAccountRef(accountID) {
		return common.ErrorNotFound
	}

	repo := s.repomanager.Accounts(s.db)
	if err := repo.SetRefreshToken(ctx, accountID, ""); err != nil {
		return common.Infra("clear refresh token", err)
	}

	s.logger.Info(ctx, "account signed out", "account_id", accountID)
	return nil
}

// Authenticate verifies an access credential and returns its claims.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*auth.Claims, error) {
	claims, err := s.issuer.ParseAccess(accessToken)
	if err != nil {
		return nil, tokenError(err)
	}
	return claims, nil
}

func tokenError(err error) error {
	if errors.Is(err, common.ErrTokenExpired) {
		return fmt.Errorf("%w: %w", common.ErrExpired, err)
	}
	return fmt.Errorf("%w: %w", common.ErrInvalidCredential, err)
}
