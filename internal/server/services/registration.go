package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/dbx"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
)

// Register creates a pending account and emails it a one-time code. It
// returns the account reference only; no credentials are issued until the
// code is verified.
//
// A delivery failure does not undo the registration: the reference is
// returned together with the infrastructure error so the caller can offer
// ResendCode.
func (s *AuthService) Register(ctx context.Context, email, displayName, secret string) (string, error) {
	if err := (registerInput{Email: email, DisplayName: displayName, Secret: secret}).Validate(); err != nil {
		return "", err
	}

	repo := s.repomanager.Accounts(s.db)

	exists, err := repo.ExistsByEmailOrDisplayName(ctx, email, displayName)
	if err != nil {
		return "", common.Infra("lookup account", err)
	}
	if exists {
		return "", fmt.Errorf("%w: email or display name is taken", common.ErrConflict)
	}

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return "", common.Infra("hash secret", err)
	}

	otp, err := s.newCode()
	if err != nil {
		return "", err
	}

	account := &models.Account{
		ID:          s.newID(),
		Email:       email,
		DisplayName: displayName,
		Credential:  models.LocalCredential{SecretHash: hash},
		OTP:         otp,
	}

	// The unique constraints still decide when two registrations race.
	if _, err := repo.Create(ctx, account); err != nil {
		return "", common.Infra("create account", err)
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID)

	if err := s.deliver(ctx, account); err != nil {
		return account.ID, err
	}

	return account.ID, nil
}

// ResendCode replaces any pending code with a fresh one and delivers it.
// There is no throttling; every call issues a new code.
func (s *AuthService) ResendCode(ctx context.Context, accountRef string) error {
	if !validAccountRef(accountRef) {
		return common.ErrorNotFound
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByID(ctx, accountRef)
	if err != nil {
		return common.Infra("find account", err)
	}

	otp, err := s.newCode()
	if err != nil {
		return err
	}
	account.OTP = otp

	if err := repo.Save(ctx, account); err != nil {
		return common.Infra("save account", err)
	}

	return s.deliver(ctx, account)
}

// VerifyCode consumes the pending code and signs the account in. The code is
// compared before its expiry is checked, so a wrong code always reports
// InvalidCredential. Verification and the first credential pair are written
// in one transaction.
func (s *AuthService) VerifyCode(ctx context.Context, accountRef, code string) (*Session, error) {
	if !validAccountRef(accountRef) {
		return nil, common.ErrorNotFound
	}

	var session *Session
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		account, err := repo.FindByID(ctx, accountRef)
		if err != nil {
			return common.Infra("find account", err)
		}

		if account.OTP == nil || account.OTP.Code != code {
			return fmt.Errorf("%w: code does not match", common.ErrInvalidCredential)
		}
		if account.OTP.Expired(s.now()) {
			return fmt.Errorf("%w: code has expired", common.ErrExpired)
		}

		account.Verified = true
		account.OTP = nil

		pair, err := s.sign(account)
		if err != nil {
			return err
		}
		account.RefreshToken = pair.RefreshToken

		if err := repo.Save(ctx, account); err != nil {
			return common.Infra("save account", err)
		}

		session = &Session{Account: account.View(), Tokens: pair}
		return nil
	})
	if err != nil {
		return nil, common.Infra("verify code", err)
	}

	s.logger.Info(ctx, "account verified", "account_id", accountRef)
	return session, nil
}

func (s *AuthService) deliver(ctx context.Context, account *models.Account) error {
	if err := s.notifier.DeliverCode(ctx, account.Email, account.OTP.Code); err != nil {
		s.logger.Error(ctx, "code delivery failed", "account_id", account.ID, "error", err)
		return common.Infra("deliver code", err)
	}
	return nil
}
