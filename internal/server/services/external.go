package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
)

// LinkOrCreate signs in through an external identity provider.
//
// In signup mode an unknown email gets a new, already verified account with
// no local secret; a known email is a conflict. In login mode the email must
// exist; the provider identity is attached the first time and the account is
// signed in either way.
func (s *AuthService) LinkOrCreate(ctx context.Context, p ExternalProfile, mode Mode) (*Session, error) {
	if err := (linkInput{ExternalProfile: p, Mode: mode}).Validate(); err != nil {
		return nil, err
	}

	if mode == ModeSignup {
		return s.externalSignup(ctx, p)
	}
	return s.externalLogin(ctx, p)
}

func (s *AuthService) externalSignup(ctx context.Context, p ExternalProfile) (*Session, error) {
	repo := s.repomanager.Accounts(s.db)

	_, err := repo.FindByEmail(ctx, p.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: email is taken", common.ErrConflict)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, common.Infra("find account", err)
	}

	displayName := p.DisplayName
	if displayName == "" {
		displayName = models.DisplayNameFromEmail(p.Email)
	}

	account := &models.Account{
		ID:          s.newID(),
		Email:       p.Email,
		DisplayName: displayName,
		AvatarURL:   p.AvatarURL,
		Credential:  models.ExternalCredential{Provider: p.Provider, SubjectID: p.SubjectID},
		Verified:    true,
	}

	pair, err := s.sign(account)
	if err != nil {
		return nil, err
	}
	account.RefreshToken = pair.RefreshToken

	if _, err := repo.Create(ctx, account); err != nil {
		return nil, common.Infra("create account", err)
	}

	s.logger.Info(ctx, "external account created", "account_id", account.ID, "provider", p.Provider)
	return &Session{Account: account.View(), Tokens: pair}, nil
}

func (s *AuthService) externalLogin(ctx context.Context, p ExternalProfile) (*Session, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByEmail(ctx, p.Email)
	if err != nil {
		return nil, common.Infra("find account", err)
	}

	if next, linked := models.LinkExternal(account.Credential, p.Provider, p.SubjectID); linked {
		account.Credential = next
		if account.AvatarURL == "" {
			account.AvatarURL = p.AvatarURL
		}
		s.logger.Info(ctx, "external identity linked", "account_id", account.ID, "provider", p.Provider)
	}

	// The provider vouches for the address.
	if !account.Verified {
		account.Verified = true
		account.OTP = nil
	}

	pair, err := s.sign(account)
	if err != nil {
		return nil, err
	}
	account.RefreshToken = pair.RefreshToken

	if err := repo.Save(ctx, account); err != nil {
		return nil, common.Infra("save account", err)
	}

	return &Session{Account: account.View(), Tokens: pair}, nil
}
