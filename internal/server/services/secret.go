package services

import (
	"context"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
)

// ResetSecret replaces the account password. Only the email is checked: the
// caller is not asked to prove ownership. Sessions and verification state
// are left as they are.
func (s *AuthService) ResetSecret(ctx context.Context, email, newSecret, confirmSecret string) error {
	if err := (resetInput{Email: email, NewSecret: newSecret, ConfirmSecret: confirmSecret}).Validate(); err != nil {
		return err
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return common.Infra("find account", err)
	}

	hash, err := s.hasher.Hash(newSecret)
	if err != nil {
		return common.Infra("hash secret", err)
	}
	account.Credential = models.ReplaceSecret(account.Credential, hash)

	if err := repo.Save(ctx, account); err != nil {
		return common.Infra("save account", err)
	}

	s.logger.Warn(ctx, "secret reset", "account_id", account.ID)
	return nil
}
