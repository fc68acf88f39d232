package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
)

// MemoryRepository keeps accounts in process memory with the same
// uniqueness rules as the accounts table. Returned records are copies.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		accounts: make(map[string]*models.Account),
		now:      time.Now,
	}
}

func clone(a *models.Account) *models.Account {
	c := *a
	if a.OTP != nil {
		otp := *a.OTP
		c.OTP = &otp
	}
	return &c
}

// conflict checks the unique keys against every account except skipID.
// Accounts without a linked identity never collide on provider and subject,
// like NULL columns in the table.
func (r *MemoryRepository) conflict(a *models.Account, skipID string) error {
	provider, subject, linked := models.ExternalIdentity(a.Credential)
	for id, other := range r.accounts {
		if id == skipID {
			continue
		}
		if other.Email == a.Email {
			return fmt.Errorf("%w: accounts_email_key", common.ErrConflict)
		}
		if other.DisplayName == a.DisplayName {
			return fmt.Errorf("%w: accounts_display_name_key", common.ErrConflict)
		}
		if !linked {
			continue
		}
		if p, sub, ok := models.ExternalIdentity(other.Credential); ok && p == provider && sub == subject {
			return fmt.Errorf("%w: accounts_provider_subject_key", common.ErrConflict)
		}
	}
	return nil
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; ok {
		return nil, fmt.Errorf("%w: accounts_pkey", common.ErrConflict)
	}
	if err := r.conflict(account, ""); err != nil {
		return nil, err
	}

	now := r.now()
	account.CreatedAt, account.UpdatedAt = now, now
	r.accounts[account.ID] = clone(account)

	return account, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(a), nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.Email == email {
			return clone(a), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) ExistsByEmailOrDisplayName(ctx context.Context, email, displayName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.Email == email || a.DisplayName == displayName {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) Save(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[account.ID]
	if !ok {
		return common.ErrorNotFound
	}
	if err := r.conflict(account, account.ID); err != nil {
		return err
	}

	account.CreatedAt = stored.CreatedAt
	account.UpdatedAt = r.now()
	r.accounts[account.ID] = clone(account)

	return nil
}

func (r *MemoryRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.accounts[id]; ok {
		a.RefreshToken = token
		a.UpdatedAt = r.now()
	}
	return nil
}

// Len returns the number of stored accounts.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
