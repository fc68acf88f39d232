// Package accounts persists accounts. Email and display name are unique;
// a breach of either surfaces as common.ErrConflict.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/dailylog/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmailOrDisplayName(ctx context.Context, email, displayName string) (bool, error)
	Save(ctx context.Context, account *models.Account) error
	// SetRefreshToken overwrites the stored renewal token; "" clears it.
	SetRefreshToken(ctx context.Context, id, token string) error
}
