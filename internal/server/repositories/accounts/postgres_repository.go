package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/dbx"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
)

const selectColumns = `id, email, display_name, avatar_url, secret_hash, provider, subject_id,
		        verified, otp_code, otp_expires_at, refresh_token, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func otpColumns(otp *models.OneTimeCode) (*string, *time.Time) {
	if otp == nil {
		return nil, nil
	}
	code, expiresAt := otp.Code, otp.ExpiresAt
	return &code, &expiresAt
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mapWriteError(err error) error {
	if constraint, ok := dbx.UniqueViolation(err); ok {
		return fmt.Errorf("%w: %s", common.ErrConflict, constraint)
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (id, email, display_name, avatar_url, secret_hash, provider, subject_id,
		                       verified, otp_code, otp_expires_at, refresh_token)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at, updated_at
		 `

	secretHash, provider, subjectID := models.CredentialColumns(account.Credential)
	otpCode, otpExpiresAt := otpColumns(account.OTP)

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.DisplayName, account.AvatarURL,
		secretHash, provider, subjectID,
		account.Verified, otpCode, otpExpiresAt, nullIfEmpty(account.RefreshToken),
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return nil, mapWriteError(err)
	}

	return account, nil
}

func (r *PostgresRepository) findOne(ctx context.Context, where string, arg any) (*models.Account, error) {
	query := `SELECT ` + selectColumns + `
		 FROM accounts
		 WHERE ` + where

	var (
		a                             models.Account
		secretHash, provider, subject *string
		otpCode, refreshToken         *string
		otpExpiresAt                  *time.Time
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.DisplayName, &a.AvatarURL,
		&secretHash, &provider, &subject,
		&a.Verified, &otpCode, &otpExpiresAt, &refreshToken,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	a.Credential = models.CredentialFromColumns(secretHash, provider, subject)
	if otpCode != nil && otpExpiresAt != nil {
		a.OTP = &models.OneTimeCode{Code: *otpCode, ExpiresAt: *otpExpiresAt}
	}
	if refreshToken != nil {
		a.RefreshToken = *refreshToken
	}

	return &a, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, `id = $1`, id)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, `email = $1`, email)
}

func (r *PostgresRepository) ExistsByEmailOrDisplayName(ctx context.Context, email, displayName string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1 OR display_name = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email, displayName).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Save(ctx context.Context, account *models.Account) error {
	query :=
		`UPDATE accounts
		 SET email = $2, display_name = $3, avatar_url = $4,
		     secret_hash = $5, provider = $6, subject_id = $7,
		     verified = $8, otp_code = $9, otp_expires_at = $10, refresh_token = $11,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `

	secretHash, provider, subjectID := models.CredentialColumns(account.Credential)
	otpCode, otpExpiresAt := otpColumns(account.OTP)

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.DisplayName, account.AvatarURL,
		secretHash, provider, subjectID,
		account.Verified, otpCode, otpExpiresAt, nullIfEmpty(account.RefreshToken),
	).Scan(&account.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return mapWriteError(err)
	}

	return nil
}

func (r *PostgresRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	query :=
		`UPDATE accounts SET refresh_token = $2, updated_at = now()
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id, nullIfEmpty(token)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
