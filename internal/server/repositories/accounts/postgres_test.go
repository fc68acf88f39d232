package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+accounts\s*\(id,.*refresh_token\)\s*VALUES\s*\(\$1,.*\$11\)\s*RETURNING\s+created_at,\s*updated_at$`
	selectByID  = `(?s)^SELECT\s+id,\s*email,.*updated_at\s+FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1$`
	selectByEm  = `(?s)^SELECT\s+id,\s*email,.*updated_at\s+FROM\s+accounts\s+WHERE\s+email\s*=\s*\$1$`
	existsQuery = `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+accounts\s+WHERE\s+email\s*=\s*\$1\s+OR\s+display_name\s*=\s*\$2\)$`
	updateQuery = `(?s)^UPDATE\s+accounts\s+SET\s+email\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s+RETURNING\s+updated_at$`
	tokenQuery  = `(?s)^UPDATE\s+accounts\s+SET\s+refresh_token\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1$`
)

var (
	created = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	expires = time.Date(2025, 3, 1, 10, 10, 0, 0, time.UTC)
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func accountColumns() []string {
	return []string{"id", "email", "display_name", "avatar_url", "secret_hash", "provider", "subject_id",
		"verified", "otp_code", "otp_expires_at", "refresh_token", "created_at", "updated_at"}
}

func pendingAccount() *models.Account {
	return &models.Account{
		ID:          "0b8f0c3e-1111-4a5b-9c7d-000000000001",
		Email:       "alice@example.com",
		DisplayName: "alice",
		Credential:  models.LocalCredential{SecretHash: "hash"},
		OTP:         &models.OneTimeCode{Code: "123456", ExpiresAt: expires},
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := pendingAccount()
	mock.ExpectQuery(insertQuery).
		WithArgs(a.ID, "alice@example.com", "alice", "", "hash", nil, nil, false, "123456", expires, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	got, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, created, got.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExternalAccount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := &models.Account{
		ID:          "0b8f0c3e-1111-4a5b-9c7d-000000000002",
		Email:       "bob@example.com",
		DisplayName: "bob",
		AvatarURL:   "https://img/bob.png",
		Credential:  models.ExternalCredential{Provider: "google", SubjectID: "g-1"},
		Verified:    true,
	}
	mock.ExpectQuery(insertQuery).
		WithArgs(a.ID, "bob@example.com", "bob", "https://img/bob.png", nil, "google", "g-1", true, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	_, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	_, err := repo.Create(context.Background(), pendingAccount())
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Contains(t, err.Error(), "accounts_email_key")
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), pendingAccount())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	assert.NotErrorIs(t, err, common.ErrConflict)
}

func TestFindByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(accountColumns()).
		AddRow("id-1", "alice@example.com", "alice", "", "hash", nil, nil,
			false, "123456", expires, nil, created, created)
	mock.ExpectQuery(selectByID).WithArgs("id-1").WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.DisplayName)
	assert.Equal(t, models.LocalCredential{SecretHash: "hash"}, got.Credential)
	require.NotNil(t, got.OTP)
	assert.Equal(t, "123456", got.OTP.Code)
	assert.True(t, got.OTP.ExpiresAt.Equal(expires))
	assert.Empty(t, got.RefreshToken)
	assert.False(t, got.Verified)
}

func TestFindByEmail_LinkedWithToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(accountColumns()).
		AddRow("id-2", "bob@example.com", "bob", "https://img", "hash", "google", "g-1",
			true, nil, nil, "refresh-tok", created, created)
	mock.ExpectQuery(selectByEm).WithArgs("bob@example.com").WillReturnRows(rows)

	got, err := repo.FindByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.LinkedCredential{SecretHash: "hash", Provider: "google", SubjectID: "g-1"}, got.Credential)
	assert.Nil(t, got.OTP)
	assert.Equal(t, "refresh-tok", got.RefreshToken)
	assert.True(t, got.Verified)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByEm).WithArgs("ghost@example.com").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByID).WithArgs("id-1").WillReturnError(errors.New("db err"))

	_, err := repo.FindByID(context.Background(), "id-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestExistsByEmailOrDisplayName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(existsQuery).WithArgs("a@x.io", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(existsQuery).WithArgs("b@x.io", "bob").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(existsQuery).WithArgs("c@x.io", "carol").
		WillReturnError(errors.New("boom"))

	ok, err := repo.ExistsByEmailOrDisplayName(context.Background(), "a@x.io", "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByEmailOrDisplayName(context.Background(), "b@x.io", "bob")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.ExistsByEmailOrDisplayName(context.Background(), "c@x.io", "carol")
	assert.ErrorContains(t, err, "db error: boom")
}

func TestSave_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := pendingAccount()
	a.Verified = true
	a.OTP = nil
	a.RefreshToken = "rt"

	updated := created.Add(time.Minute)
	mock.ExpectQuery(updateQuery).
		WithArgs(a.ID, "alice@example.com", "alice", "", "hash", nil, nil, true, nil, nil, "rt").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))

	require.NoError(t, repo.Save(context.Background(), a))
	assert.Equal(t, updated, a.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(updateQuery).WillReturnError(sql.ErrNoRows)

	assert.ErrorIs(t, repo.Save(context.Background(), pendingAccount()), common.ErrorNotFound)
}

func TestSave_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(updateQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_display_name_key"})

	assert.ErrorIs(t, repo.Save(context.Background(), pendingAccount()), common.ErrConflict)
}

func TestSetRefreshToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(tokenQuery).WithArgs("id-1", "rt").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(tokenQuery).WithArgs("id-1", nil).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(tokenQuery).WithArgs("id-1", nil).WillReturnError(errors.New("db down"))

	require.NoError(t, repo.SetRefreshToken(context.Background(), "id-1", "rt"))
	require.NoError(t, repo.SetRefreshToken(context.Background(), "id-1", ""))
	assert.ErrorContains(t, repo.SetRefreshToken(context.Background(), "id-1", ""), "db error: db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}
