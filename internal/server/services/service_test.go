package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/dmitrijs2005/dailylog/internal/dbx"
	"github.com/dmitrijs2005/dailylog/internal/logging"
	"github.com/dmitrijs2005/dailylog/internal/server/config"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
	"github.com/dmitrijs2005/dailylog/internal/server/repositories/accounts"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

type fakeRepoManager struct {
	accounts accounts.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository     { return m.accounts }

type sentCode struct {
	email string
	code  string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentCode
	err  error
}

func (n *fakeNotifier) DeliverCode(ctx context.Context, email, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentCode{email: email, code: code})
	return nil
}

func (n *fakeNotifier) last() sentCode {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return sentCode{}
	}
	return n.sent[len(n.sent)-1]
}

// brokenRepo fails every lookup.
type brokenRepo struct {
	*accounts.MemoryRepository
	err error
}

func (b *brokenRepo) FindByID(context.Context, string) (*models.Account, error) {
	return nil, b.err
}

func (b *brokenRepo) FindByEmail(context.Context, string) (*models.Account, error) {
	return nil, b.err
}

func (b *brokenRepo) ExistsByEmailOrDisplayName(context.Context, string, string) (bool, error) {
	return false, b.err
}

// racyRepo never sees an existing account up front, so uniqueness is left
// to Create.
type racyRepo struct {
	*accounts.MemoryRepository
}

func (r *racyRepo) ExistsByEmailOrDisplayName(context.Context, string, string) (bool, error) {
	return false, nil
}

type fixture struct {
	svc      *AuthService
	repo     *accounts.MemoryRepository
	mock     sqlmock.Sqlmock
	notifier *fakeNotifier
	clock    time.Time
	codes    []string
}

func newFixture(t *testing.T, opts ...func(*config.Config)) *fixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BcryptCost = bcrypt.MinCost
	for _, o := range opts {
		o(cfg)
	}

	f := &fixture{
		repo:     accounts.NewMemoryRepository(),
		mock:     mock,
		notifier: &fakeNotifier{},
		clock:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewAuthService(db, &fakeRepoManager{accounts: f.repo}, f.notifier, cfg, logging.Nop{})
	f.svc.now = func() time.Time { return f.clock }
	f.svc.generateCode = func() (string, error) {
		if len(f.codes) == 0 {
			return common.GenerateOTP()
		}
		c := f.codes[0]
		f.codes = f.codes[1:]
		return c, nil
	}
	return f
}

func (f *fixture) expectCommit() {
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
}

func (f *fixture) expectRollback() {
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
}

// register creates a pending account whose code is code.
func (f *fixture) register(t *testing.T, email, name, secret, code string) string {
	t.Helper()
	f.codes = append(f.codes, code)
	id, err := f.svc.Register(context.Background(), email, name, secret)
	require.NoError(t, err)
	return id
}

// active registers and verifies an account.
func (f *fixture) active(t *testing.T, email, name, secret string) string {
	t.Helper()
	id := f.register(t, email, name, secret, "424242")
	f.expectCommit()
	_, err := f.svc.VerifyCode(context.Background(), id, "424242")
	require.NoError(t, err)
	return id
}

var errBoom = errors.New("boom")
