package grpc

import (
	"context"

	"github.com/dmitrijs2005/dailylog/internal/server/auth"
	"github.com/dmitrijs2005/dailylog/internal/server/services"
)

// fakeAuth records the last call and returns canned results.
type fakeAuth struct {
	registerID  string
	err         error
	session     *services.Session
	pair        *auth.TokenPair
	claims      *auth.Claims
	authErr     error
	loggedOut   string
	lastProfile services.ExternalProfile
	lastMode    services.Mode
}

func (f *fakeAuth) Register(ctx context.Context, email, displayName, secret string) (string, error) {
	return f.registerID, f.err
}

func (f *fakeAuth) ResendCode(ctx context.Context, accountRef string) error { return f.err }

func (f *fakeAuth) VerifyCode(ctx context.Context, accountRef, code string) (*services.Session, error) {
	return f.session, f.err
}

func (f *fakeAuth) Login(ctx context.Context, email, secret string) (*services.Session, error) {
	return f.session, f.err
}

func (f *fakeAuth) Logout(ctx context.Context, accountID string) error {
	f.loggedOut = accountID
	return f.err
}

func (f *fakeAuth) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	return f.pair, f.err
}

func (f *fakeAuth) ResetSecret(ctx context.Context, email, newSecret, confirmSecret string) error {
	return f.err
}

func (f *fakeAuth) LinkOrCreate(ctx context.Context, p services.ExternalProfile, mode services.Mode) (*services.Session, error) {
	f.lastProfile, f.lastMode = p, mode
	return f.session, f.err
}

func (f *fakeAuth) Authenticate(ctx context.Context, accessToken string) (*auth.Claims, error) {
	return f.claims, f.authErr
}
