package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	pb "github.com/dmitrijs2005/dailylog/internal/proto"
)

type fakeClient struct {
	loggedIn bool

	regEmail, regName, regSecret string
	regResp                      *pb.RegisterResponse
	regErr                       error

	resendID  string
	resendErr error

	verifyID, verifyCode string
	account              *pb.Account
	verifyErr            error

	loginEmail, loginSecret string
	loginErr                error

	logoutCalled bool
	logoutErr    error

	refreshCalled bool
	refreshErr    error

	resetEmail, resetNew, resetConfirm string
	resetErr                           error

	closed bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Register(_ context.Context, email, name, secret string) (*pb.RegisterResponse, error) {
	f.regEmail, f.regName, f.regSecret = email, name, secret
	return f.regResp, f.regErr
}

func (f *fakeClient) ResendCode(_ context.Context, id string) error {
	f.resendID = id
	return f.resendErr
}

func (f *fakeClient) VerifyCode(_ context.Context, id, code string) (*pb.Account, error) {
	f.verifyID, f.verifyCode = id, code
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	f.loggedIn = true
	return f.account, nil
}

func (f *fakeClient) Login(_ context.Context, email, secret string) (*pb.Account, error) {
	f.loginEmail, f.loginSecret = email, secret
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.loggedIn = true
	return f.account, nil
}

func (f *fakeClient) Logout(context.Context) error {
	f.logoutCalled = true
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.loggedIn = false
	return nil
}

func (f *fakeClient) Refresh(context.Context) error {
	f.refreshCalled = true
	return f.refreshErr
}

func (f *fakeClient) ResetSecret(_ context.Context, email, newSecret, confirm string) error {
	f.resetEmail, f.resetNew, f.resetConfirm = email, newSecret, confirm
	return f.resetErr
}

func (f *fakeClient) LinkOrCreate(context.Context, *pb.LinkOrCreateRequest) (*pb.Account, error) {
	return f.account, nil
}

func (f *fakeClient) Ping(context.Context) error { return nil }
func (f *fakeClient) LoggedIn() bool             { return f.loggedIn }

// stubInputs feeds texts and secrets to the prompts in order.
func stubInputs(t *testing.T, texts []string, secrets []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(secrets) == 0 {
			return nil, io.EOF
		}
		s := secrets[0]
		secrets = secrets[1:]
		return []byte(s), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
