package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dailylog/internal/client/client"
	"github.com/dmitrijs2005/dailylog/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readSecret reads a secret and hands it over as a string, wiping the buffer.
func (a *App) readSecret(prompt string) (string, error) {
	b, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)
	return string(b), nil
}

// accountRef returns the account awaiting verification, asking for it when
// this session did not register one.
func (a *App) accountRef() (string, error) {
	if a.pendingID != "" {
		return a.pendingID, nil
	}
	return getSimpleText(a.reader, "Enter account id", a.out)
}

// Register creates a pending account and remembers its id for verify/resend.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	displayName, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	secret, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	resp, err := a.client.Register(ctx, email, displayName, secret)
	if err != nil {
		return err
	}

	a.pendingID = resp.AccountId
	if !resp.CodeDelivered {
		fmt.Fprintln(a.out, "Account created, but the code could not be sent. Try 'resend'.")
		return nil
	}
	fmt.Fprintln(a.out, "Account created. Check your email and run 'verify'.")
	return nil
}

func (a *App) Resend(ctx context.Context) error {
	id, err := a.accountRef()
	if err != nil {
		return err
	}
	if err := a.client.ResendCode(ctx, id); err != nil {
		return err
	}
	a.pendingID = id
	fmt.Fprintln(a.out, "A new code is on its way.")
	return nil
}

// Verify submits the emailed code; success signs the user in.
func (a *App) Verify(ctx context.Context) error {
	id, err := a.accountRef()
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter code", a.out)
	if err != nil {
		return err
	}

	account, err := a.client.VerifyCode(ctx, id, code)
	if err != nil {
		if errors.Is(err, client.ErrExpired) {
			return fmt.Errorf("%w, run 'resend' for a new code", err)
		}
		return err
	}

	a.pendingID = ""
	a.account = account
	fmt.Fprintf(a.out, "Verified. Welcome, %s!\n", account.GetDisplayName())
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	secret, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	account, err := a.client.Login(ctx, email, secret)
	if err != nil {
		if errors.Is(err, client.ErrNotVerified) {
			return fmt.Errorf("%w, run 'verify' or 'resend'", err)
		}
		return err
	}

	a.account = account
	fmt.Fprintf(a.out, "Logged in as %s\n", account.GetDisplayName())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	a.account = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.client.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Session renewed.")
	return nil
}

// Reset sets a new secret for an email address.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	secret, err := a.readSecret("Enter new password")
	if err != nil {
		return err
	}
	confirm, err := a.readSecret("Repeat new password")
	if err != nil {
		return err
	}

	if err := a.client.ResetSecret(ctx, email, secret, confirm); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password updated.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	if a.account == nil || !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}
	fmt.Fprintf(a.out, "%s <%s> id=%s verified=%t\n", a.account.GetDisplayName(), a.account.GetEmail(), a.account.GetId(), a.account.GetVerified())
	return nil
}
