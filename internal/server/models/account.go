// Package models holds the server-side domain records.
package models

import (
	"strings"
	"time"
)

// Account is a registered identity. Which sign-in methods it supports is
// decided by Credential; the remaining fields are shared by every kind.
type Account struct {
	ID           string
	Email        string
	DisplayName  string
	AvatarURL    string
	Credential   Credential
	Verified     bool
	OTP          *OneTimeCode
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OneTimeCode is the pending email verification code. ExpiresAt is absolute.
type OneTimeCode struct {
	Code      string
	ExpiresAt time.Time
}

// Expired reports whether the code is past its expiry at now.
func (c *OneTimeCode) Expired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}

// State is the lifecycle state derived from the verification flag.
type State string

const (
	StatePendingVerification State = "pending_verification"
	StateActive              State = "active"
)

// State returns the account's lifecycle state.
func (a *Account) State() State {
	if a.Verified {
		return StateActive
	}
	return StatePendingVerification
}

// Provider returns the linked identity provider name, if any.
func (a *Account) Provider() string {
	if p, _, ok := ExternalIdentity(a.Credential); ok {
		return p
	}
	return ""
}

// View is the sanitized projection of an account handed to callers: no
// secret hash, no renewal token, no pending code.
type View struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Verified    bool      `json:"verified"`
	Provider    string    `json:"provider,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// View projects the account for callers.
func (a *Account) View() View {
	return View{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		AvatarURL:   a.AvatarURL,
		Verified:    a.Verified,
		Provider:    a.Provider(),
		CreatedAt:   a.CreatedAt,
	}
}

// DisplayNameFromEmail derives a display name from the local part of email.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
