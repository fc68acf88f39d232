package auth

import (
	"fmt"
	"time"
)

// TokenPair is an access credential together with its renewal credential.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Issuer holds the process-wide signing material for both token kinds.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Issue signs a fresh pair for the profile.
func (i *Issuer) Issue(p Profile) (TokenPair, error) {
	access, err := GenerateProfileToken(p, i.accessSecret, i.accessTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := GenerateToken(p.UserID, i.refreshSecret, i.refreshTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) ParseAccess(token string) (*Claims, error) {
	return ParseToken(token, i.accessSecret)
}

func (i *Issuer) ParseRefresh(token string) (*Claims, error) {
	return ParseToken(token, i.refreshSecret)
}
