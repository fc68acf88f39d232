// Package auth signs and verifies the access and renewal credentials.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// timeNow is a seam for tests; it drives both issuance and validation.
var timeNow = time.Now

// Claims are the registered claims plus the account id. Access tokens also carry
// a minimal profile; renewal tokens leave Email and DisplayName empty.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// Profile is the account data embedded into an access token.
type Profile struct {
	UserID      string
	Email       string
	DisplayName string
}

func newClaims(userID string, validityDuration time.Duration) Claims {
	now := timeNow()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	}
}

func sign(claims Claims, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateToken issues a token carrying only the account id.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	return sign(newClaims(userID, validityDuration), secretKey)
}

// GenerateProfileToken issues a token carrying the account id and profile.
func GenerateProfileToken(p Profile, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims := newClaims(p.UserID, validityDuration)
	claims.Email = p.Email
	claims.DisplayName = p.DisplayName
	return sign(claims, secretKey)
}

// ParseToken verifies signature and expiry. Expired tokens yield
// common.ErrTokenExpired, anything else common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(timeNow),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
