package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("secret")

	tok, err := GenerateToken("u1", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, secret)
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for invalid signature, got %v", err)
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	_, err := ParseToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := newClaims("u3", time.Hour)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("k"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_RejectsMissingUserID(t *testing.T) {
	tok, err := GenerateToken("", []byte("k"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("k"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGenerateProfileToken_CarriesProfile(t *testing.T) {
	tok, err := GenerateProfileToken(Profile{UserID: "u4", Email: "a@x.io", DisplayName: "alice"}, []byte("k"), time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(tok, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u4", claims.UserID)
	assert.Equal(t, "a@x.io", claims.Email)
	assert.Equal(t, "alice", claims.DisplayName)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateToken_SameInstantDiffers(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = orig }()

	a, err := GenerateToken("u5", []byte("k"), time.Hour)
	require.NoError(t, err)
	b, err := GenerateToken("u5", []byte("k"), time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestParseToken_UsesClockSeam(t *testing.T) {
	issued := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := timeNow
	defer func() { timeNow = orig }()

	timeNow = func() time.Time { return issued }
	tok, err := GenerateToken("u6", []byte("k"), time.Minute)
	require.NoError(t, err)

	timeNow = func() time.Time { return issued.Add(30 * time.Second) }
	_, err = ParseToken(tok, []byte("k"))
	require.NoError(t, err)

	timeNow = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = ParseToken(tok, []byte("k"))
	assert.Equal(t, common.ErrTokenExpired, err)
}
