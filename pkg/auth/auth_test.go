package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/library-engine/pkg/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIssuer_IssueParse(t *testing.T) {
	t.Parallel()
	iss := auth.NewIssuer(auth.Config{Secret: "secret", TokenTTL: time.Hour})
	sess := auth.Session{Role: auth.RoleStudent, ID: "S001", Name: "Alice"}

	tok, err := iss.Issue(sess)
	require.NoError(t, err)
	require.Equal(t, auth.RoleStudent, tok.Role)
	require.NotEmpty(t, tok.AccessToken)
	require.Equal(t, 3600, tok.ExpiresIn)

	got, err := iss.Parse(tok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, sess, got)
}

func TestIssuer_Parse(t *testing.T) {
	t.Parallel()
	iss := auth.NewIssuer(auth.Config{Secret: "secret", TokenTTL: time.Hour})
	other := auth.NewIssuer(auth.Config{Secret: "other", TokenTTL: time.Hour})
	staff := auth.Session{Role: auth.RoleStaff, ID: "E01", Name: "Max"}
	foreign, err := other.Issue(staff)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		Profile: staff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not-a-token", wantErr: auth.ErrTokenInvalid},
		{name: "wrong key", token: foreign.AccessToken, wantErr: auth.ErrTokenInvalid},
		{name: "expired", token: expired, wantErr: auth.ErrTokenExpired},
		{name: "no role", token: anonymous, wantErr: auth.ErrTokenInvalid},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := iss.Parse(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIssuer_AnonymousRejected(t *testing.T) {
	t.Parallel()
	iss := auth.NewIssuer(auth.Config{Secret: "secret"})
	_, err := iss.Issue(auth.Session{})
	require.Error(t, err)
}

func TestSessionContext(t *testing.T) {
	t.Parallel()
	require.True(t, auth.GetSession(context.Background()).Anonymous())

	ctx := auth.SetSession(context.Background(), auth.Session{Role: auth.RoleStaff, ID: "E01"})
	s := auth.GetSession(ctx)
	require.True(t, s.IsStaff())
	require.False(t, s.IsStudent())
}

func TestHasher(t *testing.T) {
	t.Parallel()
	h := auth.NewHasher(bcrypt.MinCost)
	hash, err := h.Hash("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)
	require.True(t, h.Match(hash, "password123"))
	require.False(t, h.Match(hash, "password124"))
	require.False(t, h.Match("plain", "plain"))
}
