package webex

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() GuestIssuer {
	return GuestIssuer{
		IssuerID: "Y2lzY29zcGFyazovL3VzL09SR0FOSVpBVElPTi90ZXN0",
		Secret:   base64.StdEncoding.EncodeToString([]byte("shared-secret-bytes")),
	}
}

func TestGuestIssuer_MintToken(t *testing.T) {
	issuer := testIssuer()

	signed, err := issuer.MintToken("guest-1", "Guest One")
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, token.Method)
		return []byte("shared-secret-bytes"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "guest-1", claims["sub"])
	assert.Equal(t, "Guest One", claims["name"])
	assert.Equal(t, issuer.IssuerID, claims["iss"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
}

func TestGuestIssuer_MintToken_BadSecret(t *testing.T) {
	issuer := GuestIssuer{IssuerID: "iss", Secret: "not//valid::base64"}
	_, err := issuer.MintToken("s", "n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64")
}

func TestGuestIssuer_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/jwt/login", r.URL.Path)
		auth := r.Header.Get("Authorization")
		require.True(t, strings.HasPrefix(auth, "Bearer "))
		assert.NotEmpty(t, strings.TrimPrefix(auth, "Bearer "))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"derived-access-token","expiresIn":21600}`))
	}))
	defer server.Close()

	token, err := testIssuer().Login(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "derived-access-token", token)
}

func TestGuestIssuer_LoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid issuer"))
	}))
	defer server.Close()

	_, err := testIssuer().Login(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt login rejected")
}
