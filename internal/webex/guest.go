package webex

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// guestTokenTTL is how long a minted guest JWT is valid.
const guestTokenTTL = 6 * time.Hour

// GuestIssuer holds a Webex guest issuer application's credentials.
// The secret is the base64-encoded shared secret from the developer portal.
type GuestIssuer struct {
	IssuerID string
	Secret   string
}

// MintToken signs a guest JWT for the given subject and display name.
func (g GuestIssuer) MintToken(subject, displayName string) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(g.Secret)
	if err != nil {
		return "", fmt.Errorf("guest issuer secret is not valid base64: %w", err)
	}

	claims := jwt.MapClaims{
		"sub":  subject,
		"name": displayName,
		"iss":  g.IssuerID,
		"exp":  time.Now().Add(guestTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign guest token: %w", err)
	}
	return signed, nil
}

// Login mints a guest JWT and exchanges it at /jwt/login for an access token.
func (g GuestIssuer) Login(ctx context.Context, baseURL string) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	guestJWT, err := g.MintToken("webex-mcp-guest", "Webex MCP Server")
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/jwt/login", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+guestJWT)

	httpc := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Message: "jwt login rejected: " + string(body)}
	}

	var result struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expiresIn"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode jwt login response: %w", err)
	}

	log.Debug().
		Str("issuerId", g.IssuerID).
		Int("expiresIn", result.ExpiresIn).
		Msg("exchanged guest JWT for access token")

	return result.Token, nil
}
