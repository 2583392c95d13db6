// Package linking resolves the external player identity the engine stores
// alongside its snapshots. The engine never interprets the token; it is an
// opaque handle minted by whatever account system fronts the service.
package linking

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/cadencehq/cadence-server/internal/logger"
)

// Authenticator yields the external player token for the running session.
type Authenticator interface {
	Authenticate(ctx context.Context) (string, error)
}

// StaticAuthenticator returns a pre-shared token, typically from config.
type StaticAuthenticator struct {
	token string
}

// NewStaticAuthenticator creates an authenticator around a fixed token.
func NewStaticAuthenticator(token string) (*StaticAuthenticator, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%s", ErrMsgEmptyToken)
	}
	return &StaticAuthenticator{token: token}, nil
}

// Authenticate returns the configured token.
func (a *StaticAuthenticator) Authenticate(ctx context.Context) (string, error) {
	logger.FromContext(ctx).Debug("Authenticated with static token")
	return a.token, nil
}

// AnonymousAuthenticator mints a random session token on first use and
// returns the same token for the lifetime of the process. Used when no
// account system is configured.
type AnonymousAuthenticator struct {
	token string
}

// NewAnonymousAuthenticator creates an authenticator with a fresh random
// token.
func NewAnonymousAuthenticator() (*AnonymousAuthenticator, error) {
	token, err := generateToken(TokenLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgTokenGeneration, err)
	}
	return &AnonymousAuthenticator{token: token}, nil
}

// Authenticate returns the session token.
func (a *AnonymousAuthenticator) Authenticate(ctx context.Context) (string, error) {
	logger.FromContext(ctx).Debug("Authenticated anonymously")
	return a.token, nil
}

// generateToken produces a random base32 token of n bytes of entropy.
func generateToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)), nil
}
