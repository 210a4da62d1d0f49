package devauth

// Package devauth provides a simple, config-driven AuthProvider for local development.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/gigwire/identity-go/internal/domain/auth"
	"github.com/gigwire/identity-go/internal/ports"
)

// Config controls the dev auth provider behavior.
type Config struct {
	PersonID        string
	Name            string
	Email           string
	SessionDuration time.Duration // default 8h when zero
}

// Provider implements ports.AuthProvider for local development. It
// short-circuits the OAuth flow by redirecting back to our own callback with
// locally generated state and nonce; Exchange ignores the code and returns
// the configured principal.
type Provider struct {
	principal       domainauth.Principal
	sessionDuration time.Duration
}

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.PersonID == "" {
		return nil, errors.New("dev auth: PersonID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	return &Provider{
		principal: domainauth.Principal{
			PersonID:  cfg.PersonID,
			Name:      cfg.Name,
			Email:     cfg.Email,
			ExpiresAt: time.Now().Add(dur),
		},
		sessionDuration: dur,
	}, nil
}

// Begin returns a local callback URL and cryptographically secure state and nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	authURL := "/auth/callback?code=dev&state=" + state
	return authURL, state, nonce, nil
}

// Exchange ignores the provided code/state/nonce (validation handled by the
// caller) and returns the dev principal.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (domainauth.Principal, error) {
	// Refresh expiry on each exchange for convenience
	if time.Until(p.principal.ExpiresAt) < 5*time.Minute {
		p.principal.ExpiresAt = time.Now().Add(p.sessionDuration)
	}
	return p.principal, nil
}

func randomString(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	bLen := (n*3 + 3) / 4
	b := make([]byte, bLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	if len(s) < n {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:n], nil
}
