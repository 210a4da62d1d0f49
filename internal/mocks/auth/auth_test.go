package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/gigwire/identity-go/internal/domain/auth"
	"github.com/gigwire/identity-go/internal/ports"
)

func TestMockAuthProvider_Begin_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:8080/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	// Second call should increment counters
	authURL2, state2, nonce2, err2 := provider.Begin(ctx, input)
	require.NoError(t, err2)
	assert.Equal(t, "https://mock-idp/auth", authURL2)
	assert.Equal(t, "state-2", state2)
	assert.Equal(t, "nonce-2", nonce2)
}

func TestMockAuthProvider_Begin_CustomValues(t *testing.T) {
	provider := &MockAuthProvider{
		AuthURL:     "https://custom-idp/login",
		StatePrefix: "custom-state",
		NoncePrefix: "custom-nonce",
	}

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{})

	require.NoError(t, err)
	assert.Equal(t, "https://custom-idp/login", authURL)
	assert.Equal(t, "custom-state-1", state)
	assert.Equal(t, "custom-nonce-1", nonce)
}

func TestMockAuthProvider_Begin_CustomFunc(t *testing.T) {
	provider := &MockAuthProvider{
		BeginFunc: func(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
			return "custom-url", "custom-state", "custom-nonce", nil
		},
	}

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{})

	require.NoError(t, err)
	assert.Equal(t, "custom-url", authURL)
	assert.Equal(t, "custom-state", state)
	assert.Equal(t, "custom-nonce", nonce)
}

func TestMockAuthProvider_Exchange_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()

	principal, err := provider.Exchange(context.Background(), ports.ExchangeInput{
		Code:  "auth-code",
		State: "state-1",
		Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "mock-person-1", principal.PersonID)
	assert.Equal(t, "Mock Person", principal.Name)
	assert.Equal(t, "mock.person@example.com", principal.Email)
	assert.True(t, principal.ExpiresAt.After(time.Now()))
}

func TestMockAuthProvider_Exchange_CustomPrincipal(t *testing.T) {
	custom := domainauth.Principal{
		PersonID:  "custom-person",
		Name:      "Custom Person",
		Email:     "custom@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	provider := &MockAuthProvider{DefaultPrincipal: custom}

	principal, err := provider.Exchange(context.Background(), ports.ExchangeInput{Code: "auth-code"})

	require.NoError(t, err)
	assert.Equal(t, custom, principal)
}

func TestMockAuthProvider_Exchange_CustomFunc(t *testing.T) {
	provider := &MockAuthProvider{
		ExchangeFunc: func(_ context.Context, _ ports.ExchangeInput) (domainauth.Principal, error) {
			return domainauth.Principal{PersonID: "func-person", Email: "func@example.com"}, nil
		},
	}

	principal, err := provider.Exchange(context.Background(), ports.ExchangeInput{Code: "auth-code"})

	require.NoError(t, err)
	assert.Equal(t, "func-person", principal.PersonID)
	assert.Equal(t, "func@example.com", principal.Email)
}

func testStoreSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		PersonID:  "person-123",
		Name:      "Ada",
		Email:     "ada@example.com",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
}

func TestMemorySessionStore_SaveAndGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := testStoreSession("test-session-1")
	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session, retrieved)
	assert.Equal(t, 1, store.Len())
}

func TestMemorySessionStore_GetNonExistent(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "non-existent")
	require.Error(t, err)
}

func TestMemorySessionStore_GetExpired(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := testStoreSession("expired")
	session.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(ctx, session))

	_, err := store.Get(ctx, "expired")
	require.Error(t, err)
	// The record stays until deleted; only Get filters it.
	assert.Equal(t, 1, store.Len())
}

func TestMemorySessionStore_SaveEmptyID(t *testing.T) {
	store := NewMemorySessionStore()

	err := store.Save(context.Background(), testStoreSession(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testStoreSession("test-session-1")))
	require.NoError(t, store.Delete(ctx, "test-session-1"))

	_, err := store.Get(ctx, "test-session-1")
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestMemorySessionStore_DeleteNonExistent(t *testing.T) {
	store := NewMemorySessionStore()

	assert.NoError(t, store.Delete(context.Background(), "missing"))
}
