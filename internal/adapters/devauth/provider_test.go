package devauth

import (
	"context"
	"strings"
	"testing"

	"github.com/gigwire/identity-go/internal/ports"
)

func TestProvider_BeginAndExchange(t *testing.T) {
	prov, err := NewProvider(Config{PersonID: "dev-person", Name: "Dev Person", Email: "dev@example.com"})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	url, state, nonce, err := prov.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	if !strings.HasPrefix(url, "/auth/callback?") {
		t.Fatalf("unexpected authURL: %s", url)
	}
	if state == "" || nonce == "" {
		t.Fatal("state and nonce should be generated")
	}
	principal, err := prov.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	if err != nil {
		t.Fatalf("Exchange error: %v", err)
	}
	if principal.PersonID != "dev-person" || principal.Email != "dev@example.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if principal.ExpiresAt.IsZero() {
		t.Fatal("principal expiry should be set")
	}
}

func TestNewProvider_RequiredFields(t *testing.T) {
	if _, err := NewProvider(Config{Email: "dev@example.com"}); err == nil {
		t.Fatal("expected error for missing PersonID")
	}
	if _, err := NewProvider(Config{PersonID: "dev-person"}); err == nil {
		t.Fatal("expected error for missing Email")
	}
}
