package auth

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Fatalf("did not expect expired")
	}
	if !s.Expired(now.Add(2 * time.Minute)) {
		t.Fatalf("expected expired")
	}
}

func TestPrincipal_SimpleFields(t *testing.T) {
	p := Principal{PersonID: "p", Email: "e", ExpiresAt: time.Now().Add(time.Hour)}
	if p.PersonID != "p" || p.Email != "e" {
		t.Fatalf("unexpected principal: %+v", p)
	}
}
