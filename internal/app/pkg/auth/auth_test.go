package auth

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Generate(42, "a@x.com", true)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 || claims.Email != "a@x.com" || !claims.IsAdmin {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").Generate(1, "a@x.com", false)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewJWTService("secret-b").Validate(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func newTestSessions(t *testing.T) *SessionService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionServiceWithClient(client)
}

func TestSessionLifecycle(t *testing.T) {
	sessions := newTestSessions(t)
	ctx := context.Background()

	data := SessionData{UserID: 7, Email: "a@x.com", IsAdmin: false}
	if err := sessions.Create(ctx, "sid-1", data); err != nil {
		t.Fatal(err)
	}

	got, err := sessions.Get(ctx, "sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != data {
		t.Errorf("session data = %+v, want %+v", got, data)
	}

	if err := sessions.Delete(ctx, "sid-1"); err != nil {
		t.Fatal(err)
	}
	got, err = sessions.Get(ctx, "sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("deleted session still resolves: %+v", got)
	}

	// Deleting again is not an error.
	if err := sessions.Delete(ctx, "sid-1"); err != nil {
		t.Errorf("repeat delete: %v", err)
	}
}

func TestSessionGetUnknown(t *testing.T) {
	sessions := newTestSessions(t)

	got, err := sessions.Get(context.Background(), "no-such-session")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("unknown session resolved to %+v", got)
	}
}
