package auth_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/auth"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/db"
)

func newTestProvider(t *testing.T) *auth.Provider {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "caltrack.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return auth.NewProvider(sqldb).WithCost(bcrypt.MinCost)
}

func TestSignUpSignOutSignIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := newTestProvider(t)

	acct, err := p.SignUp(ctx, " Ava@Example.com ", "secret1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if acct.Email != "ava@example.com" || acct.ID == "" {
		t.Fatalf("unexpected account: %+v", acct)
	}
	current, err := p.Current(ctx)
	if err != nil || current.ID != acct.ID {
		t.Fatalf("expected signed in after sign up, got %+v err=%v", current, err)
	}

	if err := p.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := p.Current(ctx); err == nil {
		t.Fatalf("expected no current account after sign out")
	}

	again, err := p.SignIn(ctx, "ava@example.com", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if again.ID != acct.ID {
		t.Fatalf("expected same account id, got %s vs %s", again.ID, acct.ID)
	}
}

func TestAuthFailuresCarryProviderMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := newTestProvider(t)

	if _, err := p.SignUp(ctx, "ava@example.com", "secret1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	cases := []struct {
		name string
		run  func() error
		want string
	}{
		{"duplicate", func() error { _, err := p.SignUp(ctx, "AVA@example.com", "secret2"); return err }, "email already registered"},
		{"short password", func() error { _, err := p.SignUp(ctx, "bo@example.com", "123"); return err }, "at least 6 characters"},
		{"bad email", func() error { _, err := p.SignUp(ctx, "not-an-email", "secret1"); return err }, "invalid email"},
		{"wrong password", func() error { _, err := p.SignIn(ctx, "ava@example.com", "nope123"); return err }, "invalid email or password"},
		{"unknown user", func() error { _, err := p.SignIn(ctx, "zed@example.com", "secret1"); return err }, "invalid email or password"},
	}
	for _, tc := range cases {
		err := tc.run()
		var authErr *auth.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("%s: expected AuthError, got %v", tc.name, err)
		}
		if !strings.Contains(authErr.Msg, tc.want) {
			t.Fatalf("%s: expected message containing %q, got %q", tc.name, tc.want, authErr.Msg)
		}
	}
}

func TestSignOutWithoutSession(t *testing.T) {
	t.Parallel()
	p := newTestProvider(t)
	err := p.SignOut(context.Background())
	var authErr *auth.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestSignInReplacesActiveSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := newTestProvider(t)
	if _, err := p.SignUp(ctx, "ava@example.com", "secret1"); err != nil {
		t.Fatalf("sign up ava: %v", err)
	}
	bo, err := p.SignUp(ctx, "bo@example.com", "secret2")
	if err != nil {
		t.Fatalf("sign up bo: %v", err)
	}
	current, err := p.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.ID != bo.ID {
		t.Fatalf("expected bo to be signed in, got %s", current.Email)
	}
}
