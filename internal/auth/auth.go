// Package auth is a local email/password identity provider. It owns the
// accounts and auth_sessions tables; at most one session is active at a time.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// AuthError carries a provider message meant to be shown to the user as is.
type AuthError struct {
	Op  string
	Msg string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Op, e.Msg)
}

type Account struct {
	ID    string
	Email string
}

type Provider struct {
	db   *sql.DB
	cost int
}

func NewProvider(db *sql.DB) *Provider {
	return &Provider{db: db, cost: bcrypt.DefaultCost}
}

// WithCost returns a provider hashing with cost, for tests.
func (p *Provider) WithCost(cost int) *Provider {
	return &Provider{db: p.db, cost: cost}
}

// SignUp registers an account and signs it in.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*Account, error) {
	email, err := normalizeEmail("Sign-up", email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, &AuthError{Op: "Sign-up", Msg: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}
	var exists int
	err = p.db.QueryRowContext(ctx, `SELECT 1 FROM accounts WHERE email = ?`, email).Scan(&exists)
	if err == nil {
		return nil, &AuthError{Op: "Sign-up", Msg: "email already registered"}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check account %s: %w", email, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acct := &Account{ID: uuid.NewString(), Email: email}
	if _, err := p.db.ExecContext(ctx, `INSERT INTO accounts(id, email, password_hash) VALUES(?, ?, ?)`, acct.ID, acct.Email, string(hash)); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	if err := p.startSession(ctx, acct.ID); err != nil {
		return nil, err
	}
	return acct, nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*Account, error) {
	email, err := normalizeEmail("Sign-in", email)
	if err != nil {
		return nil, err
	}
	var acct Account
	var hash string
	err = p.db.QueryRowContext(ctx, `SELECT id, email, password_hash FROM accounts WHERE email = ?`, email).Scan(&acct.ID, &acct.Email, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &AuthError{Op: "Sign-in", Msg: "invalid email or password"}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup account %s: %w", email, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, &AuthError{Op: "Sign-in", Msg: "invalid email or password"}
	}
	if err := p.startSession(ctx, acct.ID); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (p *Provider) SignOut(ctx context.Context) error {
	res, err := p.db.ExecContext(ctx, `UPDATE auth_sessions SET signed_out_at = CURRENT_TIMESTAMP WHERE signed_out_at IS NULL`)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return &AuthError{Op: "Sign-out", Msg: "not signed in"}
	}
	return nil
}

// Current returns the signed-in account, or an AuthError when nobody is.
func (p *Provider) Current(ctx context.Context) (*Account, error) {
	var acct Account
	err := p.db.QueryRowContext(ctx, `
SELECT a.id, a.email
FROM auth_sessions s
JOIN accounts a ON a.id = s.account_id
WHERE s.signed_out_at IS NULL
ORDER BY s.created_at DESC
LIMIT 1
`).Scan(&acct.ID, &acct.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &AuthError{Op: "Session", Msg: "not signed in (run `caltrack auth signin`)"}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve current session: %w", err)
	}
	return &acct, nil
}

func (p *Provider) startSession(ctx context.Context, accountID string) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `UPDATE auth_sessions SET signed_out_at = CURRENT_TIMESTAMP WHERE signed_out_at IS NULL`); err != nil {
		return fmt.Errorf("end previous session: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO auth_sessions(token, account_id) VALUES(?, ?)`, uuid.NewString(), accountID); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func normalizeEmail(op, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", &AuthError{Op: op, Msg: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", &AuthError{Op: op, Msg: fmt.Sprintf("invalid email %q", email)}
	}
	return email, nil
}
