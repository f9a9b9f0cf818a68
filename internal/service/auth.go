package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/store"
	"github.com/spendwise/spendwise/pkg/cryptox"
	"github.com/spendwise/spendwise/pkg/jwtx"
)

var (
	// ErrEmailTaken reports a registration against an email that already
	// has an account.
	ErrEmailTaken = errors.New("service: email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("service: invalid credentials")

	// ErrPasswordTooLong reports a registration password past bcrypt's
	// 72-byte input limit. The HTTP validator bounds the rune count, so
	// this only fires for multi-byte input slipping past it.
	ErrPasswordTooLong = errors.New("service: password too long")
)

// dummyHash is a throwaway bcrypt hash compared against when the email is
// unknown, so login latency doesn't reveal whether an account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService is the account registry: it orchestrates registration
// (uniqueness + hash + persist) and login (lookup + verify + mint token).
type AuthService struct {
	Store      store.Store
	Tokens     *jwtx.Tokens
	BcryptCost int
}

// Register hashes the password, picks a random avatar and persists the new
// account. Emails are normalized to lowercase before the write so the
// uniqueness constraint and the login lookup agree on case.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	email = normalizeEmail(email)

	hash, err := cryptox.HashPassword(password, s.BcryptCost)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return domain.User{}, ErrPasswordTooLong
		}
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.Store.Users().CreateUser(ctx, domain.User{
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		ProfilePicture: randomAvatar(),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	// Read back the persisted row so defaults (created_at) are populated.
	return s.Store.Users().GetUserByID(ctx, id)
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password collapse into ErrInvalidCredentials; a dummy hash
// comparison keeps the two paths at comparable cost.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash)
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		// Structurally invalid stored hash is an internal fault, not
		// a wrong password.
		return "", domain.User{}, fmt.Errorf("verify password: %w", err)
	}

	token, err := s.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// GetUserByID resolves the current user for the identity-fetch endpoint.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
