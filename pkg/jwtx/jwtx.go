package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the default bearer token lifetime. There is no server-side
// revocation, so expiry is the only termination mechanism.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is the single rejection for every verification failure.
// Expired, tampered and malformed tokens all read the same to callers.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// Claims are the identity assertions embedded in a bearer token.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the authenticated user's numeric identifier.
	UserID int64 `json:"userId"`

	// Email is the authenticated user's email address.
	Email string `json:"email,omitempty"`
}

// Tokens signs and verifies HS256 bearer tokens with a process-wide secret
// fixed at startup. Rotating the secret invalidates all outstanding tokens.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func New(secret []byte, issuer string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tokens{secret: secret, issuer: issuer, ttl: ttl}
}

// Issue mints a signed token asserting that the given user was authenticated
// now, expiring after the configured lifetime.
func (t *Tokens) Issue(userID int64, email string) (string, error) {
	return t.IssueAt(userID, email, time.Now().UTC())
}

// IssueAt is Issue with an explicit issuance time, used by tests to simulate
// clock skew and pre-expired tokens.
func (t *Tokens) IssueAt(userID int64, email string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: userID,
		Email:  email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature integrity and expiry. Any failure collapses to
// ErrInvalidToken.
func (t *Tokens) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(token *jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
