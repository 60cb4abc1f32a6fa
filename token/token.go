// Package token issues and verifies the access tokens returned by the
// account service. Tokens are HMAC-signed JWTs; the rest of the system
// treats them as opaque strings.
package token

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrTokenExpired = errors.New("access token expired")
)

// Identity is the subject a verified token resolves to.
type Identity struct {
	UserID string
	Email  string
}

// Issuer creates and verifies access tokens for one signing secret.
type Issuer struct {
	secret []byte
	issuer string
	expiry time.Duration
}

func NewIssuer(secret []byte, issuer string, expiry time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("[NewIssuer] signing secret is required")
	}
	if expiry <= 0 {
		return nil, errors.New("[NewIssuer] token expiry must be positive")
	}
	return &Issuer{secret: secret, issuer: issuer, expiry: expiry}, nil
}

// Issue creates a signed access token for the given account.
func (i *Issuer) Issue(userID, email string) (string, error) {
	now := NowTimeFunc()
	claims := jwtlib.MapClaims{
		"iss":   i.issuer,
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.expiry).Unix(),
		"jti":   uuid.New().String(),
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("[Issuer.Issue] failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a raw token, returning the identity it
// carries.
func (i *Issuer) Verify(raw string) (*Identity, error) {
	parsed, err := jwtlib.Parse(raw, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return i.secret, nil
	}, jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: sub, Email: email}, nil
}
