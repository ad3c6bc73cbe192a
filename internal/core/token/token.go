// Package token issues and verifies the HS256 session tokens that carry
// identity between requests. Tokens are stateless and carry no expiry:
// a token stays valid until the signing secret rotates or the client
// discards it. The role claim reflects the user's role at issuance time
// and is never re-checked against the store.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopforge/commerce-api/internal/core/domain"
)

var (
	// ErrInvalidToken covers bad signatures, structural garbage, and
	// claims of the wrong shape.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingSecret is returned when the issuer was built without a
	// signing secret. Verification fails closed rather than accepting
	// unsigned tokens.
	ErrMissingSecret = errors.New("signing secret not configured")
)

// Claims is the identity payload embedded in every session token.
type Claims struct {
	UserID string
	Role   domain.Role
}

// Issuer signs and verifies session tokens with a process-wide secret
// injected once at startup.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue produces a signed, URL-safe token for the given claims.
func (i *Issuer) Issue(claims Claims) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrMissingSecret
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": claims.UserID,
		"role":    string(claims.Role),
	})
	return t.SignedString(i.secret)
}

// Verify checks the signature and returns the embedded claims. Any
// structural or signature problem maps to ErrInvalidToken.
func (i *Issuer) Verify(raw string) (Claims, error) {
	if len(i.secret) == 0 {
		return Claims{}, ErrMissingSecret
	}

	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, ErrInvalidToken
	}

	userID, _ := mc["user_id"].(string)
	role, _ := mc["role"].(string)
	if userID == "" || role == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: userID, Role: domain.Role(role)}, nil
}
