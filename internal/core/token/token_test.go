package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopforge/commerce-api/internal/core/domain"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret-a")

	raw, err := issuer.Issue(Claims{UserID: "user-1", Role: domain.RoleMerchant})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected a token, got empty string")
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("user_id did not round-trip: %q", claims.UserID)
	}
	if claims.Role != domain.RoleMerchant {
		t.Fatalf("role did not round-trip: %q", claims.Role)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := NewIssuer("secret-a").Issue(Claims{UserID: "user-1", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewIssuer("secret-b").Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken under rotated secret, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	issuer := NewIssuer("secret")

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(raw); err != ErrInvalidToken {
			t.Fatalf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	// A token with alg=none must never pass even with a matching payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-1",
		"role":    "MERCHANT",
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer("secret").Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestMissingSecret_FailsClosed(t *testing.T) {
	issuer := NewIssuer("")

	if _, err := issuer.Issue(Claims{UserID: "u", Role: domain.RoleCustomer}); err != ErrMissingSecret {
		t.Fatalf("Issue without secret: expected ErrMissingSecret, got %v", err)
	}

	raw, err := NewIssuer("secret").Issue(Claims{UserID: "u", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := issuer.Verify(raw); err != ErrMissingSecret {
		t.Fatalf("Verify without secret: expected ErrMissingSecret, got %v", err)
	}
}

func TestIssue_NoExpiry(t *testing.T) {
	raw, err := NewIssuer("secret").Issue(Claims{UserID: "u", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	mc := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, has := mc["exp"]; has {
		t.Fatalf("tokens must not carry an exp claim")
	}
}
