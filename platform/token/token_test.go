package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("super-secret")

	tok, err := Generate("user-123", secret, time.Hour)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	userId, err := Parse(tok, secret)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if userId != "user-123" {
		t.Fatalf("user id mismatch: got %q want %q", userId, "user-123")
	}
}

func TestParseExpired(t *testing.T) {
	secret := []byte("secret")

	tok, err := Generate("u1", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := Parse(tok, secret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := Generate("u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := Parse(tok, []byte("wrong-secret")); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestParseRejectsOtherSigningMethods(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserId: "u3",
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := Parse(tok, []byte("k")); err == nil {
		t.Fatal("expected error for a token not signed with HS256, got nil")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("not.a.jwt", []byte("k")); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
