package middleware

import (
	"strings"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := SignJWT("secret", TokenClaims{
		Sub:    "u1",
		Role:   "donor",
		Exp:    time.Now().Add(time.Hour).Unix(),
		Issuer: "lifted",
	})
	if err != nil {
		t.Fatalf("SignJWT error: %v", err)
	}

	claims, err := VerifyJWT("secret", token)
	if err != nil {
		t.Fatalf("VerifyJWT error: %v", err)
	}
	if claims.Sub != "u1" || claims.Role != "donor" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTRejectsTampering(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{Sub: "u1", Exp: time.Now().Add(time.Hour).Unix()})

	if _, err := VerifyJWT("other-secret", token); err == nil {
		t.Fatal("wrong secret accepted")
	}

	parts := strings.Split(token, ".")
	forged := parts[0] + ".eyJzdWIiOiJhZG1pbiJ9." + parts[2]
	if _, err := VerifyJWT("secret", forged); err == nil {
		t.Fatal("forged payload accepted")
	}

	if _, err := VerifyJWT("secret", "not-a-token"); err == nil {
		t.Fatal("malformed token accepted")
	}
}

func TestJWTExpiry(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{Sub: "u1", Exp: time.Now().Add(-time.Minute).Unix()})
	if _, err := VerifyJWT("secret", token); err == nil {
		t.Fatal("expired token accepted")
	}
}
