package security

import (
	"testing"
	"time"

	model "todolist-api.com/todolist-api/pkg/models"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:     "test-secret",
		Issuer:     "todolist-api",
		Audience:   "todolist-client",
		Expiration: time.Hour,
	}
}

func testUser() *model.User {
	return &model.User{
		ID:       "4a1f7f9e-5b4c-4c6a-9f1b-0a2e3d4c5b6a",
		Email:    "jane@example.com",
		FullName: "Jane Doe",
	}
}

func TestTokenIssuer_GenerateAndParse(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())
	user := testUser()

	token, err := issuer.Generate(user)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if claims.Subject != user.ID {
		t.Errorf("expected subject %s, got %s", user.ID, claims.Subject)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.FullName != user.FullName {
		t.Errorf("expected name %s, got %s", user.FullName, claims.FullName)
	}
	if claims.Issuer != "todolist-api" {
		t.Errorf("expected issuer todolist-api, got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("expected a token id claim")
	}
}

func TestTokenIssuer_FreshTokenIDPerToken(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())
	user := testUser()

	first, _ := issuer.Generate(user)
	second, _ := issuer.Generate(user)

	firstClaims, _ := issuer.Parse(first)
	secondClaims, _ := issuer.Parse(second)

	if firstClaims.ID == secondClaims.ID {
		t.Error("two tokens for the same user must carry different token ids")
	}
}

func TestTokenIssuer_RejectWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())

	otherConfig := testTokenConfig()
	otherConfig.Secret = "a-different-secret"
	other := NewTokenIssuer(otherConfig)

	token, err := issuer.Generate(testUser())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := other.Parse(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_RejectExpiredToken(t *testing.T) {
	config := testTokenConfig()
	config.Expiration = time.Millisecond
	issuer := NewTokenIssuer(config)

	token, err := issuer.Generate(testUser())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := issuer.Parse(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenIssuer_RejectGarbage(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())

	for _, token := range []string{"", "not.a.token", "eyJhbGciOiJIUzI1NiJ9.broken"} {
		if _, err := issuer.Parse(token); err == nil {
			t.Errorf("expected parse to fail for %q", token)
		}
	}
}
