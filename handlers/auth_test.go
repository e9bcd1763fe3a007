package handlers

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// testAuthConfig returns a config for the canonical test user. The hash is
// computed once per test because bcrypt is deliberately slow.
func testAuthConfig(t *testing.T) AuthConfig {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return AuthConfig{
		Username:     "admin",
		PasswordHash: string(hash),
		JWTSecret:    []byte("test-secret"),
	}
}

func TestCheckCredentials(t *testing.T) {
	cfg := testAuthConfig(t)

	if !cfg.CheckCredentials("admin", "hunter2") {
		t.Error("valid credentials rejected")
	}
	if cfg.CheckCredentials("admin", "wrong") {
		t.Error("wrong password accepted")
	}
	if cfg.CheckCredentials("someone", "hunter2") {
		t.Error("wrong username accepted")
	}
}

func TestLoadAuthConfig_PrependsPreamble(t *testing.T) {
	t.Setenv(envUsername, "admin")
	t.Setenv(envPasswordHash, "abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUV12345P6ij")
	t.Setenv(envJWTSecret, "secret")

	cfg, err := LoadAuthConfig()
	if err != nil {
		t.Fatalf("LoadAuthConfig() error: %v", err)
	}
	if !strings.HasPrefix(cfg.PasswordHash, bcryptPreamble) {
		t.Errorf("expected preamble %q prefix, got %q", bcryptPreamble, cfg.PasswordHash)
	}
}

func TestLoadAuthConfig_KeepsFullHash(t *testing.T) {
	full := "$2a$12$abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUV12345P6ij"
	t.Setenv(envUsername, "admin")
	t.Setenv(envPasswordHash, full)
	t.Setenv(envJWTSecret, "secret")

	cfg, err := LoadAuthConfig()
	if err != nil {
		t.Fatalf("LoadAuthConfig() error: %v", err)
	}
	if cfg.PasswordHash != full {
		t.Errorf("full hash was modified: %q", cfg.PasswordHash)
	}
}

func TestLoadAuthConfig_MissingVars(t *testing.T) {
	t.Setenv(envUsername, "")
	t.Setenv(envPasswordHash, "")
	t.Setenv(envJWTSecret, "")

	if _, err := LoadAuthConfig(); err == nil {
		t.Error("expected error with empty environment")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testAuthConfig(t)

	token, err := cfg.IssueToken(time.Now())
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	if err := cfg.VerifyToken(token); err != nil {
		t.Errorf("freshly issued token rejected: %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	cfg := testAuthConfig(t)

	token, err := cfg.IssueToken(time.Now())
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	other := cfg
	other.JWTSecret = []byte("different-secret")
	if err := other.VerifyToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	cfg := testAuthConfig(t)

	// Issued far enough in the past that the 30 day lifetime has elapsed.
	token, err := cfg.IssueToken(time.Now().Add(-31 * 24 * time.Hour))
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	if err := cfg.VerifyToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	cfg := testAuthConfig(t)

	if err := cfg.VerifyToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
