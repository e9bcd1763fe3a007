package handlers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Auth environment variables. The password hash may be stored without the
// bcrypt preamble so it survives shells that mangle dollar signs.
const (
	envUsername     = "TRIPCONF_USERNAME"
	envPasswordHash = "TRIPCONF_PASSWORD_HASH"
	envJWTSecret    = "TRIPCONF_JWT_SECRET"

	bcryptPreamble = "$2a$12$"

	authCookieName = "tripconf_token"
	tokenLifetime  = 30 * 24 * time.Hour
)

// AuthConfig holds the single-user credentials the app authenticates against.
type AuthConfig struct {
	Username     string
	PasswordHash string
	JWTSecret    []byte
}

// LoadAuthConfig reads the auth settings from the environment.
func LoadAuthConfig() (AuthConfig, error) {
	cfg := AuthConfig{
		Username:     os.Getenv(envUsername),
		PasswordHash: os.Getenv(envPasswordHash),
		JWTSecret:    []byte(os.Getenv(envJWTSecret)),
	}

	if cfg.Username == "" {
		return AuthConfig{}, fmt.Errorf("auth: %s is not set", envUsername)
	}
	if cfg.PasswordHash == "" {
		return AuthConfig{}, fmt.Errorf("auth: %s is not set", envPasswordHash)
	}
	if len(cfg.JWTSecret) == 0 {
		return AuthConfig{}, fmt.Errorf("auth: %s is not set", envJWTSecret)
	}

	if !strings.HasPrefix(cfg.PasswordHash, "$2") {
		cfg.PasswordHash = bcryptPreamble + cfg.PasswordHash
	}

	return cfg, nil
}

// CheckCredentials verifies a username/password pair against the config.
func (cfg AuthConfig) CheckCredentials(username, password string) bool {
	if username != cfg.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(password)) == nil
}

// IssueToken signs a login token valid for 30 days.
func (cfg AuthConfig) IssueToken(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   cfg.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.JWTSecret)
}

// VerifyToken parses and validates a login token.
func (cfg AuthConfig) VerifyToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return cfg.JWTSecret, nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != cfg.Username {
		return fmt.Errorf("token subject mismatch")
	}
	return nil
}
