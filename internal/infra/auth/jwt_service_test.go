package auth

import (
	"strings"
	"testing"
	"time"

	"bookswap/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestTokenConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(0))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()
	email := "a@x.com"

	token, err := jwtService.IssueToken(userID, email)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL issues a token that is already past its expiry.
	jwtService, err := NewJWTService(newTestTokenConfig(-time.Minute))
	assert.NoError(t, err)

	token, err := jwtService.IssueToken(uuid.New(), "a@x.com")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(0))
	assert.NoError(t, err)

	token, err := jwtService.IssueToken(uuid.New(), "a@x.com")
	assert.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)

	// Flip a character in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := jwtService.ValidateToken(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig(0))
	assert.NoError(t, err)

	otherCfg := newTestTokenConfig(0)
	otherCfg.SecretKey.Token = "a_completely_different_secret_key_value"
	validator, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := issuer.IssueToken(uuid.New(), "a@x.com")
	assert.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(0))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
