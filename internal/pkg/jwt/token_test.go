package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "transit-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := getTestConfig()
	now := time.Now()

	token, expiresAt, err := GenerateToken("passenger-1", "ada@example.com", cfg, now)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "passenger-1", claims.PassengerID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "transit-test", claims.Issuer)
}

func TestValidateToken_Failures(t *testing.T) {
	cfg := getTestConfig()

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name: "wrong secret",
			token: func() string {
				tok, _, _ := GenerateToken("passenger-1", "a@b.c", models.JWTConfig{Secret: "other", Expiration: 60}, time.Now())
				return tok
			},
		},
		{
			name: "expired",
			token: func() string {
				tok, _, _ := GenerateToken("passenger-1", "a@b.c", cfg, time.Now().Add(-2*time.Hour))
				return tok
			},
		},
		{
			name:  "garbage",
			token: func() string { return "not.a.token" },
		},
		{
			name: "missing passenger id",
			token: func() string {
				tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"exp": time.Now().Add(time.Hour).Unix(),
				}).SignedString([]byte(cfg.Secret))
				return tok
			},
		},
		{
			name: "none algorithm",
			token: func() string {
				tok, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"passenger_id": "passenger-1",
				}).SignedString(jwt.UnsafeAllowNoneSignatureType)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token(), cfg.Secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
