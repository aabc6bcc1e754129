package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// ErrInvalidToken is returned for tokens that fail parsing or verification
var ErrInvalidToken = errors.New("invalid token")

// Claims identifies the passenger a token was issued to
type Claims struct {
	PassengerID string `json:"passenger_id"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for passenger
func GenerateToken(passengerID, email string, cfg models.JWTConfig, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		PassengerID: passengerID,
		Email:       email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   passengerID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies tokenString against secret and returns its claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.PassengerID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
