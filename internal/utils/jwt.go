package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"brewhaus_back_end/internal/models"
)

// GenerateJWT émet un token de session (24h) signé avec le secret fourni.
func GenerateJWT(user models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
