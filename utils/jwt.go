package utils

import (
	"errors"
	"time"

	"tutorhive/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "tutorhive-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the given subject and role claim.
// Token issuance normally lives in the external identity provider; this
// helper exists for local development and tests.
func GenerateToken(subject, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaims returns the subject and role claims from a valid token.
func ExtractClaims(tokenString string) (subject, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	subject, _ = claims["sub"].(string)
	if subject == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ = claims["role"].(string)
	return subject, role, nil
}
