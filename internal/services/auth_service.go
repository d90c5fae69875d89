package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService gates the admin surface (reports, status management) behind a
// configured password exchanged for a signed session token. The password is
// only ever held as a bcrypt hash.
type AuthService struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenDuration   time.Duration
}

// NewAuthService creates a new AuthService from the configured admin password
// and JWT secret. An empty password disables login entirely.
func NewAuthService(adminPassword, jwtSecret string) (*AuthService, error) {
	var hash []byte
	if adminPassword != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = h
	}
	return &AuthService{
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		tokenDuration:   24 * time.Hour,
	}, nil
}

// Login checks the admin password and returns a JWT token if it matches.
func (s *AuthService) Login(password string) (string, error) {
	if len(s.passwordHash) == 0 {
		return "", fmt.Errorf("admin login is not configured")
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(s.tokenDuration).Unix(),
		"iat":  time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
