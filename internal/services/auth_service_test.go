package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orderdesk/internal/services"
)

func TestLoginAndValidateToken(t *testing.T) {
	service, err := services.NewAuthService("letmein", "test-secret")
	assert.NoError(t, err)

	token, err := service.Login("letmein")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	service, err := services.NewAuthService("letmein", "test-secret")
	assert.NoError(t, err)

	_, err = service.Login("guess")
	assert.Error(t, err)
}

func TestLogin_DisabledWithoutPassword(t *testing.T) {
	service, err := services.NewAuthService("", "test-secret")
	assert.NoError(t, err)

	_, err = service.Login("")
	assert.Error(t, err)
	_, err = service.Login("anything")
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	service, err := services.NewAuthService("letmein", "test-secret")
	assert.NoError(t, err)

	_, err = service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_RejectsForeignSecret(t *testing.T) {
	issuer, _ := services.NewAuthService("letmein", "secret-a")
	verifier, _ := services.NewAuthService("letmein", "secret-b")

	token, err := issuer.Login("letmein")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
