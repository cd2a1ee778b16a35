package utils

import (
	"testing"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken(42, "jane.doe", models.RoleCashier)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "jane.doe", claims.Username)
	assert.Equal(t, models.RoleCashier, claims.Role)
	assert.Equal(t, "smart-supermarket", claims.Issuer)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken(7, "sam", models.RoleManager)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken(7, "sam", models.RoleManager)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
