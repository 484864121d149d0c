package service

import (
	"testing"

	"github.com/aaaalfred/usuariosrecompensas/internal/apperror"
	"github.com/aaaalfred/usuariosrecompensas/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthCfg(t *testing.T, user, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{AdminUser: user, AdminPasswordHash: string(hash)}
}

func TestLoginExitoso(t *testing.T) {
	svc := NewAuthService(newAuthCfg(t, "admin", "secreto123"))
	assert.NoError(t, svc.Login("admin", "secreto123"))
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	svc := NewAuthService(newAuthCfg(t, "admin", "secreto123"))
	assert.ErrorIs(t, svc.Login("admin", "otra"), apperror.ErrCredenciales)
}

func TestLoginUsernameEsSensibleAMayusculas(t *testing.T) {
	svc := NewAuthService(newAuthCfg(t, "admin", "secreto123"))
	assert.ErrorIs(t, svc.Login("Admin", "secreto123"), apperror.ErrCredenciales)
}

func TestLoginAdminNoConfigurado(t *testing.T) {
	svc := NewAuthService(&config.Config{})
	assert.ErrorIs(t, svc.Login("admin", "secreto123"), apperror.ErrAdminNoConfigurado)

	// A configured user without a hash is still an unconfigured admin.
	svc = NewAuthService(&config.Config{AdminUser: "admin"})
	assert.ErrorIs(t, svc.Login("admin", "secreto123"), apperror.ErrAdminNoConfigurado)
}
