package service

import (
	"github.com/aaaalfred/usuariosrecompensas/internal/apperror"
	"github.com/aaaalfred/usuariosrecompensas/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies submitted credentials against the single configured
// admin identity. There is no user table behind this: the identity lives in
// the process configuration.
type AuthService interface {
	Login(username, password string) error
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login returns nil only when the username matches exactly (case-sensitive)
// and the password verifies against the configured bcrypt hash. A missing
// admin configuration is reported as its own error, distinct from a
// credential mismatch.
func (s *authService) Login(username, password string) error {
	if s.cfg.AdminUser == "" || s.cfg.AdminPasswordHash == "" {
		return apperror.ErrAdminNoConfigurado
	}
	if username != s.cfg.AdminUser {
		return apperror.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return apperror.ErrCredenciales
	}
	return nil
}
