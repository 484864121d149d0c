package handler

import (
	"errors"
	"net/http"

	"github.com/aaaalfred/usuariosrecompensas/internal/apperror"
	"github.com/aaaalfred/usuariosrecompensas/internal/dto"
	"github.com/aaaalfred/usuariosrecompensas/internal/middleware"
	"github.com/aaaalfred/usuariosrecompensas/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// LoginForm renders the login screen. An already-authenticated admin goes
// straight to the usuarios section.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/usuarios")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"error": nil})
}

// Login verifies the submitted credentials and opens the admin session.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Error al procesar login"})
		return
	}

	if err := h.svc.Login(form.Username, form.Password); err != nil {
		switch {
		case errors.Is(err, apperror.ErrAdminNoConfigurado):
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Configuracion de admin no encontrada"})
		case errors.Is(err, apperror.ErrCredenciales):
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Credenciales incorrectas"})
		default:
			log.Error().Err(err).Msg("error en login")
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Error al procesar login"})
		}
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.IsAdminKey, true)
	session.Set(middleware.UsernameKey, form.Username)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("error al guardar sesion")
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Error al procesar login"})
		return
	}
	c.Redirect(http.StatusFound, "/usuarios")
}

// Logout destroys the session. A destroy failure is logged and ignored; the
// redirect happens either way.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("error al cerrar sesion")
	}
	c.Redirect(http.StatusFound, "/login")
}

// Root sends the visitor to the usuarios section or the login screen
// depending on the session.
func (h *AuthHandler) Root(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/usuarios")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
