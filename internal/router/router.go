package router

import (
	"net/http"

	"github.com/aaaalfred/usuariosrecompensas/internal/config"
	"github.com/aaaalfred/usuariosrecompensas/internal/handler"
	"github.com/aaaalfred/usuariosrecompensas/internal/middleware"
	"github.com/aaaalfred/usuariosrecompensas/internal/repository"
	"github.com/aaaalfred/usuariosrecompensas/internal/service"
	"github.com/aaaalfred/usuariosrecompensas/internal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionName = "usuarios_session"

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	// Cookie-backed session, 24h window
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24,
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc, catalogoRepo)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	r.GET("/", authH.Root)
	r.GET("/login", authH.LoginForm)
	r.POST("/login", authH.Login)
	r.GET("/logout", authH.Logout)

	usuarios := r.Group("/usuarios", middleware.RequireAdmin())
	{
		usuarios.GET("", usuariosH.Buscar)
		usuarios.POST("/buscar", usuariosH.EjecutarBusqueda)
		usuarios.GET("/nuevo", usuariosH.NuevoForm)
		usuarios.POST("/nuevo", usuariosH.Crear)
		usuarios.GET("/editar/:id", usuariosH.EditarForm)
		usuarios.POST("/editar/:id", usuariosH.Actualizar)
	}

	return r
}
