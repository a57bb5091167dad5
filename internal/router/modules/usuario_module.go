package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/container"
	handlers "github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/http"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/middleware"
)

// UsuarioModule wires the usuario routes.
// Public: POST /api/usuarios (signup) and POST /api/usuarios/login, both
// rate limited. Protected: everything else.
type UsuarioModule struct {
	Handler *handlers.UsuarioHandler
}

func NewUsuarioModule(h *handlers.UsuarioHandler) *UsuarioModule {
	return &UsuarioModule{Handler: h}
}

func (m *UsuarioModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	g := rg.Group("/usuarios")

	g.POST("/login", loginLimiter,
		middleware.RequireBody("usuario", "usuario.email", "usuario.senha"),
		m.Handler.Login)
	g.POST("/", signupLimiter,
		middleware.RequireBody("usuario", "usuario.nome", "usuario.email", "usuario.senha"),
		m.Handler.Store)

	auth := g.Group("/")
	auth.Use(middleware.Auth(container.GetTokens(), container.GetLogger()))
	{
		auth.GET("/", m.Handler.Index)
		auth.GET("/:id", middleware.RequireIDParam("id"), m.Handler.Show)
		auth.PUT("/:id",
			middleware.RequireIDParam("id"),
			middleware.RequireBody("usuario", "usuario.nome", "usuario.email"),
			m.Handler.Update)
		auth.DELETE("/:id", middleware.RequireIDParam("id"), m.Handler.Destroy)
	}
}
