package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/container"
	handlers "github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/http"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/middleware"
)

// FuncionarioModule wires the funcionario routes.
// Public: POST /api/funcionarios/login (rate limited).
// Protected: everything else.
type FuncionarioModule struct {
	Handler *handlers.FuncionarioHandler
}

func NewFuncionarioModule(h *handlers.FuncionarioHandler) *FuncionarioModule {
	return &FuncionarioModule{Handler: h}
}

func (m *FuncionarioModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath()) // 10 req/min per IP

	g := rg.Group("/funcionarios")

	g.POST("/login", loginLimiter,
		middleware.RequireBody("funcionario", "funcionario.email", "funcionario.senha"),
		m.Handler.Login)

	auth := g.Group("/")
	auth.Use(middleware.Auth(container.GetTokens(), container.GetLogger()))
	{
		auth.POST("/", middleware.RequireBody(
			"funcionario",
			"funcionario.nomeFuncionario",
			"funcionario.email",
			"funcionario.senha",
			"funcionario.recebeValeTransporte",
			"funcionario.cargo.idCargo",
		), m.Handler.Store)
		auth.GET("/", m.Handler.Index)
		auth.GET("/:id", middleware.RequireIDParam("id"), m.Handler.Show)
		auth.PUT("/:id",
			middleware.RequireIDParam("id"),
			middleware.RequireBody(
				"funcionario",
				"funcionario.nomeFuncionario",
				"funcionario.email",
				"funcionario.recebeValeTransporte",
				"funcionario.cargo.idCargo",
			),
			m.Handler.Update)
		auth.DELETE("/:id", middleware.RequireIDParam("id"), m.Handler.Destroy)
	}
}
