package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/container"
	handlers "github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/http"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/middleware"
)

// ProjetoModule wires the projeto routes, including the per-usuario
// listing. Every route requires a token.
type ProjetoModule struct {
	Handler *handlers.ProjetoHandler
}

func NewProjetoModule(h *handlers.ProjetoHandler) *ProjetoModule {
	return &ProjetoModule{Handler: h}
}

func (m *ProjetoModule) Register(rg *gin.RouterGroup) {
	body := middleware.RequireBody(
		"projeto",
		"projeto.nome",
		"projeto.status",
		"projeto.usuario_id",
	)

	g := rg.Group("/projetos")
	g.Use(middleware.Auth(container.GetTokens(), container.GetLogger()))
	{
		g.POST("/", body, m.Handler.Store)
		g.GET("/", m.Handler.Index)
		g.GET("/usuario/:usuario_id", middleware.RequireIDParam("usuario_id"), m.Handler.ShowByUsuario)
		g.GET("/:id", middleware.RequireIDParam("id"), m.Handler.Show)
		g.PUT("/:id", middleware.RequireIDParam("id"), body, m.Handler.Update)
		g.DELETE("/:id", middleware.RequireIDParam("id"), m.Handler.Destroy)
	}
}
