package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/container"
	handlers "github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/http"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/middleware"
)

// TarefaModule wires the tarefa routes, including the per-projeto listing
// and the conclusion shortcut. Every route requires a token.
type TarefaModule struct {
	Handler *handlers.TarefaHandler
}

func NewTarefaModule(h *handlers.TarefaHandler) *TarefaModule {
	return &TarefaModule{Handler: h}
}

func (m *TarefaModule) Register(rg *gin.RouterGroup) {
	body := middleware.RequireBody(
		"tarefa",
		"tarefa.titulo",
		"tarefa.projeto_id",
	)

	g := rg.Group("/tarefas")
	g.Use(middleware.Auth(container.GetTokens(), container.GetLogger()))
	{
		g.POST("/", body, m.Handler.Store)
		g.GET("/", m.Handler.Index)
		g.GET("/projeto/:projeto_id", middleware.RequireIDParam("projeto_id"), m.Handler.ShowByProjeto)
		g.GET("/:id", middleware.RequireIDParam("id"), m.Handler.Show)
		g.PUT("/:id", middleware.RequireIDParam("id"), body, m.Handler.Update)
		g.PATCH("/:id/concluir", middleware.RequireIDParam("id"), m.Handler.Concluir)
		g.DELETE("/:id", middleware.RequireIDParam("id"), m.Handler.Destroy)
	}
}
