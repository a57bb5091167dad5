package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/container"
	handlers "github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/http"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/middleware"
)

// CargoModule wires the cargo CRUD routes. Every route requires a token.
type CargoModule struct {
	Handler *handlers.CargoHandler
}

func NewCargoModule(h *handlers.CargoHandler) *CargoModule {
	return &CargoModule{Handler: h}
}

func (m *CargoModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(container.GetTokens(), container.GetLogger())

	g := rg.Group("/cargos")
	g.Use(auth)
	{
		g.POST("/", middleware.RequireBody("cargo", "cargo.nomeCargo"), m.Handler.Store)
		g.GET("/", m.Handler.Index)
		g.GET("/:id", middleware.RequireIDParam("id"), m.Handler.Show)
		g.PUT("/:id", middleware.RequireIDParam("id"), middleware.RequireBody("cargo", "cargo.nomeCargo"), m.Handler.Update)
		g.DELETE("/:id", middleware.RequireIDParam("id"), m.Handler.Destroy)
	}
}
