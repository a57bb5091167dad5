package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/http"
)

// HealthModule exposes the unauthenticated liveness probe.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Check)
}
