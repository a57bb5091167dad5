package router

import "github.com/gin-gonic/gin"

// Module is a group of related routes (cargos, funcionarios, ...) that knows
// how to mount itself under the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects the feature modules and mounts them all under /api once
// RegisterAll runs. Middlewares added with Use apply to the whole group.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
