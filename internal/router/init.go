package router

import (
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/application"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/container"
	pginfra "github.com/TodeschiniDeveloper/gestao-projetos-api/internal/infrastructure/postgres"
	handlers "github.com/TodeschiniDeveloper/gestao-projetos-api/internal/interface/http"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	tokens := container.GetTokens()

	cargoRepo := pginfra.NewCargoRepository(pool)
	funcionarioRepo := pginfra.NewFuncionarioRepository(pool)
	usuarioRepo := pginfra.NewUsuarioRepository(pool)
	projetoRepo := pginfra.NewProjetoRepository(pool)
	tarefaRepo := pginfra.NewTarefaRepository(pool)

	cargoSvc := application.NewCargoService(cargoRepo, logger)
	funcionarioSvc := application.NewFuncionarioService(funcionarioRepo, cargoRepo, tokens, logger)
	usuarioSvc := application.NewUsuarioService(usuarioRepo, tokens, logger)
	projetoSvc := application.NewProjetoService(projetoRepo, usuarioRepo, logger)
	tarefaSvc := application.NewTarefaService(tarefaRepo, projetoRepo, logger)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(pool)))
	r.Add(modules.NewCargoModule(handlers.NewCargoHandler(cargoSvc, logger)))
	r.Add(modules.NewFuncionarioModule(handlers.NewFuncionarioHandler(funcionarioSvc, logger)))
	r.Add(modules.NewUsuarioModule(handlers.NewUsuarioHandler(usuarioSvc, logger)))
	r.Add(modules.NewProjetoModule(handlers.NewProjetoHandler(projetoSvc, logger)))
	r.Add(modules.NewTarefaModule(handlers.NewTarefaHandler(tarefaSvc, logger)))
}
