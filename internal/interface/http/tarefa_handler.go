package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/application"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/response"
)

type TarefaHandler struct {
	Svc    *application.TarefaService
	Logger *logrus.Logger
}

func NewTarefaHandler(svc *application.TarefaService, logger *logrus.Logger) *TarefaHandler {
	return &TarefaHandler{Svc: svc, Logger: logger}
}

type tarefaRequest struct {
	Tarefa struct {
		Titulo     string `json:"titulo"`
		Concluida  bool   `json:"concluida"`
		DataLimite string `json:"data_limite"`
		ProjetoID  int    `json:"projeto_id"`
	} `json:"tarefa"`
}

func (r tarefaRequest) input() application.TarefaInput {
	return application.TarefaInput{
		Titulo:     r.Tarefa.Titulo,
		Concluida:  r.Tarefa.Concluida,
		DataLimite: r.Tarefa.DataLimite,
		ProjetoID:  r.Tarefa.ProjetoID,
	}
}

func (h *TarefaHandler) Store(c *gin.Context) {
	var req tarefaRequest
	if !bindBody(c, &req) {
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "Tarefa criada com sucesso", gin.H{"tarefa": t})
}

func (h *TarefaHandler) Index(c *gin.Context) {
	tarefas, err := h.Svc.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", gin.H{"tarefas": tarefas})
}

func (h *TarefaHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	t, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", t)
}

func (h *TarefaHandler) ShowByProjeto(c *gin.Context) {
	projetoID, ok := idParam(c, "projeto_id")
	if !ok {
		return
	}
	tarefas, err := h.Svc.FindByProjetoID(c.Request.Context(), projetoID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", gin.H{"tarefas": tarefas})
}

func (h *TarefaHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req tarefaRequest
	if !bindBody(c, &req) {
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Tarefa atualizada com sucesso", gin.H{"tarefa": t})
}

func (h *TarefaHandler) Concluir(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.MarcarComoConcluida(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Tarefa concluída com sucesso", nil)
}

func (h *TarefaHandler) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusNoContent, "Excluído com sucesso", nil)
}
