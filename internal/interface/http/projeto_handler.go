package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/application"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/response"
)

type ProjetoHandler struct {
	Svc    *application.ProjetoService
	Logger *logrus.Logger
}

func NewProjetoHandler(svc *application.ProjetoService, logger *logrus.Logger) *ProjetoHandler {
	return &ProjetoHandler{Svc: svc, Logger: logger}
}

type projetoRequest struct {
	Projeto struct {
		Nome       string `json:"nome"`
		Descricao  string `json:"descricao"`
		DataInicio string `json:"data_inicio"`
		Status     string `json:"status"`
		UsuarioID  int    `json:"usuario_id"`
	} `json:"projeto"`
}

func (r projetoRequest) input() application.ProjetoInput {
	return application.ProjetoInput{
		Nome:       r.Projeto.Nome,
		Descricao:  r.Projeto.Descricao,
		DataInicio: r.Projeto.DataInicio,
		Status:     r.Projeto.Status,
		UsuarioID:  r.Projeto.UsuarioID,
	}
}

func (h *ProjetoHandler) Store(c *gin.Context) {
	var req projetoRequest
	if !bindBody(c, &req) {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "Projeto criado com sucesso", gin.H{"projeto": p})
}

func (h *ProjetoHandler) Index(c *gin.Context) {
	projetos, err := h.Svc.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", gin.H{"projetos": projetos})
}

func (h *ProjetoHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", p)
}

func (h *ProjetoHandler) ShowByUsuario(c *gin.Context) {
	usuarioID, ok := idParam(c, "usuario_id")
	if !ok {
		return
	}
	projetos, err := h.Svc.FindByUsuarioID(c.Request.Context(), usuarioID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", gin.H{"projetos": projetos})
}

func (h *ProjetoHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req projetoRequest
	if !bindBody(c, &req) {
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Projeto atualizado com sucesso", gin.H{"projeto": p})
}

func (h *ProjetoHandler) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusNoContent, "Projeto excluído com sucesso", nil)
}
