package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/application"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/response"
)

type CargoHandler struct {
	Svc    *application.CargoService
	Logger *logrus.Logger
}

func NewCargoHandler(svc *application.CargoService, logger *logrus.Logger) *CargoHandler {
	return &CargoHandler{Svc: svc, Logger: logger}
}

type cargoRequest struct {
	Cargo struct {
		Nome string `json:"nomeCargo"`
	} `json:"cargo"`
}

func (h *CargoHandler) Store(c *gin.Context) {
	var req cargoRequest
	if !bindBody(c, &req) {
		return
	}
	cargo, err := h.Svc.Create(c.Request.Context(), req.Cargo.Nome)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Cadastro realizado com sucesso", gin.H{"cargos": []entity.Cargo{*cargo}})
}

func (h *CargoHandler) Index(c *gin.Context) {
	cargos, err := h.Svc.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Busca realizada com sucesso", gin.H{"cargos": cargos})
}

func (h *CargoHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	cargo, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", gin.H{"cargos": cargo})
}

func (h *CargoHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req cargoRequest
	if !bindBody(c, &req) {
		return
	}
	cargo, err := h.Svc.Update(c.Request.Context(), id, req.Cargo.Nome)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Cargo atualizado com sucesso", gin.H{"cargo": cargo})
}

func (h *CargoHandler) Destroy(c *gin.Context) {
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
