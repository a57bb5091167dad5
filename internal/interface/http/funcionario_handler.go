package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/application"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/response"
)

type FuncionarioHandler struct {
	Svc    *application.FuncionarioService
	Logger *logrus.Logger
}

func NewFuncionarioHandler(svc *application.FuncionarioService, logger *logrus.Logger) *FuncionarioHandler {
	return &FuncionarioHandler{Svc: svc, Logger: logger}
}

type funcionarioRequest struct {
	Funcionario struct {
		Nome                 string `json:"nomeFuncionario"`
		Email                string `json:"email"`
		Senha                string `json:"senha"`
		RecebeValeTransporte bool   `json:"recebeValeTransporte"`
		Cargo                struct {
			ID int `json:"idCargo"`
		} `json:"cargo"`
	} `json:"funcionario"`
}

type funcionarioLoginRequest struct {
	Funcionario struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	} `json:"funcionario"`
}

func (h *FuncionarioHandler) Login(c *gin.Context) {
	var req funcionarioLoginRequest
	if !bindBody(c, &req) {
		return
	}
	f, token, err := h.Svc.Login(c.Request.Context(), req.Funcionario.Email, req.Funcionario.Senha)
	if err != nil {
		response.FromError(c, err)
		return
	}
	user := gin.H{"funcionario": gin.H{
		"email":         f.Email,
		"role":          f.Cargo.Nome,
		"name":          f.Nome,
		"idFuncionario": f.ID,
	}}
	response.OK(c, http.StatusOK, "Login efetuado com sucesso!", gin.H{"user": user, "token": token})
}

func (h *FuncionarioHandler) Store(c *gin.Context) {
	var req funcionarioRequest
	if !bindBody(c, &req) {
		return
	}
	f, err := h.Svc.Create(c.Request.Context(), application.FuncionarioInput{
		Nome:                 req.Funcionario.Nome,
		Email:                req.Funcionario.Email,
		Senha:                req.Funcionario.Senha,
		RecebeValeTransporte: req.Funcionario.RecebeValeTransporte,
		CargoID:              req.Funcionario.Cargo.ID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "Cadastro realizado com sucesso", gin.H{"funcionario": f})
}

func (h *FuncionarioHandler) Index(c *gin.Context) {
	funcionarios, err := h.Svc.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", gin.H{"funcionarios": funcionarios})
}

func (h *FuncionarioHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	f, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", f)
}

func (h *FuncionarioHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req funcionarioRequest
	if !bindBody(c, &req) {
		return
	}
	f, err := h.Svc.Update(c.Request.Context(), id, application.FuncionarioInput{
		Nome:                 req.Funcionario.Nome,
		Email:                req.Funcionario.Email,
		Senha:                req.Funcionario.Senha,
		RecebeValeTransporte: req.Funcionario.RecebeValeTransporte,
		CargoID:              req.Funcionario.Cargo.ID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Atualizado com sucesso", gin.H{"funcionario": f})
}

func (h *FuncionarioHandler) Destroy(c *gin.Context) {
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
