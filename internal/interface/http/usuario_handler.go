package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/application"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/response"
)

type UsuarioHandler struct {
	Svc    *application.UsuarioService
	Logger *logrus.Logger
}

func NewUsuarioHandler(svc *application.UsuarioService, logger *logrus.Logger) *UsuarioHandler {
	return &UsuarioHandler{Svc: svc, Logger: logger}
}

type usuarioRequest struct {
	Usuario struct {
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Senha string `json:"senha"`
	} `json:"usuario"`
}

type usuarioLoginRequest struct {
	Usuario struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	} `json:"usuario"`
}

func (h *UsuarioHandler) Login(c *gin.Context) {
	var req usuarioLoginRequest
	if !bindBody(c, &req) {
		return
	}
	u, token, err := h.Svc.Login(c.Request.Context(), req.Usuario.Email, req.Usuario.Senha)
	if err != nil {
		response.FromError(c, err)
		return
	}
	user := gin.H{"usuario": gin.H{
		"email": u.Email,
		"nome":  u.Nome,
		"id":    u.ID,
	}}
	response.OK(c, http.StatusOK, "Login efetuado com sucesso!", gin.H{"user": user, "token": token})
}

func (h *UsuarioHandler) Store(c *gin.Context) {
	var req usuarioRequest
	if !bindBody(c, &req) {
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.UsuarioInput{
		Nome:  req.Usuario.Nome,
		Email: req.Usuario.Email,
		Senha: req.Usuario.Senha,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "Cadastro realizado com sucesso", gin.H{"usuario": u})
}

func (h *UsuarioHandler) Index(c *gin.Context) {
	usuarios, err := h.Svc.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", gin.H{"usuarios": usuarios})
}

func (h *UsuarioHandler) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	u, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Executado com sucesso", u)
}

func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req usuarioRequest
	if !bindBody(c, &req) {
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), id, application.UsuarioInput{
		Nome:  req.Usuario.Nome,
		Email: req.Usuario.Email,
		Senha: req.Usuario.Senha,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Atualizado com sucesso", gin.H{"usuario": u})
}

func (h *UsuarioHandler) Destroy(c *gin.Context) {
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
