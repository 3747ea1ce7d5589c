package handler

import (
	"net/http"
	"strconv"

	"cadastro_api/internal/dto/request"
	"cadastro_api/internal/service"
	"cadastro_api/pkg/constants"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UsuarioHandler user endpoints
type UsuarioHandler struct {
	usuarioSvc service.UsuarioService
}

// NewUsuarioHandler creates the handler with its service
func NewUsuarioHandler(usuarioSvc service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioSvc: usuarioSvc}
}

// Cadastrar public registration, the form posts here
// POST /cadastro
// body: request.CadastroRequest
// 201: respond.UsuarioRespond
func (h *UsuarioHandler) Cadastrar(c *gin.Context) {
	var req request.CadastroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.usuarioSvc.Cadastrar(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessStatus(c, http.StatusCreated, data)
}

// Listar GET /usuarios
// 200: []respond.UsuarioRespond
func (h *UsuarioHandler) Listar(c *gin.Context) {
	data, err := h.usuarioSvc.ListarUsuarios(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Criar authenticated creation
// POST /usuarios
// body: request.CadastroRequest
// 201: respond.UsuarioRespond
func (h *UsuarioHandler) Criar(c *gin.Context) {
	var req request.CadastroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.usuarioSvc.Cadastrar(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	zap.L().Info("usuario criado", zap.Uint("id", data.ID), zap.Uint("por", c.GetUint(constants.CTX_USUARIO_ID)))
	HandleSuccessStatus(c, http.StatusCreated, data)
}

// Editar PUT /usuarios
// body: request.EditarUsuarioRequest
// 201: respond.UsuarioRespond, also when the id did not exist yet
func (h *UsuarioHandler) Editar(c *gin.Context) {
	var req request.EditarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.usuarioSvc.Editar(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessStatus(c, http.StatusCreated, data)
}

// Excluir DELETE /usuarios/:id
// 204 without body
func (h *UsuarioHandler) Excluir(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		HandleParamError(c, err)
		return
	}
	if err := h.usuarioSvc.Excluir(c.Request.Context(), uint(id)); err != nil {
		HandleError(c, err)
		return
	}
	zap.L().Info("usuario excluido", zap.Uint64("id", id), zap.Uint("por", c.GetUint(constants.CTX_USUARIO_ID)))
	c.Status(http.StatusNoContent)
}

// Logar POST /usuarios/login
// body: request.LoginRequest
// 200: respond.TokenRespond, 403 on bad credentials
func (h *UsuarioHandler) Logar(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.usuarioSvc.Logar(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
