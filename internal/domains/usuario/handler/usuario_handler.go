package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"premios-backend/internal/domains/usuario"
	"premios-backend/internal/shared/response"
)

type UsuarioHandler struct {
	service usuario.Service
}

func NewUsuarioHandler(svc usuario.Service) *UsuarioHandler {
	return &UsuarioHandler{service: svc}
}

func respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "dados inválidos", vErrs)
		return
	}
	response.ErrorResponse(c, usuario.ToHTTPStatus(err), usuario.ToErrorCode(err), err.Error())
}

// Register - POST /users
func (h *UsuarioHandler) Register(c *gin.Context) {
	var req usuario.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Login - POST /login
func (h *UsuarioHandler) Login(c *gin.Context) {
	var req usuario.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetByID - GET /users/:id
func (h *UsuarioHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "id inválido")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, u)
}

// Update - PUT /users/:id
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "id inválido")
		return
	}

	var req usuario.UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}
