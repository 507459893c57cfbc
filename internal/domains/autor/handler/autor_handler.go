package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"premios-backend/internal/domains/autor"
	"premios-backend/internal/shared/response"
)

type AutorHandler struct {
	service autor.Service
}

func NewAutorHandler(svc autor.Service) *AutorHandler {
	return &AutorHandler{service: svc}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "id inválido")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "dados inválidos", vErrs)
		return
	}
	response.ErrorResponse(c, autor.ToHTTPStatus(err), autor.ToErrorCode(err), err.Error())
}

// Create - POST /autores
func (h *AutorHandler) Create(c *gin.Context) {
	var req autor.CreateAutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID - GET /autores/:id
func (h *AutorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// List - GET /autores
func (h *AutorHandler) List(c *gin.Context) {
	autores, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, autores, &response.Meta{Total: len(autores)})
}

// Update - PUT /autores/:id
func (h *AutorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req autor.UpdateAutorRequest
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

// Delete - DELETE /autores/:id (soft delete, cascades to linked projects)
func (h *AutorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "autor inativado com sucesso"})
}

// MediaNotas - POST /autores/:id/projetos/media
func (h *AutorHandler) MediaNotas(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	media, err := h.service.MediaNotas(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, autor.MediaResponse{Media: media})
}

// GetProjetos - GET /autores/:id/projetos
func (h *AutorHandler) GetProjetos(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	projetos, err := h.service.GetProjetos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projetos, &response.Meta{Total: len(projetos)})
}

// CountProjetos - GET /autores/:id/projetos/count
func (h *AutorHandler) CountProjetos(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	count, err := h.service.CountProjetos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}
