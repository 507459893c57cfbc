package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"premios-backend/internal/domains/avaliador"
	"premios-backend/internal/shared/response"
)

type AvaliadorHandler struct {
	service avaliador.Service
}

func NewAvaliadorHandler(svc avaliador.Service) *AvaliadorHandler {
	return &AvaliadorHandler{service: svc}
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
	response.ErrorResponse(c, avaliador.ToHTTPStatus(err), avaliador.ToErrorCode(err), err.Error())
}

// Create - POST /avaliadores
func (h *AvaliadorHandler) Create(c *gin.Context) {
	var req avaliador.CreateAvaliadorRequest
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

// GetByID - GET /avaliadores/:id
func (h *AvaliadorHandler) GetByID(c *gin.Context) {
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

// List - GET /avaliadores
func (h *AvaliadorHandler) List(c *gin.Context) {
	avaliadores, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, avaliadores, &response.Meta{Total: len(avaliadores)})
}

// Update - PUT /avaliadores/:id
func (h *AvaliadorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req avaliador.UpdateAvaliadorRequest
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

// Delete - DELETE /avaliadores/:id (soft delete, assigned projects untouched)
func (h *AvaliadorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "avaliador inativado com sucesso"})
}

// MediaNotas - GET /avaliadores/:id/projetos/media
func (h *AvaliadorHandler) MediaNotas(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	media, err := h.service.MediaNotas(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, avaliador.MediaResponse{Media: media})
}

// GetProjetos - GET /avaliadores/:id/projetos
func (h *AvaliadorHandler) GetProjetos(c *gin.Context) {
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

// CountProjetos - GET /avaliadores/:id/projetos/count
func (h *AvaliadorHandler) CountProjetos(c *gin.Context) {
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
