package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"premios-backend/internal/domains/premio"
	"premios-backend/internal/shared/response"
)

type PremioHandler struct {
	service premio.Service
}

func NewPremioHandler(svc premio.Service) *PremioHandler {
	return &PremioHandler{service: svc}
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
	response.ErrorResponse(c, premio.ToHTTPStatus(err), premio.ToErrorCode(err), err.Error())
}

// Create - POST /premios
func (h *PremioHandler) Create(c *gin.Context) {
	var req premio.CreatePremioRequest
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

// GetByID - GET /premios/:id
func (h *PremioHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// List - GET /premios?ativos=false
func (h *PremioHandler) List(c *gin.Context) {
	apenasAtivos := c.DefaultQuery("ativos", "true") != "false"

	premios, err := h.service.List(c.Request.Context(), apenasAtivos)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, premios, &response.Meta{Total: len(premios)})
}

// GetByAno - GET /premios/ano/:ano
func (h *PremioHandler) GetByAno(c *gin.Context) {
	ano, err := strconv.Atoi(c.Param("ano"))
	if err != nil || ano <= 0 {
		response.BadRequest(c, "ano inválido")
		return
	}

	premios, err := h.service.GetByAno(c.Request.Context(), ano)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, premios, &response.Meta{Total: len(premios)})
}

// Update - PUT /premios/:id
func (h *PremioHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req premio.UpdatePremioRequest
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

// Delete - DELETE /premios/:id (soft delete, blocked while active projects remain)
func (h *PremioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "prêmio inativado com sucesso"})
}

// GetProjetos - GET /premios/:id/projetos
func (h *PremioHandler) GetProjetos(c *gin.Context) {
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

// CountProjetos - GET /premios/:id/projetos/count
func (h *PremioHandler) CountProjetos(c *gin.Context) {
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
