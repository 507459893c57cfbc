package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"premios-backend/internal/domains/projeto"
	"premios-backend/internal/shared/response"
)

type ProjetoHandler struct {
	service projeto.Service
}

func NewProjetoHandler(svc projeto.Service) *ProjetoHandler {
	return &ProjetoHandler{service: svc}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, param+" inválido")
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
	response.ErrorResponse(c, projeto.ToHTTPStatus(err), projeto.ToErrorCode(err), err.Error())
}

func apenasAtivos(c *gin.Context) bool {
	return c.DefaultQuery("ativos", "true") != "false"
}

// Create - POST /projetos
func (h *ProjetoHandler) Create(c *gin.Context) {
	var req projeto.CreateProjetoRequest
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

// GetByID - GET /projetos/:id
func (h *ProjetoHandler) GetByID(c *gin.Context) {
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

// List - GET /projetos?ativos=false
func (h *ProjetoHandler) List(c *gin.Context) {
	projetos, err := h.service.List(c.Request.Context(), apenasAtivos(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projetos, &response.Meta{Total: len(projetos)})
}

// Update - PUT /projetos/:id
func (h *ProjetoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req projeto.UpdateProjetoRequest
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

// Evaluate - PATCH /projetos/:id/avaliar
func (h *ProjetoHandler) Evaluate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req projeto.EvaluateProjetoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	evaluated, err := h.service.Evaluate(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, evaluated)
}

// Delete - DELETE /projetos/:id (soft delete, no cascade)
func (h *ProjetoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "projeto inativado com sucesso"})
}

// AddAutor - POST /projetos/:id/autores
func (h *ProjetoHandler) AddAutor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req projeto.AddAutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.service.AddAutor(c.Request.Context(), id, req.AutorID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// RemoveAutor - DELETE /projetos/:id/autores/:autorId
func (h *ProjetoHandler) RemoveAutor(c *gin.Context) {
	projetoID, ok := parseID(c, "id")
	if !ok {
		return
	}
	autorID, ok := parseID(c, "autorId")
	if !ok {
		return
	}

	updated, err := h.service.RemoveAutor(c.Request.Context(), projetoID, autorID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// GetByArea - GET /projetos/filtro/area/:area
func (h *ProjetoHandler) GetByArea(c *gin.Context) {
	projetos, err := h.service.GetByArea(c.Request.Context(), c.Param("area"), apenasAtivos(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projetos, &response.Meta{Total: len(projetos)})
}

// GetBySituacao - GET /projetos/filtro/situacao/:situacao
func (h *ProjetoHandler) GetBySituacao(c *gin.Context) {
	projetos, err := h.service.GetBySituacao(c.Request.Context(), c.Param("situacao"), apenasAtivos(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projetos, &response.Meta{Total: len(projetos)})
}

// GetByAutor - GET /projetos/filtro/autor/:autorId
func (h *ProjetoHandler) GetByAutor(c *gin.Context) {
	autorID, ok := parseID(c, "autorId")
	if !ok {
		return
	}

	projetos, err := h.service.GetByAutor(c.Request.Context(), autorID, apenasAtivos(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projetos, &response.Meta{Total: len(projetos)})
}

// GetByPremio - GET /projetos/filtro/premio/:premioId
func (h *ProjetoHandler) GetByPremio(c *gin.Context) {
	premioID, ok := parseID(c, "premioId")
	if !ok {
		return
	}

	projetos, err := h.service.GetByPremio(c.Request.Context(), premioID, apenasAtivos(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projetos, &response.Meta{Total: len(projetos)})
}

// GetByAvaliador - GET /projetos/filtro/avaliador/:avaliadorId
func (h *ProjetoHandler) GetByAvaliador(c *gin.Context) {
	avaliadorID, ok := parseID(c, "avaliadorId")
	if !ok {
		return
	}

	projetos, err := h.service.GetByAvaliador(c.Request.Context(), avaliadorID, apenasAtivos(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projetos, &response.Meta{Total: len(projetos)})
}

// CountBySituacaoAndPremio - GET /projetos/contagem/premio/:premioId/situacao/:situacao
func (h *ProjetoHandler) CountBySituacaoAndPremio(c *gin.Context) {
	premioID, ok := parseID(c, "premioId")
	if !ok {
		return
	}

	count, err := h.service.CountBySituacaoAndPremio(c.Request.Context(), premioID, c.Param("situacao"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}
