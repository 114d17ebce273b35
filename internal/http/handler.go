package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courtcraft/estimates/internal/http/middleware"
	"github.com/courtcraft/estimates/internal/model"
	"github.com/courtcraft/estimates/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type EstimateService interface {
	Calculate(ctx context.Context, principal model.Principal, input model.ProjectInput) (*model.CostBreakdown, error)
	CreateEstimate(ctx context.Context, input service.CreateEstimateInput) (*model.Estimate, error)
	GetEstimate(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Estimate, error)
	ListEstimates(ctx context.Context, principal model.Principal, limit int) ([]model.EstimateSummary, error)
	Recalculate(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Estimate, error)
	ExportExcel(ctx context.Context, principal model.Principal, id uuid.UUID) (*service.ExportResult, error)
	ExportPDF(ctx context.Context, principal model.Principal, id uuid.UUID) (*service.ExportResult, error)
	ListRates(ctx context.Context) ([]model.Rate, error)
	UpdateRate(ctx context.Context, principal model.Principal, id int, value float64) (*model.Rate, error)
}

type Handler struct {
	estimates EstimateService
	log       zerolog.Logger
}

func NewHandler(estimates EstimateService, log zerolog.Logger) *Handler {
	return &Handler{estimates: estimates, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/rates", h.listRates)
	protected.PUT("/rates/:id", h.updateRate)

	protected.POST("/estimates/calculate", h.calculate)
	protected.POST("/estimates", h.createEstimate)
	protected.GET("/estimates", h.listEstimates)
	protected.GET("/estimates/:id", h.getEstimate)
	protected.POST("/estimates/:id/recalculate", h.recalculate)
	protected.GET("/estimates/:id/export", h.exportExcel)
	protected.GET("/estimates/:id/export/pdf", h.exportPDF)
}

type createEstimateRequest struct {
	ClientName  string             `json:"client_name" binding:"required"`
	ProjectName string             `json:"project_name"`
	Project     model.ProjectInput `json:"project"`
}

type updateRateRequest struct {
	Value *float64 `json:"value" binding:"required,gte=0"`
}

func (h *Handler) calculate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req model.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.estimates.Calculate(c.Request.Context(), principal, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (h *Handler) createEstimate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.estimates.CreateEstimate(c.Request.Context(), service.CreateEstimateInput{
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
		Project:     req.Project,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": estimate})
}

func (h *Handler) listEstimates(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	estimates, err := h.estimates.ListEstimates(c.Request.Context(), principal, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": estimates})
}

func (h *Handler) getEstimate(c *gin.Context) {
	principal, id, ok := h.estimateTarget(c)
	if !ok {
		return
	}

	estimate, err := h.estimates.GetEstimate(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": estimate})
}

func (h *Handler) recalculate(c *gin.Context) {
	principal, id, ok := h.estimateTarget(c)
	if !ok {
		return
	}

	estimate, err := h.estimates.Recalculate(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": estimate})
}

func (h *Handler) exportExcel(c *gin.Context) {
	principal, id, ok := h.estimateTarget(c)
	if !ok {
		return
	}

	result, err := h.estimates.ExportExcel(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) exportPDF(c *gin.Context) {
	principal, id, ok := h.estimateTarget(c)
	if !ok {
		return
	}

	result, err := h.estimates.ExportPDF(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) listRates(c *gin.Context) {
	rates, err := h.estimates.ListRates(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rates})
}

func (h *Handler) updateRate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate id"})
		return
	}

	var req updateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := h.estimates.UpdateRate(c.Request.Context(), principal, id, *req.Value)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rate})
}

func (h *Handler) estimateTarget(c *gin.Context) (model.Principal, uuid.UUID, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return model.Principal{}, uuid.Nil, false
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid estimate id"})
		return model.Principal{}, uuid.Nil, false
	}
	return principal, id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoRates):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
