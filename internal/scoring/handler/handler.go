// Package handler exposes the scoring module over HTTP.
package handler

import (
	"net/http"
	"strings"

	"avialeads_backend/internal/scoring/service"
	"avialeads_backend/internal/scoring/transport"
	"avialeads_backend/platform/httpkit"
	"avialeads_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc      *service.Service
	validate *validator.Validator
}

func New(svc *service.Service, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/leads/:userId/profile", h.UpdateProfile)
	rg.GET("/leads/:userId/profile", h.GetProfile)
	rg.POST("/leads/:userId/score", h.CalculateScore)
	rg.GET("/leads/:userId/scores", h.ScoreHistory)
	rg.GET("/scoring-rules", h.GetRules)
	rg.PATCH("/scoring-rules", h.UpdateRules)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))

	var req transport.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	profile, err := h.svc.UpdateProfile(c.Request.Context(), userID, req.SessionID, req.ToDomain())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.ProfileResponse{Profile: profile})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))

	profile, err := h.svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.ProfileResponse{Profile: profile})
}

func (h *Handler) CalculateScore(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))

	score, err := h.svc.CalculateScore(c.Request.Context(), userID)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.ScoreResponse{Score: score})
}

func (h *Handler) ScoreHistory(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))

	history := h.svc.ScoringHistory(c.Request.Context(), userID)
	httpkit.OK(c, transport.ScoreHistoryResponse{Items: history})
}

func (h *Handler) GetRules(c *gin.Context) {
	httpkit.OK(c, transport.RulesResponse{Rules: h.svc.Rules()})
}

func (h *Handler) UpdateRules(c *gin.Context) {
	var req transport.UpdateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	h.svc.UpdateRules(req.ToPatch())
	httpkit.OK(c, transport.RulesResponse{Rules: h.svc.Rules()})
}
