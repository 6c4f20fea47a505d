// Package handler provides the HTTP handlers for the AI-assisted care
// features.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"petverse_backend/internal/api"
	"petverse_backend/internal/feature/petcare/domain/entity"
	"petverse_backend/internal/feature/petcare/usecase"
	pethandler "petverse_backend/internal/feature/pets/transport/handler"
)

// PetcareUsecase defines the care operations consumed by the handlers.
type PetcareUsecase interface {
	ScanVaccineCard(ctx context.Context, callerID, petID uint, imageData []byte) (*entity.CardScan, error)
	ListScans(ctx context.Context, callerID, petID uint) ([]entity.CardScan, error)
	Recommend(ctx context.Context, callerID, petID uint, recType string) (*entity.Recommendation, error)
	ListRecommendations(ctx context.Context, callerID, petID uint) ([]entity.Recommendation, error)
}

// PetcareHandler handles the HTTP requests for vaccine card scans and care
// recommendations.
type PetcareHandler struct {
	care PetcareUsecase
}

// NewPetcareHandler creates a new PetcareHandler instance.
func NewPetcareHandler(care PetcareUsecase) *PetcareHandler {
	return &PetcareHandler{care: care}
}

type recommendReq struct {
	Type string `json:"type" binding:"omitempty,oneof=general diet exercise grooming vaccination"`
}

func scanToResponse(s *entity.CardScan) api.CardScanResponse {
	return api.CardScanResponse{
		ID:            s.ID,
		PetID:         s.PetID,
		ExtractedText: s.ExtractedText,
		CreatedAt:     s.CreatedAt,
	}
}

func recommendationToResponse(r *entity.Recommendation) api.RecommendationResponse {
	return api.RecommendationResponse{
		ID:                 r.ID,
		PetID:              r.PetID,
		RecommendationType: r.RecommendationType,
		Content:            r.Content,
		CreatedAt:          r.CreatedAt,
	}
}

func replyCareErr(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "pet not found"})
	case errors.Is(err, usecase.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "feature not available"})
	case errors.Is(err, usecase.ErrEmptyImage), errors.Is(err, usecase.ErrImageTooLarge):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrUpstream):
		slog.Error("care backend failed", "action", action, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to " + action})
	default:
		slog.Error("care operation failed", "action", action, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to " + action})
	}
}

// ScanVaccineCard handles POST /pets/:id/vaccine-card/scans.
//
// Content-Type: multipart/form-data, field "image" (max 10MB).
func (h *PetcareHandler) ScanVaccineCard(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	petID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("vaccine card upload missing image", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("vaccine card open failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("vaccine card close failed", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("vaccine card read failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	scan, err := h.care.ScanVaccineCard(c.Request.Context(), identity.ID, petID, imageData)
	if err != nil {
		replyCareErr(c, err, "scan vaccine card")
		return
	}
	c.JSON(http.StatusCreated, scanToResponse(scan))
}

// ListScans handles GET /pets/:id/vaccine-card/scans.
func (h *PetcareHandler) ListScans(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	petID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	scans, err := h.care.ListScans(c.Request.Context(), identity.ID, petID)
	if err != nil {
		replyCareErr(c, err, "list scans")
		return
	}
	out := make([]api.CardScanResponse, 0, len(scans))
	for i := range scans {
		out = append(out, scanToResponse(&scans[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Recommend handles POST /pets/:id/recommendations.
func (h *PetcareHandler) Recommend(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	petID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec, err := h.care.Recommend(c.Request.Context(), identity.ID, petID, req.Type)
	if err != nil {
		replyCareErr(c, err, "generate recommendation")
		return
	}
	c.JSON(http.StatusCreated, recommendationToResponse(rec))
}

// ListRecommendations handles GET /pets/:id/recommendations.
func (h *PetcareHandler) ListRecommendations(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	petID, ok := pethandler.ParseIDParam(c, "id")
	if !ok {
		return
	}
	recs, err := h.care.ListRecommendations(c.Request.Context(), identity.ID, petID)
	if err != nil {
		replyCareErr(c, err, "list recommendations")
		return
	}
	out := make([]api.RecommendationResponse, 0, len(recs))
	for i := range recs {
		out = append(out, recommendationToResponse(&recs[i]))
	}
	c.JSON(http.StatusOK, out)
}
