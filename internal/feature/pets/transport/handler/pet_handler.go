// Package handler provides the HTTP handlers for the pets feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"petverse_backend/internal/api"
	"petverse_backend/internal/feature/pets/domain/entity"
	"petverse_backend/internal/feature/pets/transport/http/dto"
	"petverse_backend/internal/feature/pets/usecase"
	"petverse_backend/internal/platform/token"
)

// PetsUsecase defines the pet operations consumed by the handlers.
type PetsUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Pet, error)
	Create(ctx context.Context, ownerID uint, pet *entity.Pet) (*entity.Pet, error)
	Get(ctx context.Context, ownerID, petID uint) (*entity.Pet, error)
	Update(ctx context.Context, ownerID, petID uint, changes usecase.PetChanges) (*entity.Pet, error)
	Delete(ctx context.Context, ownerID, petID uint) error
}

// PetHandler handles the HTTP requests for pet CRUD.
type PetHandler struct {
	pets PetsUsecase
}

// NewPetHandler creates a new PetHandler instance.
func NewPetHandler(pets PetsUsecase) *PetHandler {
	return &PetHandler{pets: pets}
}

// PetToResponse maps a pet entity to its API shape.
func PetToResponse(p *entity.Pet) api.PetResponse {
	out := api.PetResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Sex:       p.Sex,
		Weight:    p.Weight,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	}
	if p.Birthdate != nil {
		out.Birthdate = &openapi_types.Date{Time: *p.Birthdate}
	}
	return out
}

// ParseIDParam parses a positive numeric path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// CallerIdentity fetches the identity attached by the auth middleware,
// aborting with 401 when it is missing.
func CallerIdentity(c *gin.Context) (*token.Identity, bool) {
	identity, ok := token.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return nil, false
	}
	return identity, true
}

// List handles GET /pets.
func (h *PetHandler) List(c *gin.Context) {
	identity, ok := CallerIdentity(c)
	if !ok {
		return
	}

	pets, err := h.pets.List(c.Request.Context(), identity.ID)
	if err != nil {
		slog.Error("pet list failed", "error", err, "owner_id", identity.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list pets"})
		return
	}

	out := make([]api.PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, PetToResponse(&pets[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /pets.
func (h *PetHandler) Create(c *gin.Context) {
	identity, ok := CallerIdentity(c)
	if !ok {
		return
	}

	var req dto.PetCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("pet create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	pet := &entity.Pet{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Sex:       req.Sex,
		Weight:    req.Weight,
		AvatarURL: req.AvatarURL,
	}
	if req.Birthdate != nil {
		pet.Birthdate = &req.Birthdate.Time
	}

	created, err := h.pets.Create(c.Request.Context(), identity.ID, pet)
	if err != nil {
		slog.Error("pet create failed", "error", err, "owner_id", identity.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create pet"})
		return
	}

	c.JSON(http.StatusCreated, PetToResponse(created))
}

// Get handles GET /pets/:id. Absent and foreign pets both yield 404.
func (h *PetHandler) Get(c *gin.Context) {
	identity, ok := CallerIdentity(c)
	if !ok {
		return
	}
	petID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	pet, err := h.pets.Get(c.Request.Context(), identity.ID, petID)
	if err != nil {
		if errors.Is(err, usecase.ErrPetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "pet not found"})
			return
		}
		slog.Error("pet get failed", "error", err, "pet_id", petID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load pet"})
		return
	}

	c.JSON(http.StatusOK, PetToResponse(pet))
}

// Update handles PUT /pets/:id.
func (h *PetHandler) Update(c *gin.Context) {
	identity, ok := CallerIdentity(c)
	if !ok {
		return
	}
	petID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PetUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("pet update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	changes := usecase.PetChanges{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Sex:       req.Sex,
		Weight:    req.Weight,
		AvatarURL: req.AvatarURL,
	}
	if req.Birthdate != nil {
		changes.Birthdate = &req.Birthdate.Time
	}

	pet, err := h.pets.Update(c.Request.Context(), identity.ID, petID, changes)
	if err != nil {
		if errors.Is(err, usecase.ErrPetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "pet not found"})
			return
		}
		slog.Error("pet update failed", "error", err, "pet_id", petID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update pet"})
		return
	}

	c.JSON(http.StatusOK, PetToResponse(pet))
}

// Delete handles DELETE /pets/:id.
func (h *PetHandler) Delete(c *gin.Context) {
	identity, ok := CallerIdentity(c)
	if !ok {
		return
	}
	petID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.pets.Delete(c.Request.Context(), identity.ID, petID); err != nil {
		if errors.Is(err, usecase.ErrPetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "pet not found"})
			return
		}
		slog.Error("pet delete failed", "error", err, "pet_id", petID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete pet"})
		return
	}

	c.Status(http.StatusNoContent)
}
