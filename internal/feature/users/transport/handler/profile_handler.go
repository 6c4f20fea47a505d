// Package handler provides the HTTP handler for the authenticated user's
// profile.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"petverse_backend/internal/api"
	authentity "petverse_backend/internal/feature/auth/domain/entity"
	petentity "petverse_backend/internal/feature/pets/domain/entity"
	pethandler "petverse_backend/internal/feature/pets/transport/handler"
	"petverse_backend/internal/feature/users/domain/entity"
	"petverse_backend/internal/feature/users/transport/http/dto"
	"petverse_backend/internal/feature/users/usecase"
)

// ProfileUsecase defines the profile operations consumed by the handler.
type ProfileUsecase interface {
	Profile(ctx context.Context, userID uint) (*authentity.User, []petentity.Pet, error)
	Settings(ctx context.Context, userID uint) (*entity.UserSettings, error)
	UpdateSettings(ctx context.Context, userID uint, changes usecase.SettingsChanges) (*entity.UserSettings, error)
	Address(ctx context.Context, userID uint) (*entity.UserAddress, error)
	UpdateAddress(ctx context.Context, userID uint, changes usecase.AddressChanges) (*entity.UserAddress, error)
}

// ProfileHandler handles the /users/me surface.
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Me handles GET /users/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}

	user, pets, err := h.profile.Profile(c.Request.Context(), identity.ID)
	if err != nil {
		slog.Error("profile load failed", "error", err, "user_id", identity.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load profile"})
		return
	}

	out := api.ProfileResponse{
		Name:  user.FullName,
		Email: user.Email,
		Role:  user.EffectiveRole(),
		Pets:  make([]api.PetSummaryResponse, 0, len(pets)),
	}
	for i := range pets {
		p := &pets[i]
		out.Pets = append(out.Pets, api.PetSummaryResponse{
			ID:        p.ID,
			Name:      p.Name,
			Species:   p.Species,
			Breed:     p.Breed,
			AvatarURL: p.AvatarURL,
		})
	}
	c.JSON(http.StatusOK, out)
}

func settingsToResponse(s *entity.UserSettings) api.SettingsResponse {
	if s == nil {
		return api.SettingsResponse{}
	}
	return api.SettingsResponse{
		NotificationsEnabled: s.NotificationsEnabled,
		PrivacyLevel:         s.PrivacyLevel,
		Language:             s.Language,
		Timezone:             s.Timezone,
	}
}

func addressToResponse(a *entity.UserAddress) api.AddressResponse {
	if a == nil {
		return api.AddressResponse{}
	}
	return api.AddressResponse{
		Country: a.Country,
		City:    a.City,
		Address: a.Address,
		Lat:     a.Lat,
		Lng:     a.Lng,
	}
}

// Settings handles GET /users/me/settings. An account that never saved
// settings gets an empty object.
func (h *ProfileHandler) Settings(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	settings, err := h.profile.Settings(c.Request.Context(), identity.ID)
	if err != nil {
		slog.Error("settings load failed", "error", err, "user_id", identity.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settingsToResponse(settings))
}

// UpdateSettings handles PUT /users/me/settings.
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	var req dto.SettingsUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("settings validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	settings, err := h.profile.UpdateSettings(c.Request.Context(), identity.ID, usecase.SettingsChanges{
		NotificationsEnabled: req.NotificationsEnabled,
		PrivacyLevel:         req.PrivacyLevel,
		Language:             req.Language,
		Timezone:             req.Timezone,
	})
	if err != nil {
		slog.Error("settings update failed", "error", err, "user_id", identity.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, settingsToResponse(settings))
}

// Address handles GET /users/me/address. An account that never saved an
// address gets an empty object.
func (h *ProfileHandler) Address(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	address, err := h.profile.Address(c.Request.Context(), identity.ID)
	if err != nil {
		slog.Error("address load failed", "error", err, "user_id", identity.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load address"})
		return
	}
	c.JSON(http.StatusOK, addressToResponse(address))
}

// UpdateAddress handles PUT /users/me/address.
func (h *ProfileHandler) UpdateAddress(c *gin.Context) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return
	}
	var req dto.AddressUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("address validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	address, err := h.profile.UpdateAddress(c.Request.Context(), identity.ID, usecase.AddressChanges{
		Country: req.Country,
		City:    req.City,
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
	})
	if err != nil {
		slog.Error("address update failed", "error", err, "user_id", identity.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update address"})
		return
	}
	c.JSON(http.StatusOK, addressToResponse(address))
}
