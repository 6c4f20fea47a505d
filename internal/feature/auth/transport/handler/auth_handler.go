// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"petverse_backend/internal/api"
	"petverse_backend/internal/feature/auth/domain/entity"
	"petverse_backend/internal/feature/auth/transport/http/dto"
	"petverse_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations consumed by the handlers.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a password-backed account and issues a token.
	Register(ctx context.Context, name, email, password string) (*entity.User, string, error)
	// Login authenticates email/password credentials and issues a token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// LoginWithGoogle verifies a Google ID token, provisioning the account
	// on first login, and issues a token.
	LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error)
}

// AuthHandler handles the HTTP requests for registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func authResponse(user *entity.User, accessToken string) api.AuthResponse {
	return api.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User: api.UserResponse{
			ID:    user.ID,
			Name:  user.FullName,
			Email: user.Email,
			Role:  user.EffectiveRole(),
		},
	}
}

// Register handles POST /auth/register.
// Returns 201 with a token on success, 400 on validation failure or a
// duplicate email.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, tok, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email already registered"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, authResponse(user, tok))
}

// Login handles POST /auth/login.
// Returns 200 with a token on success, 401 on any credential failure. The
// real reason is never disclosed to the client.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, tok, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, authResponse(user, tok))
}

// GoogleCallback handles POST /auth/google/callback.
// Verifies the Google-issued ID token, provisioning the account on first
// login, and returns 200 with a token. An unverifiable token yields 401.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	var req dto.GoogleCallbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("google callback validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, tok, err := h.auth.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidGoogleToken) {
			slog.Warn("google token rejected", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid google token"})
			return
		}
		slog.Error("google login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	slog.Info("google login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, authResponse(user, tok))
}
