package auth

import (
	"errors"
	"net/http"

	"github.com/parkease/parkease-backend/internal/api/handlers"
	authService "github.com/parkease/parkease-backend/internal/service/auth"
	"github.com/parkease/parkease-backend/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailExists        = "email is already registered"
	msgInvalidCredentials = "invalid email or password"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleRegister POST /auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrEmailExists):
			h.logger.Warn("POST /auth/register - Email already registered: email=%q", req.Email)
			handlers.RespondConflict(w, msgEmailExists)

		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/register - Failed to register user: email=%q, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: email=%q", req.Email)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleLogin POST /auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%q", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/login - Failed to login: email=%q, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: email=%q", req.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
