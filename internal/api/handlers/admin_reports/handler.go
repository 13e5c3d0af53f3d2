package admin_reports

import (
	"net/http"

	"github.com/parkease/parkease-backend/internal/api/handlers"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStats GET /api/v1/admin/stats
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AdminStats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to build stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Stats built: total_bookings=%d, revenue=%.2f",
		result.TotalBookings, result.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUsers GET /api/v1/admin/users
func (h *Handler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.UsersSummary(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/users - Failed to build users summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/users - Summary built for %d drivers", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePayments GET /api/v1/admin/payments
func (h *Handler) HandlePayments(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PaymentHistory(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/payments - Failed to build payment history: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/payments - History built with %d payments", len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleActivity GET /api/v1/admin/activity
func (h *Handler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RecentActivity(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/activity - Failed to build activity feed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/activity - Feed built with %d entries", len(result.Activity))
	handlers.RespondJSON(w, http.StatusOK, result)
}
