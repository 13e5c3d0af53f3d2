package admin_reports

import (
	"context"

	"github.com/parkease/parkease-backend/internal/service/reports/models"
)

type ReportsService interface {
	AdminStats(ctx context.Context) (*models.AdminStatsResponse, error)
	UsersSummary(ctx context.Context) (*models.UsersSummaryResponse, error)
	PaymentHistory(ctx context.Context) (*models.PaymentHistoryResponse, error)
	RecentActivity(ctx context.Context) (*models.RecentActivityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
