package reports

import (
	"fmt"
	"sort"

	"github.com/parkease/parkease-backend/internal/domain"
	"github.com/parkease/parkease-backend/internal/service/reports/models"
)

// Агрегации реализованы как чистые функции над снапшотом хранилищ. Никакого разделяемого
// изменяемого состояния между вызовами нет.

// buildAdminStats считает статистику бронирований и слотов.
// В выручку входят только подтвержденные бронирования.
func buildAdminStats(bookings []*domain.Booking, slots []*domain.Slot) *models.AdminStatsResponse {
	stats := &models.AdminStatsResponse{
		TotalBookings: int64(len(bookings)),
		TotalSlots:    int64(len(slots)),
	}

	for _, b := range bookings {
		switch b.Status {
		case domain.StatusConfirmed:
			stats.ConfirmedBookings++
			stats.TotalRevenue += b.Amount
		case domain.StatusCancelled:
			stats.CancelledBookings++
		case domain.StatusPending:
			stats.PendingBookings++
		}
	}

	for _, s := range slots {
		if s.Available {
			stats.AvailableSlots++
		}
	}
	stats.OccupiedSlots = stats.TotalSlots - stats.AvailableSlots

	return stats
}

// buildUsersSummary группирует бронирования по имени водителя.
// Время последнего бронирования сравнивается как time.Time, не как строка.
func buildUsersSummary(bookings []*domain.Booking) *models.UsersSummaryResponse {
	byDriver := make(map[string]*models.UserSummary)
	var order []string

	for _, b := range bookings {
		summary, ok := byDriver[b.DriverName]
		if !ok {
			summary = &models.UserSummary{DriverName: b.DriverName}
			byDriver[b.DriverName] = summary
			order = append(order, b.DriverName)
		}

		summary.TotalBookings++
		if b.IsConfirmed() {
			summary.ConfirmedBookings++
			summary.TotalSpent += b.Amount
		}

		if summary.LastBooking == nil || b.StartTime.After(*summary.LastBooking) {
			start := b.StartTime
			summary.LastBooking = &start
			summary.VehicleNumber = b.VehicleNumber
		}
	}

	// Стабильный порядок в ответе
	sort.Strings(order)

	resp := &models.UsersSummaryResponse{Users: make([]models.UserSummary, 0, len(order))}
	for _, name := range order {
		resp.Users = append(resp.Users, *byDriver[name])
	}
	return resp
}

// buildPaymentHistory проецирует подтвержденные бронирования в историю
// платежей, сначала новые. Датой платежа считается время начала бронирования.
func buildPaymentHistory(bookings []*domain.Booking, slotsByID map[int64]*domain.Slot) *models.PaymentHistoryResponse {
	confirmed := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.IsConfirmed() {
			confirmed = append(confirmed, b)
		}
	}

	sort.SliceStable(confirmed, func(i, j int) bool {
		return confirmed[i].StartTime.After(confirmed[j].StartTime)
	})

	resp := &models.PaymentHistoryResponse{Payments: make([]models.Payment, 0, len(confirmed))}
	for _, b := range confirmed {
		resp.Payments = append(resp.Payments, models.Payment{
			ID:            b.ID,
			DriverName:    b.DriverName,
			VehicleNumber: b.VehicleNumber,
			SlotCode:      slotCode(slotsByID, b.SlotID),
			Amount:        b.Amount,
			PaymentDate:   b.StartTime,
			DurationHours: b.DurationHours(),
		})
	}
	return resp
}

// buildRecentActivity проецирует последние бронирования в ленту событий.
// Тип события выводится из статуса бронирования.
func buildRecentActivity(bookings []*domain.Booking, slotsByID map[int64]*domain.Slot, limit int) *models.RecentActivityResponse {
	recent := make([]*domain.Booking, len(bookings))
	copy(recent, bookings)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].StartTime.After(recent[j].StartTime)
	})

	if len(recent) > limit {
		recent = recent[:limit]
	}

	resp := &models.RecentActivityResponse{Activity: make([]models.Activity, 0, len(recent))}
	for _, b := range recent {
		code := slotCode(slotsByID, b.SlotID)
		resp.Activity = append(resp.Activity, models.Activity{
			ID:            b.ID,
			Type:          activityType(b.Status),
			DriverName:    b.DriverName,
			VehicleNumber: b.VehicleNumber,
			SlotCode:      code,
			Status:        string(b.Status),
			Amount:        b.Amount,
			Timestamp:     b.StartTime,
			Description:   activityDescription(b, code),
		})
	}
	return resp
}

func activityType(status domain.BookingStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return models.ActivityPaymentCompleted
	case domain.StatusCancelled:
		return models.ActivityBookingCancelled
	default:
		return models.ActivityBookingCreated
	}
}

func activityDescription(b *domain.Booking, slotCode string) string {
	switch b.Status {
	case domain.StatusConfirmed:
		return fmt.Sprintf("%s completed payment of ₹%.2f for slot %s", b.DriverName, b.Amount, slotCode)
	case domain.StatusCancelled:
		return fmt.Sprintf("%s cancelled booking for slot %s", b.DriverName, slotCode)
	default:
		return fmt.Sprintf("%s created booking for slot %s", b.DriverName, slotCode)
	}
}

// slotCode возвращает код слота или пустую строку для осиротевших
// бронирований (слот удален администратором)
func slotCode(slotsByID map[int64]*domain.Slot, slotID int64) string {
	if s, ok := slotsByID[slotID]; ok {
		return s.Code
	}
	return ""
}
