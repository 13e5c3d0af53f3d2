package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/parkease/parkease-backend/internal/domain"
	"github.com/parkease/parkease-backend/pkg/dbmetrics"
	"github.com/parkease/parkease-backend/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"slot_id",
	"driver_name",
	"vehicle_number",
	"start_time",
	"end_time",
	"amount",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Сумма и статус уже вычислены на уровне usecase и сохраняются как есть:
// сумма фиксируется в момент создания и не пересчитывается при изменении
// цены слота.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("slot_id", "driver_name", "vehicle_number", "start_time", "end_time", "amount", "status").
		Values(b.SlotID, b.DriverName, b.VehicleNumber, b.StartTime, b.EndTime, b.Amount, b.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции блокирует строку (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.SlotID,
		&b.DriverName,
		&b.VehicleNumber,
		&b.StartTime,
		&b.EndTime,
		&b.Amount,
		&b.Status,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}

// List получает все бронирования, упорядоченные по времени начала (сначала новые).
// Отчеты строятся поверх этого снапшота.
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.listWhere(ctx, nil, "List")
}

// GetByDriverName получает бронирования водителя, сначала новые
func (r *Repository) GetByDriverName(ctx context.Context, driverName string) ([]*domain.Booking, error) {
	return r.listWhere(ctx, squirrel.Eq{"driver_name": driverName}, "GetByDriverName")
}

// GetByVehicleNumber получает бронирования по номеру машины, сначала новые
func (r *Repository) GetByVehicleNumber(ctx context.Context, vehicleNumber string) ([]*domain.Booking, error) {
	return r.listWhere(ctx, squirrel.Eq{"vehicle_number": vehicleNumber}, "GetByVehicleNumber")
}

func (r *Repository) listWhere(ctx context.Context, where interface{}, op string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("start_time DESC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, op)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete физически удаляет бронирование.
// Используется только административным освобождением слота; обычная отмена
// сохраняет запись со статусом CANCELLED.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountBySlotAndStatus возвращает число бронирований слота в заданном статусе.
// Используется проверкой перед удалением слота.
func (r *Repository) CountBySlotAndStatus(ctx context.Context, slotID int64, status domain.BookingStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID, "status": status}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountBySlotAndStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBySlotAndStatus - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows, op string) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		if err := rows.Scan(
			&b.ID,
			&b.SlotID,
			&b.DriverName,
			&b.VehicleNumber,
			&b.StartTime,
			&b.EndTime,
			&b.Amount,
			&b.Status,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}
