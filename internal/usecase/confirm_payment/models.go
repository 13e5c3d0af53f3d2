package confirm_payment

import "time"

// Response модель ответа с подтвержденным бронированием
type Response struct {
	ID            int64     // ID бронирования
	SlotID        int64     // ID слота
	DriverName    string    // Имя водителя
	VehicleNumber string    // Номер машины
	StartTime     time.Time // Начало интервала
	EndTime       time.Time // Конец интервала
	Amount        float64   // Зафиксированная сумма
	Status        string    // Статус (CONFIRMED)
	CreatedAt     time.Time // Время создания
}
