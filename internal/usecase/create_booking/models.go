package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	SlotID        int64     // ID слота
	DriverName    string    // Имя водителя (из токена или формы)
	VehicleNumber string    // Номер машины
	StartTime     time.Time // Начало интервала
	EndTime       time.Time // Конец интервала (строго позже начала, в будущем)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	SlotID        int64     // ID слота
	SlotCode      string    // Код слота
	DriverName    string    // Имя водителя
	VehicleNumber string    // Номер машины
	StartTime     time.Time // Начало интервала
	EndTime       time.Time // Конец интервала
	Amount        float64   // Зафиксированная сумма
	Status        string    // Статус (PENDING)
	CreatedAt     time.Time // Время создания
}
