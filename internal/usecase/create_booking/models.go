package create_booking

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName     string           // Имя клиента
	Phone            string           // Контактный телефон
	Email            *string          // Email (опционально)
	LicensePlate     string           // Регистрационный номер (нормализуется)
	VehicleType      string           // Тип транспорта (car, bus, ...)
	VehicleBrand     *string          // Марка (опционально)
	IsFourWheelDrive bool             // Полный привод
	Date             time.Time        // Дата бронирования (без времени)
	StartTime        types.TimeString // Время начала слота (например, "10:30")
	IsOnlineBooking  bool             // Онлайн-бронирование (даёт скидку)
	Notes            *string          // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                 string           // ID созданного бронирования
	ConfirmationNumber string           // Клиентский номер подтверждения
	AppointmentDate    time.Time        // Дата бронирования
	AppointmentTime    types.TimeString // Время начала
	LicensePlate       string           // Нормализованный номер
	VehicleType        string           // Тип транспорта
	Price              int              // Итоговая цена, лв.
	Status             string           // Статус бронирования
	CreatedAt          time.Time        // Время создания
}
