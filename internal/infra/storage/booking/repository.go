package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	"github.com/KKKircheff/GTP-BookingService/pkg/dbmetrics"
	"github.com/KKKircheff/GTP-BookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pgUniqueViolation = "23505"

// bookingColumns полный набор колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"confirmation_number",
	"customer_name",
	"phone",
	"email",
	"license_plate",
	"vehicle_type",
	"vehicle_brand",
	"is_four_wheel_drive",
	"appointment_date",
	"appointment_time",
	"price",
	"is_online_booking",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями техосмотра
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование. ID и номер подтверждения генерирует
// вызывающая сторона до вставки.
//
// Сама вставка является точкой линеаризации проверки доступности слота:
// частичный уникальный индекс на (appointment_date, appointment_time)
// WHERE status = 'confirmed' гарантирует, что из двух конкурентных вставок
// на один слот пройдёт ровно одна, вторая получит ErrSlotTaken.
// При ошибке запись не создаётся - частичных коммитов не бывает.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"confirmation_number",
			"customer_name",
			"phone",
			"email",
			"license_plate",
			"vehicle_type",
			"vehicle_brand",
			"is_four_wheel_drive",
			"appointment_date",
			"appointment_time",
			"price",
			"is_online_booking",
			"status",
			"notes",
		).
		Values(
			booking.ID,
			booking.ConfirmationNumber,
			booking.CustomerName,
			booking.Phone,
			booking.Email,
			booking.LicensePlate,
			booking.VehicleType,
			booking.VehicleBrand,
			booking.IsFourWheelDrive,
			booking.AppointmentDate,
			booking.AppointmentTime,
			booking.Price,
			booking.IsOnlineBooking,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByConfirmationNumber получает бронирование по клиентскому номеру подтверждения
func (r *Repository) GetByConfirmationNumber(ctx context.Context, number string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"confirmation_number": number}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationNumber - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByConfirmationNumber")
}

// GetConfirmedByDate получает подтверждённые бронирования на дату,
// отсортированные по времени начала.
// Внутри транзакции добавляет FOR UPDATE - это блокировка для race-guard
// при создании бронирования.
func (r *Repository) GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"appointment_date": domain.TruncateToDay(date),
			"status":           domain.StatusConfirmed,
		}).
		OrderBy("appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ExistsConfirmed проверяет наличие подтверждённого бронирования на (дату, время).
// Точечный запрос race-guard'а; внутри транзакции блокирует найденную строку.
func (r *Repository) ExistsConfirmed(ctx context.Context, date time.Time, startTime string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"appointment_date": domain.TruncateToDay(date),
			"appointment_time": startTime,
			"status":           domain.StatusConfirmed,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	var id string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmed - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// CountConfirmedByDateRange считает подтверждённые бронирования по датам
// в диапазоне [startDate, endDate] включительно.
// Даты без бронирований в результате отсутствуют - вызывающая сторона
// трактует отсутствие ключа как ноль.
func (r *Repository) CountConfirmedByDateRange(ctx context.Context, startDate, endDate time.Time) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("appointment_date", "COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"appointment_date": domain.TruncateToDay(startDate)}).
		Where(squirrel.LtOrEq{"appointment_date": domain.TruncateToDay(endDate)}).
		GroupBy("appointment_date").
		OrderBy("appointment_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountConfirmedByDateRange - scan row: %v", ErrScanRow, err)
		}
		counts[domain.DateKey(date)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDateRange - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// ListWithFilter получает бронирования для админки с фильтрацией
// по периоду и статусу. Сортировка: по дате и времени по возрастанию.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("appointment_date ASC, appointment_time ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": domain.TruncateToDay(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": domain.TruncateToDay(*filter.EndDate)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus переводит подтверждённое бронирование в новый статус.
// Условие status = 'confirmed' защищает от переходов из терминальных статусов.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Cancel отменяет подтверждённое бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// execExpectingRow выполняет update и требует ровно одну затронутую строку
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanOne сканирует одну строку в бронирование
func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Booking, error) {
	booking, err := scanBookingRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}
	return booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBookingRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// scanBookingRow сканирует одну строку таблицы bookings в доменную модель
func scanBookingRow(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&booking.ID,
		&booking.ConfirmationNumber,
		&booking.CustomerName,
		&booking.Phone,
		&booking.Email,
		&booking.LicensePlate,
		&booking.VehicleType,
		&booking.VehicleBrand,
		&booking.IsFourWheelDrive,
		&booking.AppointmentDate,
		&booking.AppointmentTime,
		&booking.Price,
		&booking.IsOnlineBooking,
		&booking.Status,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
