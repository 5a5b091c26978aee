package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	"github.com/KKKircheff/GTP-BookingService/pkg/ptr"
)

// exportSheetName имя листа в выгрузке
const exportSheetName = "Бронирования"

// exportHeaders заголовки колонок выгрузки
var exportHeaders = []string{
	"Дата", "Время", "Клиент", "Телефон", "Номер", "Тип", "Марка",
	"Цена (лв.)", "Статус", "Номер подтверждения", "Создано",
}

// ExportToExcel выгружает бронирования за период в .xlsx для бэк-офиса.
// Возвращает содержимое файла и имя файла.
func (s *Service) ExportToExcel(ctx context.Context, startDate, endDate time.Time) ([]byte, string, error) {
	s.logger.Info("ExportToExcel: exporting %s - %s",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(startDate),
		EndDate:   ptr.Ptr(endDate),
	})
	if err != nil {
		s.logger.Error("ExportToExcel: repository error: %v", err)
		return nil, "", fmt.Errorf("%w: ExportToExcel - repository error: %v", ErrInternal, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, "", fmt.Errorf("%w: ExportToExcel - create sheet: %v", ErrInternal, err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	// Заголовок периода в первой строке
	_ = f.SetCellValue(exportSheetName, "A1", fmt.Sprintf("Период: %s - %s",
		startDate.Format("02.01.2006"), endDate.Format("02.01.2006")))
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(exportSheetName, "A1", "A1", titleStyle)
	lastColumn, _ := excelize.ColumnNumberToName(len(exportHeaders))
	_ = f.MergeCell(exportSheetName, "A1", lastColumn+"1")

	// Заголовки колонок
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(exportSheetName, cell, header)
		_ = f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	// Строки бронирований
	for rowIdx, b := range bookings {
		row := rowIdx + 3
		values := []interface{}{
			b.AppointmentDate.Format("02.01.2006"),
			b.AppointmentTime.String(),
			b.CustomerName,
			b.Phone,
			b.LicensePlate,
			string(b.VehicleType),
			derefOrEmpty(b.VehicleBrand),
			b.Price,
			string(b.Status),
			b.ConfirmationNumber,
			b.CreatedAt.Format("02.01.2006 15:04"),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			_ = f.SetCellValue(exportSheetName, cell, value)
		}
	}

	_ = f.SetColWidth(exportSheetName, "A", lastColumn, 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%w: ExportToExcel - write buffer: %v", ErrInternal, err)
	}

	fileName := fmt.Sprintf("bookings_%s_to_%s.xlsx",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	s.logger.Info("ExportToExcel: exported %d bookings to %s", len(bookings), fileName)
	return buf.Bytes(), fileName, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
