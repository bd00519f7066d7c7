package services

import (
	"fmt"

	"donna_landing_go/models"

	"github.com/xuri/excelize/v2"
)

const contactSheet = "Contacts"

var contactExportHeaders = []string{"ID", "Received (UTC)", "Name", "Email", "Message", "Status", "Locale", "Notified (UTC)"}

// ExportContactMessages writes messages to a workbook with one row per message
func ExportContactMessages(messages []models.ContactMessage) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", contactSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range contactExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(contactSheet, cell, header)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(contactExportHeaders), 1)
	f.SetCellStyle(contactSheet, "A1", lastHeader, headerStyle)

	const layout = "2006-01-02 15:04"
	for i, m := range messages {
		notified := ""
		if m.NotifiedAt != nil {
			notified = m.NotifiedAt.UTC().Format(layout)
		}
		row := []interface{}{m.ID, m.CreatedAt.UTC().Format(layout), m.Name, m.Email, m.Message, m.Status, m.Locale, notified}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(contactSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	f.SetColWidth(contactSheet, "A", "A", 38)
	f.SetColWidth(contactSheet, "C", "D", 28)
	f.SetColWidth(contactSheet, "E", "E", 80)
	return f, nil
}
