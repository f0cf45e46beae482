package businessflow

import (
	"fmt"
	"time"

	"github.com/amirphl/lead-desk/models"
	"github.com/amirphl/lead-desk/utils"
	"github.com/xuri/excelize/v2"
)

const (
	leadExportSheet       = "Leads"
	leadExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var leadExportHeader = []any{
	"id", "first_name", "last_name", "email", "phone", "company", "city", "state",
	"source", "status", "score", "lead_value", "is_qualified", "last_activity_at",
	"created_at", "updated_at",
}

// renderLeadWorkbook writes leads to a single-sheet xlsx workbook, one row per lead after the header
func renderLeadWorkbook(leads []*models.Lead) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), leadExportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := xl.SetSheetRow(leadExportSheet, "A1", &leadExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, l := range leads {
		if l == nil {
			continue
		}
		record := []any{
			l.ID.String(),
			l.FirstName,
			l.LastName,
			l.Email,
			utils.Deref(l.Phone),
			utils.Deref(l.Company),
			utils.Deref(l.City),
			utils.Deref(l.State),
			l.Source,
			l.Status,
			l.Score,
			l.LeadValue,
			l.IsQualified,
			formatOptionalTime(l.LastActivityAt),
			l.CreatedAt.UTC().Format(time.RFC3339),
			l.UpdatedAt.UTC().Format(time.RFC3339),
		}
		cellRef, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := xl.SetSheetRow(leadExportSheet, cellRef, &record); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
