package report

import (
	"bytes"
	"fmt"

	"github.com/frahmantamala/crms/internal/cases"
	"github.com/xuri/excelize/v2"
)

const (
	CaseSheet         = "Cases"
	ContentTypeXLSX   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	reportedAtLayout  = "2006-01-02 15:04"
	defaultSheetTitle = "Sheet1"
)

var CaseHeader = []string{
	"Case ID",
	"FIR Number",
	"Crime",
	"IPC Section",
	"Severity",
	"Status",
	"City",
	"District",
	"Police Station",
	"Primary Accused",
	"Date Reported",
	"Description",
}

var caseColumnWidths = []float64{10, 18, 22, 14, 12, 20, 16, 16, 16, 24, 18, 48}

// BuildCaseWorkbook renders rows into a single-sheet workbook with a frozen header.
func BuildCaseWorkbook(rows []cases.CaseView) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open; every return path closes it explicitly.

	index, err := f.NewSheet(CaseSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet(defaultSheetTitle); err != nil {
		f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#DCE6F1"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, title := range CaseHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("header coordinates: %w", err)
		}
		if err := f.SetCellValue(CaseSheet, cell, title); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(CaseSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(CaseSheet, name, name, caseColumnWidths[col]); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, c := range rows {
		row := i + 2
		values := caseRow(c)
		for col, value := range values {
			if value == nil || value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("cell coordinates: %w", err)
			}
			if err := f.SetCellValue(CaseSheet, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(CaseSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func caseRow(c cases.CaseView) []interface{} {
	return []interface{}{
		c.CaseID,
		c.FIRNumber,
		deref(c.CrimeName),
		deref(c.IPCSection),
		deref(c.SeverityLevel),
		c.Status,
		deref(c.City),
		deref(c.District),
		deref(c.PoliceStationCode),
		deref(c.PrimaryAccusedName),
		c.DateReported.UTC().Format(reportedAtLayout),
		deref(c.Description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
