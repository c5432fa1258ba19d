// Package export renders generation results as xlsx and csv downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/casegen-ai/casegen/internal/ai"
)

// Headers is the column layout shared by both export formats.
var Headers = []string{
	"Test ID", "Module", "Test Scenario", "Preconditions",
	"Steps", "Test Data", "Expected Result", "Actual Result",
	"Status", "Priority", "Severity", "Edge Cases",
}

func row(tc ai.TestCase) []string {
	return []string{
		tc.TestID, tc.Module, tc.TestScenario, tc.Preconditions,
		tc.Steps, tc.TestData, tc.ExpectedResult, tc.ActualResult,
		tc.Status, tc.Priority, tc.Severity, tc.EdgeCases,
	}
}

// sheetName is the single worksheet holding the cases.
const sheetName = "Test Cases"

var columnWidths = []float64{12, 20, 35, 25, 40, 20, 35, 20, 12, 12, 12, 30}

// Excel writes a styled xlsx workbook with one row per test case.
func Excel(w io.Writer, cases []ai.TestCase) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Style: 1}, {Type: "right", Style: 1},
			{Type: "top", Style: 1}, {Type: "bottom", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Style: 1}, {Type: "right", Style: 1},
			{Type: "top", Style: 1}, {Type: "bottom", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("cell style: %w", err)
	}

	for col, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	firstHeader, _ := excelize.CoordinatesToCellName(1, 1)
	lastHeader, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(sheetName, firstHeader, lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, tc := range cases {
		for col, v := range row(tc) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}
	if len(cases) > 0 {
		firstCell, _ := excelize.CoordinatesToCellName(1, 2)
		lastCell, _ := excelize.CoordinatesToCellName(len(Headers), len(cases)+1)
		if err := f.SetCellStyle(sheetName, firstCell, lastCell, cellStyle); err != nil {
			return fmt.Errorf("style rows: %w", err)
		}
	}

	for col, width := range columnWidths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// CSV writes the cases as delimited text. Multi-line step text is flattened
// so each case stays on one record line in spreadsheet apps.
func CSV(w io.Writer, cases []ai.TestCase) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, tc := range cases {
		r := row(tc)
		r[4] = strings.ReplaceAll(r[4], "\n", " | ")
		if err := cw.Write(r); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
