package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// EstimateExport holds everything needed to export a cost estimate.
type EstimateExport struct {
	EventType   string
	TierName    string
	Guests      int
	CreatedDate string
	Rows        []BreakdownRow
	Total       float64
}

// GenerateEstimateExcel creates an Excel workbook from a cost estimate.
func GenerateEstimateExcel(data EstimateExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Estimate"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C"}
	widths := []float64{30, 14, 20}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	// Title and context rows.
	f.SetCellValue(sheetName, "A1", "Event Cost Estimate")
	f.MergeCell(sheetName, "A1", "C1")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	f.SetCellValue(sheetName, "A2",
		fmt.Sprintf("Event: %s | Tier: %s | Guests: %d", data.EventType, data.TierName, data.Guests))
	f.SetCellStyle(sheetName, "A2", "A2", subtitleStyle)
	f.SetCellValue(sheetName, "C2", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "C2", "C2", subtitleStyle)

	// Breakdown table.
	f.SetCellValue(sheetName, "A4", "Service")
	f.SetCellValue(sheetName, "B4", "Unit")
	f.SetCellValue(sheetName, "C4", "Cost")
	f.SetCellStyle(sheetName, "A4", "C4", headerStyle)

	rowNum := 5
	for _, r := range data.Rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), r.Service)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.Unit.Label())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), FormatINR(r.Cost))
		f.SetCellStyle(sheetName,
			fmt.Sprintf("A%d", rowNum), fmt.Sprintf("C%d", rowNum), dataStyle)
		rowNum++
	}

	// Total row.
	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), "Total:")
	f.SetCellStyle(sheetName,
		fmt.Sprintf("B%d", rowNum), fmt.Sprintf("B%d", rowNum), totalLabelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), FormatINR(data.Total))
	f.SetCellStyle(sheetName,
		fmt.Sprintf("C%d", rowNum), fmt.Sprintf("C%d", rowNum), totalValueStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write estimate export: %w", err)
	}
	return buf.Bytes(), nil
}

// thinBorders returns a thin black border on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}

// columnLetters returns the first n Excel column names.
func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		cols[i] = name
	}
	return cols
}
