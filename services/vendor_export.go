package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// vendorExportColumn defines a column in the vendor export spreadsheet.
type vendorExportColumn struct {
	Header string
	Width  float64
	Value  func(Vendor) any
}

func vendorExportColumns() []vendorExportColumn {
	return []vendorExportColumn{
		{Header: "Name", Width: 30, Value: func(v Vendor) any { return v.Name }},
		{Header: "City", Width: 20, Value: func(v Vendor) any { return v.City }},
		{Header: "Event Types", Width: 32, Value: func(v Vendor) any { return strings.Join(v.EventTypes, ", ") }},
		{Header: "Rating", Width: 10, Value: func(v Vendor) any { return v.Rating }},
		{Header: "Min Budget", Width: 14, Value: func(v Vendor) any { return v.MinBudget }},
		{Header: "Max Budget", Width: 14, Value: func(v Vendor) any { return v.MaxBudget }},
		{Header: "Contact", Width: 24, Value: func(v Vendor) any { return v.Contact }},
	}
}

// GenerateVendorExcel creates an Excel file listing all vendors in the
// dataset.
func GenerateVendorExcel(vendors []Vendor) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Vendors"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
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

	columns := vendorExportColumns()
	letters := columnLetters(len(columns))
	lastCol := letters[len(letters)-1]

	// Title and generated date.
	f.SetCellValue(sheetName, "A1", "Vendor Directory")
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	f.SetCellValue(sheetName, "A2", "Generated: "+time.Now().Format("2006-01-02"))
	f.SetCellStyle(sheetName, "A2", "A2", subtitleStyle)

	// Column headers on row 4.
	for i, c := range columns {
		cell := letters[i] + "4"
		f.SetCellValue(sheetName, cell, c.Header)
		f.SetColWidth(sheetName, letters[i], letters[i], c.Width)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// Data rows.
	for rowIdx, v := range vendors {
		rowNum := rowIdx + 5
		for colIdx, c := range columns {
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", letters[colIdx], rowNum), c.Value(v))
		}
		f.SetCellStyle(sheetName,
			fmt.Sprintf("A%d", rowNum),
			fmt.Sprintf("%s%d", lastCol, rowNum),
			dataStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write vendor export: %w", err)
	}
	return buf.Bytes(), nil
}
