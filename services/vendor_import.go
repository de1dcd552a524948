package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// VendorField describes one column of the vendor dataset.
type VendorField struct {
	Key      string
	Label    string
	Required bool
}

// VendorTemplateFields returns the vendor dataset columns in template order.
func VendorTemplateFields() []VendorField {
	return []VendorField{
		{Key: "name", Label: "Name", Required: true},
		{Key: "city", Label: "City", Required: true},
		{Key: "event_types", Label: "Event Types", Required: true},
		{Key: "rating", Label: "Rating", Required: true},
		{Key: "min_budget", Label: "Min Budget", Required: true},
		{Key: "max_budget", Label: "Max Budget", Required: true},
		{Key: "contact", Label: "Contact", Required: false},
	}
}

// MalformedDatasetError reports a vendor file whose overall shape is wrong
// (missing required columns, no data rows). Row-level problems are reported
// as ValidationErrors instead.
type MalformedDatasetError struct {
	Reason string
}

func (e *MalformedDatasetError) Error() string {
	return "malformed vendor dataset: " + e.Reason
}

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is returned after parsing and validating an uploaded
// vendor file.
type ValidationResult struct {
	TotalRows  int                 `json:"total_rows"`
	ValidRows  int                 `json:"valid_rows"`
	ErrorRows  int                 `json:"error_rows"`
	Errors     []ValidationError   `json:"errors"`
	ParsedRows []map[string]string `json:"-"`
	FileName   string              `json:"-"`
}

var (
	vendorPhonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	vendorEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateContact accepts an empty contact, a 10-digit Indian mobile number
// or an email address.
func ValidateContact(contact string) bool {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return true
	}
	if strings.Contains(contact, "@") {
		return vendorEmailPattern.MatchString(contact)
	}
	return vendorPhonePattern.MatchString(contact)
}

// parseVendorCSV reads a CSV file and returns headers + data rows.
func parseVendorCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, &MalformedDatasetError{Reason: "file must contain a header row and at least one data row"}
	}
	return allRows[0], allRows[1:], nil
}

// parseVendorExcel reads the first sheet of an xlsx file.
func parseVendorExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, &MalformedDatasetError{Reason: "file must contain a header row and at least one data row"}
	}
	return rows[0], rows[1:], nil
}

// mapVendorHeaders maps uploaded column headers to vendor field keys.
// Headers match on either the field key ("min_budget") or the template
// label ("Min Budget"), case-insensitively.
func mapVendorHeaders(headers []string, fields []VendorField) []string {
	known := make(map[string]string, len(fields)*2)
	for _, f := range fields {
		known[strings.ToLower(f.Key)] = f.Key
		known[strings.ToLower(f.Label)] = f.Key
	}

	mapped := make([]string, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		norm = strings.TrimSpace(strings.TrimSuffix(norm, " *"))
		mapped[i] = known[norm]
	}
	return mapped
}

// ParseVendorFile parses and validates an uploaded vendor dataset
// (.csv or .xlsx). The whole-file shape is checked first; surviving rows
// are validated individually so the caller can show a per-row report.
func ParseVendorFile(file io.Reader, fileName string) (*ValidationResult, error) {
	fields := VendorTemplateFields()

	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseVendorCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseVendorExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	columnKeys := mapVendorHeaders(headers, fields)

	// All required columns must be present before looking at any row.
	present := make(map[string]bool, len(columnKeys))
	for _, key := range columnKeys {
		if key != "" {
			present[key] = true
		}
	}
	var missing []string
	for _, f := range fields {
		if f.Required && !present[f.Key] {
			missing = append(missing, f.Label)
		}
	}
	if len(missing) > 0 {
		return nil, &MalformedDatasetError{
			Reason: "missing required columns: " + strings.Join(missing, ", "),
		}
	}

	result := &ValidationResult{
		TotalRows:  len(dataRows),
		FileName:   fileName,
		ParsedRows: make([]map[string]string, 0, len(dataRows)),
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		rowData := make(map[string]string)

		for colIdx, key := range columnKeys {
			if key == "" {
				continue
			}
			value := ""
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			rowData[key] = value
		}

		rowErrors := validateVendorRow(rowNum, rowData, fields)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
		}
		result.ParsedRows = append(result.ParsedRows, rowData)
	}

	errorRowSet := make(map[int]bool)
	for _, e := range result.Errors {
		errorRowSet[e.Row] = true
	}
	result.ErrorRows = len(errorRowSet)
	result.ValidRows = result.TotalRows - result.ErrorRows

	return result, nil
}

// validateVendorRow checks required fields and field formats for one row.
func validateVendorRow(rowNum int, data map[string]string, fields []VendorField) []ValidationError {
	var errs []ValidationError

	for _, f := range fields {
		if f.Required && data[f.Key] == "" {
			errs = append(errs, ValidationError{
				Row:     rowNum,
				Field:   f.Label,
				Message: fmt.Sprintf("%s is required", f.Label),
			})
		}
	}

	if v := data["rating"]; v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil || rating < 0 || rating > 5 {
			errs = append(errs, ValidationError{
				Row: rowNum, Field: "Rating",
				Message: "Rating must be a number between 0 and 5",
			})
		}
	}

	minBudget, minOK := parseBudget(data["min_budget"])
	maxBudget, maxOK := parseBudget(data["max_budget"])
	if data["min_budget"] != "" && !minOK {
		errs = append(errs, ValidationError{
			Row: rowNum, Field: "Min Budget",
			Message: "Min Budget must be a non-negative whole number",
		})
	}
	if data["max_budget"] != "" && !maxOK {
		errs = append(errs, ValidationError{
			Row: rowNum, Field: "Max Budget",
			Message: "Max Budget must be a non-negative whole number",
		})
	}
	if minOK && maxOK && minBudget > maxBudget {
		errs = append(errs, ValidationError{
			Row: rowNum, Field: "Min Budget",
			Message: "Min Budget cannot exceed Max Budget",
		})
	}

	if v := data["contact"]; v != "" && !ValidateContact(v) {
		errs = append(errs, ValidationError{
			Row: rowNum, Field: "Contact",
			Message: "Contact must be a 10-digit mobile number or an email address",
		})
	}

	return errs
}

func parseBudget(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// VendorFromRow converts a validated row into a typed Vendor.
func VendorFromRow(row map[string]string) Vendor {
	rating, _ := strconv.ParseFloat(row["rating"], 64)
	minBudget, _ := strconv.Atoi(row["min_budget"])
	maxBudget, _ := strconv.Atoi(row["max_budget"])

	return Vendor{
		Name:       row["name"],
		City:       row["city"],
		EventTypes: SplitEventTypes(row["event_types"]),
		Rating:     rating,
		MinBudget:  minBudget,
		MaxBudget:  maxBudget,
		Contact:    row["contact"],
	}
}

// SplitEventTypes splits the dataset's comma-separated event_types column
// into a trimmed list.
func SplitEventTypes(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// VendorFromRecord converts a vendors collection record into a Vendor.
func VendorFromRecord(rec *core.Record) Vendor {
	return Vendor{
		ID:         rec.Id,
		Name:       rec.GetString("name"),
		City:       rec.GetString("city"),
		EventTypes: SplitEventTypes(rec.GetString("event_types")),
		Rating:     rec.GetFloat("rating"),
		MinBudget:  rec.GetInt("min_budget"),
		MaxBudget:  rec.GetInt("max_budget"),
		Contact:    rec.GetString("contact"),
	}
}

// VendorsFromRecords converts vendors collection records into Vendors,
// keeping record order.
func VendorsFromRecords(records []*core.Record) []Vendor {
	vendors := make([]Vendor, 0, len(records))
	for _, rec := range records {
		vendors = append(vendors, VendorFromRecord(rec))
	}
	return vendors
}

// CommitResult summarizes a committed vendor import.
type CommitResult struct {
	Inserted int
	Errors   []ValidationError
}

// CommitVendorImport re-validates the parsed rows and inserts them into the
// vendors collection. Nothing is written if any row fails validation.
func CommitVendorImport(app *pocketbase.PocketBase, rows []map[string]string) (*CommitResult, error) {
	fields := VendorTemplateFields()

	var allErrors []ValidationError
	for i, row := range rows {
		allErrors = append(allErrors, validateVendorRow(i+2, row, fields)...)
	}
	if len(allErrors) > 0 {
		return &CommitResult{Errors: allErrors}, nil
	}

	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		return nil, fmt.Errorf("vendors collection not found: %w", err)
	}

	inserted := 0
	for _, row := range rows {
		rec := core.NewRecord(col)
		rec.Set("name", row["name"])
		rec.Set("city", row["city"])
		rec.Set("event_types", row["event_types"])

		rating, _ := strconv.ParseFloat(row["rating"], 64)
		minBudget, _ := strconv.Atoi(row["min_budget"])
		maxBudget, _ := strconv.Atoi(row["max_budget"])
		rec.Set("rating", rating)
		rec.Set("min_budget", minBudget)
		rec.Set("max_budget", maxBudget)
		rec.Set("contact", row["contact"])

		if err := app.Save(rec); err != nil {
			return nil, fmt.Errorf("save vendor %q: %w", row["name"], err)
		}
		inserted++
	}

	return &CommitResult{Inserted: inserted}, nil
}

// GenerateErrorReport creates a downloadable .xlsx file from validation errors.
func GenerateErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := strconv.Itoa(i + 2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}
