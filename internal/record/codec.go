package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// FieldError reports a cell that made a row undecodable. The field name is
// the column header, so the message points at the spreadsheet column a user
// would need to fix.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Field, e.Reason)
}

func missingField(name string) *FieldError {
	return &FieldError{Field: name, Reason: "value is missing"}
}

func invalidField(name, raw string) *FieldError {
	return &FieldError{Field: name, Reason: fmt.Sprintf("unrecognized value %q", raw)}
}

// EncodeRow serializes r into one cell per column in the kind's header
// order. Nil entries stand for empty cells.
func EncodeRow(r Record) []any {
	ident := r.identity()
	fields := r.fields()

	row := make([]any, 0, len(fields)+3)
	row = append(row, ident.ID)
	row = append(row, fields...)
	row = append(row, stampCell(ident.CreatedAt), stampCell(ident.UpdatedAt))
	return row
}

// padRow widens row to at least width cells. Sheet readers drop trailing
// empty cells, so short rows are routine rather than corruption.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func cell(row []string, idx int) string {
	return strings.TrimSpace(row[idx])
}

func optCell(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func timeCell(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// stampCell keeps nanosecond precision so an update moments after
// creation still persists a strictly later instant.
func stampCell(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate decodes a date cell or user-supplied date string, trying the
// textual layouts first and then falling back to an Excel serial number,
// which is how natively formatted date cells surface when the sheet is
// read raw. All results are normalized to UTC.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func optTime(row []string, idx int) *time.Time {
	if t, ok := ParseDate(cell(row, idx)); ok {
		return &t
	}
	return nil
}

// timeOrNow is for mandatory timestamps: an unreadable cell degrades to the
// current time instead of failing the row.
func timeOrNow(row []string, idx int) time.Time {
	if t, ok := ParseDate(cell(row, idx)); ok {
		return t
	}
	return time.Now().UTC()
}
