package vnstock

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"vnstock_api/internal/platform/externalapi/vnstock/dto"
	"vnstock_api/internal/shared/clock"
)

// dateColumns are tried, in order, when a table carries its dates as a
// column instead of the index.
var dateColumns = []string{"time", "tradingDate", "date"}

// dateLayouts are the textual date forms the bridge is known to emit.
var dateLayouts = []string{
	clock.DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000",
	time.RFC3339Nano,
}

// table gives column-name access to a SplitTable.
type table struct {
	cols  map[string]int
	index []json.RawMessage
	rows  [][]json.RawMessage
}

func newTable(t dto.SplitTable) (*table, error) {
	if len(t.Index) > 0 && len(t.Index) != len(t.Data) {
		return nil, fmt.Errorf("index has %d entries for %d rows", len(t.Index), len(t.Data))
	}
	cols := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		cols[c] = i
	}
	return &table{cols: cols, index: t.Index, rows: t.Data}, nil
}

// Len returns the number of rows.
func (t *table) Len() int {
	return len(t.rows)
}

// raw returns the cell at (row, col). A missing column or a short row
// reads as JSON null.
func (t *table) raw(row int, col string) json.RawMessage {
	i, ok := t.cols[col]
	if !ok || i >= len(t.rows[row]) {
		return nil
	}
	return t.rows[row][i]
}

// Float returns the numeric cell, or nil for null/NaN/missing.
func (t *table) Float(row int, col string) (*float64, error) {
	s, ok, err := scalar(t.raw(row, col))
	if err != nil || !ok {
		return nil, wrapParse(col, row, err)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, wrapParse(col, row, err)
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	return &f, nil
}

// Int returns the integer cell, or nil for null/NaN/missing.
// Float cells such as 1200.0 are truncated; values outside int64 are an error.
func (t *table) Int(row int, col string) (*int64, error) {
	s, ok, err := scalar(t.raw(row, col))
	if err != nil || !ok {
		return nil, wrapParse(col, row, err)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, wrapParse(col, row, err)
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, wrapParse(col, row, fmt.Errorf("value %s out of int64 range", s))
	}
	n := int64(f)
	return &n, nil
}

// String returns the text cell, or "" for null/missing.
func (t *table) String(row int, col string) (string, error) {
	s, _, err := scalar(t.raw(row, col))
	if err != nil {
		return "", wrapParse(col, row, err)
	}
	return s, nil
}

// Date returns the date of row, read from the index or from a date column.
func (t *table) Date(row int) (time.Time, error) {
	if len(t.index) > 0 {
		tm, err := parseDate(t.index[row])
		if err != nil {
			return time.Time{}, wrapParse("index", row, err)
		}
		return tm, nil
	}
	for _, c := range dateColumns {
		if _, ok := t.cols[c]; !ok {
			continue
		}
		tm, err := parseDate(t.raw(row, c))
		if err != nil {
			return time.Time{}, wrapParse(c, row, err)
		}
		return tm, nil
	}
	return time.Time{}, fmt.Errorf("row %d: no date index or column", row)
}

// requireFloat is Float for cells that must be present.
func (t *table) requireFloat(row int, col string) (float64, error) {
	f, err := t.Float(row, col)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, fmt.Errorf("missing %s at row %d", col, row)
	}
	return *f, nil
}

// requireInt is Int for cells that must be present.
func (t *table) requireInt(row int, col string) (int64, error) {
	n, err := t.Int(row, col)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, fmt.Errorf("missing %s at row %d", col, row)
	}
	return *n, nil
}

// scalar unquotes a raw JSON scalar. ok is false for null, empty and NaN text.
func scalar(raw json.RawMessage) (s string, ok bool, err error) {
	s = strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return "", false, nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "nan") {
			return "", false, nil
		}
		return s, true, nil
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return "", false, fmt.Errorf("unexpected JSON value %s", s)
	}
	return s, true, nil
}

// parseDate accepts the textual layouts above or epoch milliseconds.
func parseDate(raw json.RawMessage) (time.Time, error) {
	s, ok, err := scalar(raw)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	for _, layout := range dateLayouts {
		if tm, err := time.Parse(layout, s); err == nil {
			return tm, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func wrapParse(col string, row int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("parse %s at row %d: %w", col, row, err)
}
