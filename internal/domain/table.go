package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Table is an ordered tabular result set: a fixed column list plus rows
// mapping column name to value (number, string, time or nil). It has no
// persistent identity; one is built per query and discarded after render.
type Table struct {
	Columns []string
	Rows    []map[string]interface{}
}

// NewTable builds a Table with an explicit column order.
func NewTable(columns []string, rows []map[string]interface{}) Table {
	return Table{Columns: columns, Rows: rows}
}

// NewTableFromRows derives the column set from the rows themselves.
// JSON objects do not preserve key order, so columns are sorted
// alphabetically to keep selection deterministic.
func NewTableFromRows(rows []map[string]interface{}) Table {
	seen := make(map[string]struct{})
	var columns []string
	for _, row := range rows {
		for k := range row {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return Table{Columns: columns, Rows: rows}
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// NumericValue coerces a cell to float64. nil is a null, not a number.
func NumericValue(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// IsNumericColumn reports whether every non-null value in the column
// parses as a number and at least one non-null value exists. Coercion
// failures never raise; the column just stays non-numeric.
func (t Table) IsNumericColumn(name string) bool {
	nonNull := 0
	for _, row := range t.Rows {
		v, present := row[name]
		if !present || v == nil {
			continue
		}
		if _, ok := NumericValue(v); !ok {
			return false
		}
		nonNull++
	}
	return nonNull > 0
}

// NumericColumns returns the numeric columns in table column order.
func (t Table) NumericColumns() []string {
	var numeric []string
	for _, c := range t.Columns {
		if t.IsNumericColumn(c) {
			numeric = append(numeric, c)
		}
	}
	return numeric
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// ParseDateValue interprets a cell as a calendar date. Numbers are
// accepted as Unix seconds, mirroring the lenient parser the selector
// heuristic was tuned against.
func ParseDateValue(v interface{}) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	default:
		if f, ok := NumericValue(v); ok {
			return time.Unix(int64(f), 0).UTC(), true
		}
		return time.Time{}, false
	}
}

// DetectDateColumn finds a date-like column: the name contains "date"
// (case-insensitive) and either every non-null value parses strictly, or
// at least a quarter of the rows parse leniently.
func (t Table) DetectDateColumn() (string, bool) {
	for _, c := range t.Columns {
		if !strings.Contains(strings.ToLower(c), "date") {
			continue
		}

		parsed, nonNull := 0, 0
		for _, row := range t.Rows {
			v, present := row[c]
			if !present || v == nil {
				continue
			}
			nonNull++
			if _, ok := ParseDateValue(v); ok {
				parsed++
			}
		}

		if nonNull > 0 && parsed == nonNull {
			return c, true
		}
		threshold := len(t.Rows) / 4
		if threshold < 1 {
			threshold = 1
		}
		if parsed >= threshold {
			return c, true
		}
	}
	return "", false
}
