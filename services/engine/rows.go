package engine

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// CollectRows drains rows into ordered column-name maps and closes them.
func CollectRows(rows *sql.Rows) ([]map[string]any, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	results := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = NormalizeValue(values[i])
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return results, nil
}

// NormalizeValue turns text-protocol byte slices into strings so rows marshal to
// readable JSON. Every other driver type is kept as is.
func NormalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// String reads a catalog column as text. Missing and NULL values are "".
func String(row map[string]any, key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// StringPtr is String but keeps NULL distinct from an empty string.
func StringPtr(row map[string]any, key string) *string {
	if row[key] == nil {
		return nil
	}
	s := String(row, key)
	return &s
}

// Bool reads boolean-ish catalog values: bool, integers, "1", "t", "true", "YES".
func Bool(row map[string]any, key string) bool {
	switch v := row[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case int64:
		return v != 0
	case int32:
		return v != 0
	case int:
		return v != 0
	case uint8:
		return v != 0
	default:
		switch strings.ToLower(strings.TrimSpace(String(row, key))) {
		case "1", "t", "true", "y", "yes", "on":
			return true
		}
		return false
	}
}

// Int64Ptr reads a numeric catalog value; NULL or unparsable values are nil.
func Int64Ptr(row map[string]any, key string) *int64 {
	var n int64
	switch v := row[key].(type) {
	case nil:
		return nil
	case int64:
		n = v
	case int32:
		n = int64(v)
	case int16:
		n = int64(v)
	case int:
		n = int64(v)
	case uint64:
		n = int64(v)
	case uint32:
		n = int64(v)
	case float64:
		n = int64(v)
	default:
		parsed, err := strconv.ParseInt(strings.TrimSpace(String(row, key)), 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	}
	return &n
}

// SplitList splits a comma-separated aggregate (string_agg, GROUP_CONCAT) into
// trimmed, non-empty items.
func SplitList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
