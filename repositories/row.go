package repositories

import (
	"strconv"
	"time"
)

// Row is an untyped database row as returned by the driver. The coercion
// helpers absorb driver variance: lib/pq hands back []byte for text
// columns, int64 for integers and so on.
type Row map[string]any

func (r Row) Int(column string) int {
	switch v := r[column].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case []byte:
		n, _ := strconv.Atoi(string(v))
		return n
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

func (r Row) Int64(column string) int64 {
	return int64(r.Int(column))
}

func (r Row) String(column string) string {
	switch v := r[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

// StringPtr returns nil for NULL columns.
func (r Row) StringPtr(column string) *string {
	if r[column] == nil {
		return nil
	}
	s := r.String(column)
	return &s
}

func (r Row) Bool(column string) bool {
	switch v := r[column].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case []byte:
		return string(v) == "t" || string(v) == "true"
	case string:
		return v == "t" || v == "true"
	}
	return false
}

// TimePtr returns nil for NULL timestamp columns.
func (r Row) TimePtr(column string) *time.Time {
	switch v := r[column].(type) {
	case time.Time:
		return &v
	case []byte:
		return parseTime(string(v))
	case string:
		return parseTime(v)
	}
	return nil
}

func parseTime(s string) *time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999Z07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
