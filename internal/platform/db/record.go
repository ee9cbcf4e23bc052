package db

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Record is one row as returned by the store: column name to the driver's
// native Go value. The typed accessors below absorb the pgx value shapes
// (time.Time for DATE, pgtype.Time for TIME, pgtype.Numeric for NUMERIC)
// so domain code never touches driver types.
type Record map[string]any

func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r Record) Int64(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}

// Int64Ptr returns nil for NULL columns, used for optional references.
func (r Record) Int64Ptr(key string) *int64 {
	if r[key] == nil {
		return nil
	}
	n := r.Int64(key)
	return &n
}

func (r Record) Bool(key string) bool {
	v, _ := r[key].(bool)
	return v
}

func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case pgtype.Numeric:
		f, err := v.Float64Value()
		if err != nil {
			return 0
		}
		return f.Float64
	default:
		return 0
	}
}

// Date renders a DATE column as YYYY-MM-DD.
func (r Record) Date(key string) string {
	switch v := r[key].(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case string:
		return v
	default:
		return ""
	}
}

// Clock renders a TIME column as HH:MM:SS.
func (r Record) Clock(key string) string {
	switch v := r[key].(type) {
	case pgtype.Time:
		us := v.Microseconds
		secs := us / 1e6
		return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
	case time.Time:
		return v.Format("15:04:05")
	case string:
		return v
	default:
		return ""
	}
}

// StringPtr returns nil for NULL columns, used for optional text fields.
func (r Record) StringPtr(key string) *string {
	if r[key] == nil {
		return nil
	}
	s := r.String(key)
	return &s
}
