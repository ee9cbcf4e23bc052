package validate

import (
	"fmt"
	"time"
)

// Date parses a YYYY-MM-DD string and returns it canonicalized. Real
// calendar dates only; time.Parse rejects things like 2025-02-30.
func Date(s string) (string, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("%w: fecha must be YYYY-MM-DD", ErrInvalid)
	}
	return t.Format("2006-01-02"), nil
}

// Clock parses HH:MM or HH:MM:SS and returns the canonical HH:MM:SS
// form, so "09:30" and "09:30:00" compare equal in conflict checks.
func Clock(s string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("%w: hora must be HH:MM or HH:MM:SS", ErrInvalid)
}
