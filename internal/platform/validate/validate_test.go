package validate

import (
	"errors"
	"testing"
)

func TestCedula_Valid(t *testing.T) {
	for _, cedula := range []string{"1710034065", "0926687856", "1713175071"} {
		if err := Cedula(cedula); err != nil {
			t.Errorf("Cedula(%q) unexpected error: %v", cedula, err)
		}
	}
}

func TestCedula_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		cedula string
	}{
		{"too short", "171003406"},
		{"too long", "17100340655"},
		{"empty", ""},
		{"letters", "17100A4065"},
		{"bad checksum", "1710034066"},
		{"unicode digits", "١٧١٠٠٣٤٠٦٥"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Cedula(tc.cedula)
			if err == nil {
				t.Fatalf("Cedula(%q) expected error", tc.cedula)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestDate(t *testing.T) {
	got, err := Date("2025-06-15")
	if err != nil {
		t.Fatalf("Date() error: %v", err)
	}
	if got != "2025-06-15" {
		t.Errorf("expected 2025-06-15, got %s", got)
	}

	for _, bad := range []string{"15-06-2025", "2025/06/15", "2025-02-30", "junk", ""} {
		if _, err := Date(bad); !errors.Is(err, ErrInvalid) {
			t.Errorf("Date(%q) expected ErrInvalid, got %v", bad, err)
		}
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:30", "09:30:00"},
		{"09:30:00", "09:30:00"},
		{"23:59:59", "23:59:59"},
		{"00:00", "00:00:00"},
	}
	for _, tc := range cases {
		got, err := Clock(tc.in)
		if err != nil {
			t.Fatalf("Clock(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Clock(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"25:00", "9:30", "09:61", "junk", ""} {
		if _, err := Clock(bad); !errors.Is(err, ErrInvalid) {
			t.Errorf("Clock(%q) expected ErrInvalid, got %v", bad, err)
		}
	}
}
