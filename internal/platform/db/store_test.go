package db

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

var testTable = Table{
	Name:    "cita",
	IDField: "id",
	Fields:  []string{"id", "fecha", "hora", "motivo", "cedula_paciente", "agendada_por_medico"},
}

func TestBuildInsert(t *testing.T) {
	sql, args, err := buildInsert(testTable, map[string]any{
		"fecha": "2024-05-01",
		"hora":  "10:30:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `INSERT INTO cita (fecha, hora) VALUES ($1, $2) RETURNING *`
	if sql != want {
		t.Errorf("expected %q, got %q", want, sql)
	}
	if len(args) != 2 || args[0] != "2024-05-01" || args[1] != "10:30:00" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildInsert_RejectsUnknownField(t *testing.T) {
	_, _, err := buildInsert(testTable, map[string]any{"fecha; DROP TABLE cita": "x"})
	if !errors.Is(err, ErrBadField) {
		t.Errorf("expected ErrBadField, got %v", err)
	}
}

func TestBuildInsert_RejectsEmptyFields(t *testing.T) {
	_, _, err := buildInsert(testTable, map[string]any{})
	if !errors.Is(err, ErrBadField) {
		t.Errorf("expected ErrBadField for empty field set, got %v", err)
	}
}

func TestBuildUpdate(t *testing.T) {
	sql, args, err := buildUpdate(testTable, int64(7), map[string]any{
		"hora":   "11:00:00",
		"motivo": "control",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `UPDATE cita SET hora = $1, motivo = $2 WHERE id = $3 RETURNING *`
	if sql != want {
		t.Errorf("expected %q, got %q", want, sql)
	}
	if len(args) != 3 || args[2] != int64(7) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildUpdate_RejectsUnknownField(t *testing.T) {
	_, _, err := buildUpdate(testTable, 1, map[string]any{"password": "x"})
	if !errors.Is(err, ErrBadField) {
		t.Errorf("expected ErrBadField, got %v", err)
	}
}

func TestBuildSearch(t *testing.T) {
	sql, args, err := buildSearch(testTable, map[string]any{
		"cedula_paciente": "1710034065",
		"fecha":           "2024-05-01",
	}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `SELECT * FROM cita WHERE cedula_paciente = $1 AND fecha = $2 ORDER BY id LIMIT $3`
	if sql != want {
		t.Errorf("expected %q, got %q", want, sql)
	}
	if len(args) != 3 || args[2] != 50 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSearch_NoFiltersNoLimit(t *testing.T) {
	sql, args, err := buildSearch(testTable, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `SELECT * FROM cita ORDER BY id`
	if sql != want {
		t.Errorf("expected %q, got %q", want, sql)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildSearch_RejectsUnknownField(t *testing.T) {
	_, _, err := buildSearch(testTable, map[string]any{"1=1; --": "x"}, 0)
	if !errors.Is(err, ErrBadField) {
		t.Errorf("expected ErrBadField, got %v", err)
	}
}

func TestRecord_Accessors(t *testing.T) {
	rec := Record{
		"id":                  int64(3),
		"motivo":              "dolor de cabeza",
		"agendada_por_medico": true,
		"fecha":               time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		"hora":                pgtype.Time{Microseconds: (10*3600 + 30*60) * 1e6, Valid: true},
		"correo":              nil,
	}

	if rec.Int64("id") != 3 {
		t.Errorf("expected id 3, got %d", rec.Int64("id"))
	}
	if rec.String("motivo") != "dolor de cabeza" {
		t.Errorf("unexpected motivo: %q", rec.String("motivo"))
	}
	if !rec.Bool("agendada_por_medico") {
		t.Error("expected agendada_por_medico true")
	}
	if rec.Date("fecha") != "2024-05-01" {
		t.Errorf("expected 2024-05-01, got %q", rec.Date("fecha"))
	}
	if rec.Clock("hora") != "10:30:00" {
		t.Errorf("expected 10:30:00, got %q", rec.Clock("hora"))
	}
	if rec.StringPtr("correo") != nil {
		t.Error("expected nil for NULL column")
	}
	if rec.Int64Ptr("missing") != nil {
		t.Error("expected nil for absent column")
	}
}

func TestRecord_Numeric(t *testing.T) {
	var n pgtype.Numeric
	if err := n.Scan("45.50"); err != nil {
		t.Fatalf("scan numeric: %v", err)
	}
	rec := Record{"valor": n}
	if got := rec.Float("valor"); got != 45.5 {
		t.Errorf("expected 45.5, got %v", got)
	}
}
