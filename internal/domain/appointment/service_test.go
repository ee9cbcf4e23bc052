package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/clinica/clinica/internal/platform/db"
	"github.com/clinica/clinica/internal/platform/validate"
)

type mockRepo struct {
	appointments map[int64]*Appointment
	nextID       int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{appointments: make(map[int64]*Appointment), nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) (*Appointment, error) {
	for _, existing := range m.appointments {
		if existing.Fecha == a.Fecha && existing.Hora == a.Hora {
			return nil, fmt.Errorf("%w: cita_fecha_hora_key", db.ErrConflict)
		}
	}
	cp := *a
	cp.ID = m.nextID
	m.nextID++
	m.appointments[cp.ID] = &cp
	return &cp, nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return a, nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Appointment, error) {
	out := make([]*Appointment, 0, len(m.appointments))
	for _, a := range m.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, cedula string, limit int) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		if a.CedulaPaciente == cedula {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByFecha(_ context.Context, fecha string, limit int) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		if a.Fecha == fecha {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) FindSlot(_ context.Context, fecha, hora string) (*Appointment, error) {
	for _, a := range m.appointments {
		if a.Fecha == fecha && a.Hora == hora {
			return a, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockRepo) Update(_ context.Context, id int64, fields map[string]any) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	if v, ok := fields["fecha"]; ok {
		a.Fecha = v.(string)
	}
	if v, ok := fields["hora"]; ok {
		a.Hora = v.(string)
	}
	if v, ok := fields["motivo"]; ok {
		a.Motivo = v.(string)
	}
	return a, nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.appointments[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.appointments, id)
	return nil
}

type mockDirectory struct {
	registered map[string]bool
}

func newMockDirectory(cedulas ...string) *mockDirectory {
	d := &mockDirectory{registered: make(map[string]bool)}
	for _, c := range cedulas {
		d.registered[c] = true
	}
	return d
}

func (d *mockDirectory) Exists(_ context.Context, cedula string) (bool, error) {
	return d.registered[cedula], nil
}

func (d *mockDirectory) Register(_ context.Context, cedula, nombres, correo, telefono string) error {
	d.registered[cedula] = true
	return nil
}

func TestService_Reserve_NewPatient(t *testing.T) {
	repo := newMockRepo()
	dir := newMockDirectory()
	svc := NewService(repo, dir)

	a, err := svc.Reserve(context.Background(), ReservationInput{
		Cedula:  "1710034065",
		Nombres: "Maria Perez",
		Fecha:   "2026-09-15",
		Hora:    "09:30",
		Motivo:  "chequeo general",
	})
	if err != nil {
		t.Fatalf("Reserve() error: %v", err)
	}
	if a.AgendadaPorMedico {
		t.Error("self-booked appointment must not be flagged as physician-scheduled")
	}
	if a.Hora != "09:30:00" {
		t.Errorf("hora not canonicalized: %s", a.Hora)
	}
	if !dir.registered["1710034065"] {
		t.Error("patient was not registered during reservation")
	}
}

func TestService_Reserve_ExistingPatientSkipsRegistration(t *testing.T) {
	svc := NewService(newMockRepo(), newMockDirectory("1710034065"))

	// Nombres omitted: only required when the patient is new.
	_, err := svc.Reserve(context.Background(), ReservationInput{
		Cedula: "1710034065",
		Fecha:  "2026-09-15",
		Hora:   "10:00",
		Motivo: "control",
	})
	if err != nil {
		t.Fatalf("Reserve() error: %v", err)
	}
}

func TestService_Reserve_NewPatientNeedsNombres(t *testing.T) {
	svc := NewService(newMockRepo(), newMockDirectory())

	_, err := svc.Reserve(context.Background(), ReservationInput{
		Cedula: "1710034065",
		Fecha:  "2026-09-15",
		Hora:   "10:00",
		Motivo: "control",
	})
	if !errors.Is(err, validate.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestService_Reserve_SlotTaken(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, newMockDirectory("1710034065", "0926687856"))

	first := ReservationInput{Cedula: "1710034065", Fecha: "2026-09-15", Hora: "09:30", Motivo: "chequeo"}
	if _, err := svc.Reserve(context.Background(), first); err != nil {
		t.Fatalf("first Reserve() error: %v", err)
	}

	// Same slot spelled HH:MM:SS must still collide.
	second := ReservationInput{Cedula: "0926687856", Fecha: "2026-09-15", Hora: "09:30:00", Motivo: "control"}
	if _, err := svc.Reserve(context.Background(), second); !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestService_Reserve_BadInput(t *testing.T) {
	svc := NewService(newMockRepo(), newMockDirectory("1710034065"))

	cases := []struct {
		name string
		in   ReservationInput
	}{
		{"bad cedula", ReservationInput{Cedula: "123", Fecha: "2026-09-15", Hora: "09:30", Motivo: "x"}},
		{"bad fecha", ReservationInput{Cedula: "1710034065", Fecha: "15/09/2026", Hora: "09:30", Motivo: "x"}},
		{"bad hora", ReservationInput{Cedula: "1710034065", Fecha: "2026-09-15", Hora: "25:00", Motivo: "x"}},
		{"missing motivo", ReservationInput{Cedula: "1710034065", Fecha: "2026-09-15", Hora: "09:30"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Reserve(context.Background(), tc.in); !errors.Is(err, validate.ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestService_Schedule(t *testing.T) {
	svc := NewService(newMockRepo(), newMockDirectory("1710034065"))

	a, err := svc.Schedule(context.Background(), Input{
		Fecha:          "2026-09-16",
		Hora:           "11:00",
		Motivo:         "seguimiento",
		CedulaPaciente: "1710034065",
	})
	if err != nil {
		t.Fatalf("Schedule() error: %v", err)
	}
	if !a.AgendadaPorMedico {
		t.Error("physician-scheduled appointment must be flagged")
	}
}

func TestService_Schedule_UnregisteredPatient(t *testing.T) {
	svc := NewService(newMockRepo(), newMockDirectory())

	_, err := svc.Schedule(context.Background(), Input{
		Fecha:          "2026-09-16",
		Hora:           "11:00",
		Motivo:         "seguimiento",
		CedulaPaciente: "1710034065",
	})
	if !errors.Is(err, validate.ErrInvalid) {
		t.Errorf("expected ErrInvalid for unregistered patient, got %v", err)
	}
}

func TestService_Update_MoveToTakenSlot(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, newMockDirectory("1710034065", "0926687856"))

	a1, err := svc.Schedule(context.Background(), Input{
		Fecha: "2026-09-16", Hora: "11:00", Motivo: "a", CedulaPaciente: "1710034065",
	})
	if err != nil {
		t.Fatalf("Schedule() error: %v", err)
	}
	a2, err := svc.Schedule(context.Background(), Input{
		Fecha: "2026-09-16", Hora: "12:00", Motivo: "b", CedulaPaciente: "0926687856",
	})
	if err != nil {
		t.Fatalf("Schedule() error: %v", err)
	}

	hora := "11:00"
	if _, err := svc.Update(context.Background(), a2.ID, UpdateInput{Hora: &hora}); !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict moving onto taken slot, got %v", err)
	}

	// Re-submitting an appointment's own slot is not a conflict.
	own := "11:00:00"
	if _, err := svc.Update(context.Background(), a1.ID, UpdateInput{Hora: &own}); err != nil {
		t.Errorf("own slot should not conflict: %v", err)
	}
}

func TestService_Update_NoFields(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, newMockDirectory("1710034065"))

	a, err := svc.Schedule(context.Background(), Input{
		Fecha: "2026-09-16", Hora: "11:00", Motivo: "a", CedulaPaciente: "1710034065",
	})
	if err != nil {
		t.Fatalf("Schedule() error: %v", err)
	}

	got, err := svc.Update(context.Background(), a.ID, UpdateInput{})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got.Motivo != "a" {
		t.Errorf("empty update changed the row: %+v", got)
	}
}

func TestService_PatientCedula(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, newMockDirectory("1710034065"))

	a, err := svc.Schedule(context.Background(), Input{
		Fecha: "2026-09-16", Hora: "11:00", Motivo: "a", CedulaPaciente: "1710034065",
	})
	if err != nil {
		t.Fatalf("Schedule() error: %v", err)
	}

	cedula, err := svc.PatientCedula(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("PatientCedula() error: %v", err)
	}
	if cedula != "1710034065" {
		t.Errorf("expected 1710034065, got %s", cedula)
	}

	if _, err := svc.PatientCedula(context.Background(), 999); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
