package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinica/clinica/internal/platform/db"
	"github.com/clinica/clinica/internal/platform/validate"
)

// PatientDirectory is the slice of the patient domain the booking flow
// needs. Wired in main so the packages stay decoupled.
type PatientDirectory interface {
	Exists(ctx context.Context, cedula string) (bool, error)
	Register(ctx context.Context, cedula, nombres, correo, telefono string) error
}

type Service struct {
	appointments Repository
	patients     PatientDirectory
}

func NewService(appointments Repository, patients PatientDirectory) *Service {
	return &Service{appointments: appointments, patients: patients}
}

// Reserve is the public self-booking flow: unknown patients are
// registered first, then the appointment is created with
// agendada_por_medico=false.
func (s *Service) Reserve(ctx context.Context, in ReservationInput) (*Appointment, error) {
	if err := validate.Cedula(in.Cedula); err != nil {
		return nil, err
	}
	fecha, hora, err := canonicalSlot(in.Fecha, in.Hora)
	if err != nil {
		return nil, err
	}
	if in.Motivo == "" {
		return nil, fmt.Errorf("%w: motivo is required", validate.ErrInvalid)
	}

	exists, err := s.patients.Exists(ctx, in.Cedula)
	if err != nil {
		return nil, err
	}
	if !exists {
		if in.Nombres == "" {
			return nil, fmt.Errorf("%w: nombres is required for new patients", validate.ErrInvalid)
		}
		if err := s.patients.Register(ctx, in.Cedula, in.Nombres, in.Correo, in.Telefono); err != nil {
			return nil, err
		}
	}

	return s.book(ctx, &Appointment{
		Fecha:             fecha,
		Hora:              hora,
		Motivo:            in.Motivo,
		CedulaPaciente:    in.Cedula,
		AgendadaPorMedico: false,
	})
}

// Schedule is the physician-side booking flow; the patient must already
// be registered.
func (s *Service) Schedule(ctx context.Context, in Input) (*Appointment, error) {
	if err := validate.Cedula(in.CedulaPaciente); err != nil {
		return nil, err
	}
	fecha, hora, err := canonicalSlot(in.Fecha, in.Hora)
	if err != nil {
		return nil, err
	}
	if in.Motivo == "" {
		return nil, fmt.Errorf("%w: motivo is required", validate.ErrInvalid)
	}

	exists, err := s.patients.Exists(ctx, in.CedulaPaciente)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: paciente %s is not registered", validate.ErrInvalid, in.CedulaPaciente)
	}

	return s.book(ctx, &Appointment{
		Fecha:             fecha,
		Hora:              hora,
		Motivo:            in.Motivo,
		CedulaPaciente:    in.CedulaPaciente,
		AgendadaPorMedico: true,
	})
}

// book checks the slot for a friendly error before inserting. The
// unique index on (fecha, hora) still backs the invariant under
// concurrent inserts; a race past this check surfaces as ErrConflict
// from Create.
func (s *Service) book(ctx context.Context, a *Appointment) (*Appointment, error) {
	if _, err := s.appointments.FindSlot(ctx, a.Fecha, a.Hora); err == nil {
		return nil, fmt.Errorf("%w: slot %s %s is already taken", db.ErrConflict, a.Fecha, a.Hora)
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}
	created, err := s.appointments.Create(ctx, a)
	if err != nil {
		if errors.Is(err, db.ErrConflict) {
			return nil, fmt.Errorf("%w: slot %s %s is already taken", db.ErrConflict, a.Fecha, a.Hora)
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Appointment, error) {
	return s.appointments.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, cedula string, limit int) ([]*Appointment, error) {
	if err := validate.Cedula(cedula); err != nil {
		return nil, err
	}
	return s.appointments.ListByPatient(ctx, cedula, limit)
}

func (s *Service) ListByFecha(ctx context.Context, fecha string, limit int) ([]*Appointment, error) {
	canonical, err := validate.Date(fecha)
	if err != nil {
		return nil, err
	}
	return s.appointments.ListByFecha(ctx, canonical, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Appointment, error) {
	existing, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fecha, hora := existing.Fecha, existing.Hora
	fields := map[string]any{}
	if in.Fecha != nil {
		if fecha, err = validate.Date(*in.Fecha); err != nil {
			return nil, err
		}
		fields["fecha"] = fecha
	}
	if in.Hora != nil {
		if hora, err = validate.Clock(*in.Hora); err != nil {
			return nil, err
		}
		fields["hora"] = hora
	}
	if in.Motivo != nil {
		if *in.Motivo == "" {
			return nil, fmt.Errorf("%w: motivo cannot be empty", validate.ErrInvalid)
		}
		fields["motivo"] = *in.Motivo
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if fecha != existing.Fecha || hora != existing.Hora {
		holder, err := s.appointments.FindSlot(ctx, fecha, hora)
		if err == nil && holder.ID != id {
			return nil, fmt.Errorf("%w: slot %s %s is already taken", db.ErrConflict, fecha, hora)
		}
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			return nil, err
		}
	}

	return s.appointments.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.appointments.Delete(ctx, id)
}

// PatientCedula resolves an appointment to its patient, for
// cross-domain ownership checks.
func (s *Service) PatientCedula(ctx context.Context, id int64) (string, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return a.CedulaPaciente, nil
}

func canonicalSlot(fecha, hora string) (string, string, error) {
	f, err := validate.Date(fecha)
	if err != nil {
		return "", "", err
	}
	h, err := validate.Clock(hora)
	if err != nil {
		return "", "", err
	}
	return f, h, nil
}
