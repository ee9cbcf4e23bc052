package consultation

import (
	"context"
	"fmt"

	"github.com/clinica/clinica/internal/platform/validate"
)

// PatientDirectory reports patient registration, wired from the patient
// domain in main.
type PatientDirectory interface {
	Exists(ctx context.Context, cedula string) (bool, error)
}

// AppointmentResolver maps an appointment id to its patient's cedula so
// a consultation can only be linked to that patient's own appointment.
type AppointmentResolver interface {
	PatientCedula(ctx context.Context, citaID int64) (string, error)
}

type Service struct {
	consultations Repository
	patients      PatientDirectory
	appointments  AppointmentResolver
}

func NewService(consultations Repository, patients PatientDirectory, appointments AppointmentResolver) *Service {
	return &Service{consultations: consultations, patients: patients, appointments: appointments}
}

func (s *Service) Create(ctx context.Context, con *Consultation) (*Consultation, error) {
	if err := validate.Cedula(con.CedulaPaciente); err != nil {
		return nil, err
	}
	fecha, err := validate.Date(con.Fecha)
	if err != nil {
		return nil, err
	}
	con.Fecha = fecha
	if con.Diagnostico == "" {
		return nil, fmt.Errorf("%w: diagnostico is required", validate.ErrInvalid)
	}
	if con.Tratamiento == "" {
		return nil, fmt.Errorf("%w: tratamiento is required", validate.ErrInvalid)
	}

	exists, err := s.patients.Exists(ctx, con.CedulaPaciente)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: paciente %s is not registered", validate.ErrInvalid, con.CedulaPaciente)
	}

	if con.CitaID != nil {
		owner, err := s.appointments.PatientCedula(ctx, *con.CitaID)
		if err != nil {
			return nil, fmt.Errorf("cita %d: %w", *con.CitaID, err)
		}
		if owner != con.CedulaPaciente {
			return nil, fmt.Errorf("%w: cita %d belongs to another patient", validate.ErrInvalid, *con.CitaID)
		}
	}

	return s.consultations.Create(ctx, con)
}

func (s *Service) Get(ctx context.Context, id int64) (*Consultation, error) {
	return s.consultations.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Consultation, error) {
	return s.consultations.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, cedula string, limit int) ([]*Consultation, error) {
	if err := validate.Cedula(cedula); err != nil {
		return nil, err
	}
	return s.consultations.ListByPatient(ctx, cedula, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Consultation, error) {
	fields := map[string]any{}
	if in.Fecha != nil {
		fecha, err := validate.Date(*in.Fecha)
		if err != nil {
			return nil, err
		}
		fields["fecha"] = fecha
	}
	if in.Diagnostico != nil {
		if *in.Diagnostico == "" {
			return nil, fmt.Errorf("%w: diagnostico cannot be empty", validate.ErrInvalid)
		}
		fields["diagnostico"] = *in.Diagnostico
	}
	if in.Tratamiento != nil {
		if *in.Tratamiento == "" {
			return nil, fmt.Errorf("%w: tratamiento cannot be empty", validate.ErrInvalid)
		}
		fields["tratamiento"] = *in.Tratamiento
	}
	if in.Observaciones != nil {
		fields["observaciones"] = *in.Observaciones
	}
	if len(fields) == 0 {
		return s.consultations.GetByID(ctx, id)
	}
	return s.consultations.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.consultations.Delete(ctx, id)
}

// PatientCedula resolves a consultation to its patient, for invoice
// ownership checks.
func (s *Service) PatientCedula(ctx context.Context, id int64) (string, error) {
	con, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return con.CedulaPaciente, nil
}
