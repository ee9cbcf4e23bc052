package invoice

import (
	"context"
	"fmt"
	"math"

	"github.com/clinica/clinica/internal/platform/validate"
)

// PatientDirectory reports patient registration, wired from the patient
// domain in main.
type PatientDirectory interface {
	Exists(ctx context.Context, cedula string) (bool, error)
}

// ConsultationResolver maps a consultation id to its patient's cedula
// so an invoice can only bill its own patient's consultation.
type ConsultationResolver interface {
	PatientCedula(ctx context.Context, consultaID int64) (string, error)
}

type Service struct {
	invoices      Repository
	patients      PatientDirectory
	consultations ConsultationResolver
}

func NewService(invoices Repository, patients PatientDirectory, consultations ConsultationResolver) *Service {
	return &Service{invoices: invoices, patients: patients, consultations: consultations}
}

func checkValor(valor float64) error {
	if valor <= 0 {
		return fmt.Errorf("%w: valor must be greater than zero", validate.ErrInvalid)
	}
	cents := valor * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9 {
		return fmt.Errorf("%w: valor allows at most two decimal places", validate.ErrInvalid)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, inv *Invoice) (*Invoice, error) {
	if err := validate.Cedula(inv.CedulaPaciente); err != nil {
		return nil, err
	}
	fecha, err := validate.Date(inv.Fecha)
	if err != nil {
		return nil, err
	}
	inv.Fecha = fecha
	if err := checkValor(inv.Valor); err != nil {
		return nil, err
	}
	if inv.Descripcion == "" {
		return nil, fmt.Errorf("%w: descripcion is required", validate.ErrInvalid)
	}

	exists, err := s.patients.Exists(ctx, inv.CedulaPaciente)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: paciente %s is not registered", validate.ErrInvalid, inv.CedulaPaciente)
	}

	if inv.ConsultaID != nil {
		owner, err := s.consultations.PatientCedula(ctx, *inv.ConsultaID)
		if err != nil {
			return nil, fmt.Errorf("consulta %d: %w", *inv.ConsultaID, err)
		}
		if owner != inv.CedulaPaciente {
			return nil, fmt.Errorf("%w: consulta %d belongs to another patient", validate.ErrInvalid, *inv.ConsultaID)
		}
	}

	return s.invoices.Create(ctx, inv)
}

func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Invoice, error) {
	return s.invoices.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, cedula string, limit int) ([]*Invoice, error) {
	if err := validate.Cedula(cedula); err != nil {
		return nil, err
	}
	return s.invoices.ListByPatient(ctx, cedula, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Invoice, error) {
	fields := map[string]any{}
	if in.Fecha != nil {
		fecha, err := validate.Date(*in.Fecha)
		if err != nil {
			return nil, err
		}
		fields["fecha"] = fecha
	}
	if in.Valor != nil {
		if err := checkValor(*in.Valor); err != nil {
			return nil, err
		}
		fields["valor"] = *in.Valor
	}
	if in.Descripcion != nil {
		if *in.Descripcion == "" {
			return nil, fmt.Errorf("%w: descripcion cannot be empty", validate.ErrInvalid)
		}
		fields["descripcion"] = *in.Descripcion
	}
	if len(fields) == 0 {
		return s.invoices.GetByID(ctx, id)
	}
	return s.invoices.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.invoices.Delete(ctx, id)
}
