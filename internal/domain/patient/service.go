package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinica/clinica/internal/platform/db"
	"github.com/clinica/clinica/internal/platform/validate"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) (*Patient, error) {
	if err := validate.Cedula(p.Cedula); err != nil {
		return nil, err
	}
	if p.Nombres == "" {
		return nil, fmt.Errorf("%w: nombres is required", validate.ErrInvalid)
	}
	created, err := s.patients.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create paciente %s: %w", p.Cedula, err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, cedula string) (*Patient, error) {
	if err := validate.Cedula(cedula); err != nil {
		return nil, err
	}
	return s.patients.GetByCedula(ctx, cedula)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, error) {
	return s.patients.List(ctx, limit, offset)
}

func (s *Service) Update(ctx context.Context, cedula string, in UpdateInput) (*Patient, error) {
	if err := validate.Cedula(cedula); err != nil {
		return nil, err
	}
	if in.Nombres != nil && *in.Nombres == "" {
		return nil, fmt.Errorf("%w: nombres cannot be empty", validate.ErrInvalid)
	}
	return s.patients.Update(ctx, cedula, in)
}

func (s *Service) Delete(ctx context.Context, cedula string) error {
	if err := validate.Cedula(cedula); err != nil {
		return err
	}
	return s.patients.Delete(ctx, cedula)
}

// Exists reports whether a patient with the cedula is registered.
func (s *Service) Exists(ctx context.Context, cedula string) (bool, error) {
	_, err := s.patients.GetByCedula(ctx, cedula)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
