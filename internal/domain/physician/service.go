package physician

import (
	"context"
	"fmt"

	"github.com/clinica/clinica/internal/platform/validate"
)

type Service struct {
	physicians Repository
}

func NewService(physicians Repository) *Service {
	return &Service{physicians: physicians}
}

func (s *Service) Create(ctx context.Context, p *Physician) (*Physician, error) {
	if p.Nombres == "" {
		return nil, fmt.Errorf("%w: nombres is required", validate.ErrInvalid)
	}
	if p.Especialidad == "" {
		return nil, fmt.Errorf("%w: especialidad is required", validate.ErrInvalid)
	}
	return s.physicians.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Physician, error) {
	return s.physicians.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Physician, error) {
	return s.physicians.List(ctx, limit, offset)
}

func (s *Service) ListByEspecialidad(ctx context.Context, especialidad string, limit int) ([]*Physician, error) {
	if especialidad == "" {
		return nil, fmt.Errorf("%w: especialidad is required", validate.ErrInvalid)
	}
	return s.physicians.ListByEspecialidad(ctx, especialidad, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Physician, error) {
	fields := map[string]any{}
	if in.Nombres != nil {
		if *in.Nombres == "" {
			return nil, fmt.Errorf("%w: nombres cannot be empty", validate.ErrInvalid)
		}
		fields["nombres"] = *in.Nombres
	}
	if in.Especialidad != nil {
		if *in.Especialidad == "" {
			return nil, fmt.Errorf("%w: especialidad cannot be empty", validate.ErrInvalid)
		}
		fields["especialidad"] = *in.Especialidad
	}
	if in.Correo != nil {
		fields["correo"] = *in.Correo
	}
	if in.Telefono != nil {
		fields["telefono"] = *in.Telefono
	}
	if len(fields) == 0 {
		return s.physicians.GetByID(ctx, id)
	}
	return s.physicians.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.physicians.Delete(ctx, id)
}
