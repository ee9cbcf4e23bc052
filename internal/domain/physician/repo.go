package physician

import "context"

type Repository interface {
	Create(ctx context.Context, p *Physician) (*Physician, error)
	GetByID(ctx context.Context, id int64) (*Physician, error)
	List(ctx context.Context, limit, offset int) ([]*Physician, error)
	ListByEspecialidad(ctx context.Context, especialidad string, limit int) ([]*Physician, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Physician, error)
	Delete(ctx context.Context, id int64) error
}
