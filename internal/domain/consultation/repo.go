package consultation

import "context"

type Repository interface {
	Create(ctx context.Context, con *Consultation) (*Consultation, error)
	GetByID(ctx context.Context, id int64) (*Consultation, error)
	List(ctx context.Context, limit, offset int) ([]*Consultation, error)
	ListByPatient(ctx context.Context, cedula string, limit int) ([]*Consultation, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Consultation, error)
	Delete(ctx context.Context, id int64) error
}
