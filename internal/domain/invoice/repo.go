package invoice

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Invoice) (*Invoice, error)
	GetByID(ctx context.Context, id int64) (*Invoice, error)
	List(ctx context.Context, limit, offset int) ([]*Invoice, error)
	ListByPatient(ctx context.Context, cedula string, limit int) ([]*Invoice, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
}
