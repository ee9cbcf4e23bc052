package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) (*Patient, error)
	GetByCedula(ctx context.Context, cedula string) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, error)
	Update(ctx context.Context, cedula string, in UpdateInput) (*Patient, error)
	Delete(ctx context.Context, cedula string) error
}
