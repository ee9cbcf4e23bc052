package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	List(ctx context.Context, limit, offset int) ([]*Appointment, error)
	ListByPatient(ctx context.Context, cedula string, limit int) ([]*Appointment, error)
	ListByFecha(ctx context.Context, fecha string, limit int) ([]*Appointment, error)
	// FindSlot returns the appointment holding (fecha, hora), or
	// db.ErrNotFound when the slot is free.
	FindSlot(ctx context.Context, fecha, hora string) (*Appointment, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Appointment, error)
	Delete(ctx context.Context, id int64) error
}
