package patient

import (
	"context"

	"github.com/clinica/clinica/internal/platform/db"
)

var table = db.Table{
	Name:    "paciente",
	IDField: "cedula",
	Fields:  []string{"cedula", "nombres", "correo", "telefono"},
}

type PGRepository struct {
	store *db.Store
}

func NewPGRepository(store *db.Store) *PGRepository {
	return &PGRepository{store: store}
}

func fromRecord(rec db.Record) *Patient {
	return &Patient{
		Cedula:   rec.String("cedula"),
		Nombres:  rec.String("nombres"),
		Correo:   rec.String("correo"),
		Telefono: rec.String("telefono"),
	}
}

func (r *PGRepository) Create(ctx context.Context, p *Patient) (*Patient, error) {
	rec, err := r.store.Insert(ctx, table, map[string]any{
		"cedula":   p.Cedula,
		"nombres":  p.Nombres,
		"correo":   p.Correo,
		"telefono": p.Telefono,
	})
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) GetByCedula(ctx context.Context, cedula string) (*Patient, error) {
	rec, err := r.store.GetByID(ctx, table, cedula)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) List(ctx context.Context, limit, offset int) ([]*Patient, error) {
	recs, err := r.store.GetAll(ctx, table, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*Patient, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (r *PGRepository) Update(ctx context.Context, cedula string, in UpdateInput) (*Patient, error) {
	fields := map[string]any{}
	if in.Nombres != nil {
		fields["nombres"] = *in.Nombres
	}
	if in.Correo != nil {
		fields["correo"] = *in.Correo
	}
	if in.Telefono != nil {
		fields["telefono"] = *in.Telefono
	}
	if len(fields) == 0 {
		return r.GetByCedula(ctx, cedula)
	}
	rec, err := r.store.Update(ctx, table, cedula, fields)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) Delete(ctx context.Context, cedula string) error {
	return r.store.Delete(ctx, table, cedula)
}
