package physician

import (
	"context"

	"github.com/clinica/clinica/internal/platform/db"
)

var table = db.Table{
	Name:    "medico",
	IDField: "id",
	Fields:  []string{"nombres", "especialidad", "correo", "telefono"},
}

type PGRepository struct {
	store *db.Store
}

func NewPGRepository(store *db.Store) *PGRepository {
	return &PGRepository{store: store}
}

func fromRecord(rec db.Record) *Physician {
	return &Physician{
		ID:           rec.Int64("id"),
		Nombres:      rec.String("nombres"),
		Especialidad: rec.String("especialidad"),
		Correo:       rec.String("correo"),
		Telefono:     rec.String("telefono"),
	}
}

func fromRecords(recs []db.Record) []*Physician {
	out := make([]*Physician, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}

func (r *PGRepository) Create(ctx context.Context, p *Physician) (*Physician, error) {
	rec, err := r.store.Insert(ctx, table, map[string]any{
		"nombres":      p.Nombres,
		"especialidad": p.Especialidad,
		"correo":       p.Correo,
		"telefono":     p.Telefono,
	})
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) GetByID(ctx context.Context, id int64) (*Physician, error) {
	rec, err := r.store.GetByID(ctx, table, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) List(ctx context.Context, limit, offset int) ([]*Physician, error) {
	recs, err := r.store.GetAll(ctx, table, limit, offset)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) ListByEspecialidad(ctx context.Context, especialidad string, limit int) ([]*Physician, error) {
	recs, err := r.store.Search(ctx, table, map[string]any{"especialidad": especialidad}, limit)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) Update(ctx context.Context, id int64, fields map[string]any) (*Physician, error) {
	rec, err := r.store.Update(ctx, table, id, fields)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, table, id)
}
