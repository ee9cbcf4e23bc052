package invoice

import (
	"context"

	"github.com/clinica/clinica/internal/platform/db"
)

var table = db.Table{
	Name:    "factura",
	IDField: "id",
	Fields:  []string{"fecha", "valor", "descripcion", "cedula_paciente", "consulta_id"},
}

type PGRepository struct {
	store *db.Store
}

func NewPGRepository(store *db.Store) *PGRepository {
	return &PGRepository{store: store}
}

func fromRecord(rec db.Record) *Invoice {
	return &Invoice{
		ID:             rec.Int64("id"),
		Fecha:          rec.Date("fecha"),
		Valor:          rec.Float("valor"),
		Descripcion:    rec.String("descripcion"),
		CedulaPaciente: rec.String("cedula_paciente"),
		ConsultaID:     rec.Int64Ptr("consulta_id"),
	}
}

func fromRecords(recs []db.Record) []*Invoice {
	out := make([]*Invoice, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}

func (r *PGRepository) Create(ctx context.Context, inv *Invoice) (*Invoice, error) {
	fields := map[string]any{
		"fecha":           inv.Fecha,
		"valor":           inv.Valor,
		"descripcion":     inv.Descripcion,
		"cedula_paciente": inv.CedulaPaciente,
	}
	if inv.ConsultaID != nil {
		fields["consulta_id"] = *inv.ConsultaID
	}
	rec, err := r.store.Insert(ctx, table, fields)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	rec, err := r.store.GetByID(ctx, table, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) List(ctx context.Context, limit, offset int) ([]*Invoice, error) {
	recs, err := r.store.GetAll(ctx, table, limit, offset)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) ListByPatient(ctx context.Context, cedula string, limit int) ([]*Invoice, error) {
	recs, err := r.store.Search(ctx, table, map[string]any{"cedula_paciente": cedula}, limit)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) Update(ctx context.Context, id int64, fields map[string]any) (*Invoice, error) {
	rec, err := r.store.Update(ctx, table, id, fields)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, table, id)
}
