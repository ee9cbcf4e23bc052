package consultation

import (
	"context"

	"github.com/clinica/clinica/internal/platform/db"
)

var table = db.Table{
	Name:    "consulta",
	IDField: "id",
	Fields:  []string{"fecha", "diagnostico", "tratamiento", "observaciones", "cedula_paciente", "cita_id"},
}

type PGRepository struct {
	store *db.Store
}

func NewPGRepository(store *db.Store) *PGRepository {
	return &PGRepository{store: store}
}

func fromRecord(rec db.Record) *Consultation {
	return &Consultation{
		ID:             rec.Int64("id"),
		Fecha:          rec.Date("fecha"),
		Diagnostico:    rec.String("diagnostico"),
		Tratamiento:    rec.String("tratamiento"),
		Observaciones:  rec.StringPtr("observaciones"),
		CedulaPaciente: rec.String("cedula_paciente"),
		CitaID:         rec.Int64Ptr("cita_id"),
	}
}

func fromRecords(recs []db.Record) []*Consultation {
	out := make([]*Consultation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}

func (r *PGRepository) Create(ctx context.Context, con *Consultation) (*Consultation, error) {
	fields := map[string]any{
		"fecha":           con.Fecha,
		"diagnostico":     con.Diagnostico,
		"tratamiento":     con.Tratamiento,
		"cedula_paciente": con.CedulaPaciente,
	}
	if con.Observaciones != nil {
		fields["observaciones"] = *con.Observaciones
	}
	if con.CitaID != nil {
		fields["cita_id"] = *con.CitaID
	}
	rec, err := r.store.Insert(ctx, table, fields)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) GetByID(ctx context.Context, id int64) (*Consultation, error) {
	rec, err := r.store.GetByID(ctx, table, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) List(ctx context.Context, limit, offset int) ([]*Consultation, error) {
	recs, err := r.store.GetAll(ctx, table, limit, offset)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) ListByPatient(ctx context.Context, cedula string, limit int) ([]*Consultation, error) {
	recs, err := r.store.Search(ctx, table, map[string]any{"cedula_paciente": cedula}, limit)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) Update(ctx context.Context, id int64, fields map[string]any) (*Consultation, error) {
	rec, err := r.store.Update(ctx, table, id, fields)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, table, id)
}
