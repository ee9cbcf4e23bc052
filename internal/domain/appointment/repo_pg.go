package appointment

import (
	"context"

	"github.com/clinica/clinica/internal/platform/db"
)

var table = db.Table{
	Name:    "cita",
	IDField: "id",
	Fields:  []string{"fecha", "hora", "motivo", "cedula_paciente", "agendada_por_medico"},
}

type PGRepository struct {
	store *db.Store
}

func NewPGRepository(store *db.Store) *PGRepository {
	return &PGRepository{store: store}
}

func fromRecord(rec db.Record) *Appointment {
	return &Appointment{
		ID:                rec.Int64("id"),
		Fecha:             rec.Date("fecha"),
		Hora:              rec.Clock("hora"),
		Motivo:            rec.String("motivo"),
		CedulaPaciente:    rec.String("cedula_paciente"),
		AgendadaPorMedico: rec.Bool("agendada_por_medico"),
	}
}

func fromRecords(recs []db.Record) []*Appointment {
	out := make([]*Appointment, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}

func (r *PGRepository) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	rec, err := r.store.Insert(ctx, table, map[string]any{
		"fecha":               a.Fecha,
		"hora":                a.Hora,
		"motivo":              a.Motivo,
		"cedula_paciente":     a.CedulaPaciente,
		"agendada_por_medico": a.AgendadaPorMedico,
	})
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	rec, err := r.store.GetByID(ctx, table, id)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) List(ctx context.Context, limit, offset int) ([]*Appointment, error) {
	recs, err := r.store.GetAll(ctx, table, limit, offset)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) ListByPatient(ctx context.Context, cedula string, limit int) ([]*Appointment, error) {
	recs, err := r.store.Search(ctx, table, map[string]any{"cedula_paciente": cedula}, limit)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) ListByFecha(ctx context.Context, fecha string, limit int) ([]*Appointment, error) {
	recs, err := r.store.Search(ctx, table, map[string]any{"fecha": fecha}, limit)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *PGRepository) FindSlot(ctx context.Context, fecha, hora string) (*Appointment, error) {
	recs, err := r.store.Search(ctx, table, map[string]any{"fecha": fecha, "hora": hora}, 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, db.ErrNotFound
	}
	return fromRecord(recs[0]), nil
}

func (r *PGRepository) Update(ctx context.Context, id int64, fields map[string]any) (*Appointment, error) {
	rec, err := r.store.Update(ctx, table, id, fields)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, table, id)
}
