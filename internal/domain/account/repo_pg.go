package account

import (
	"context"

	"github.com/clinica/clinica/internal/platform/db"
)

var table = db.Table{
	Name:    "usuario",
	IDField: "id",
	Fields:  []string{"username", "password_hash"},
}

type PGRepository struct {
	store *db.Store
}

func NewPGRepository(store *db.Store) *PGRepository {
	return &PGRepository{store: store}
}

func fromRecord(rec db.Record) *User {
	return &User{
		ID:           rec.Int64("id"),
		Username:     rec.String("username"),
		PasswordHash: rec.String("password_hash"),
	}
}

func (r *PGRepository) Create(ctx context.Context, u *User) (*User, error) {
	rec, err := r.store.Insert(ctx, table, map[string]any{
		"username":      u.Username,
		"password_hash": u.PasswordHash,
	})
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (r *PGRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	recs, err := r.store.Search(ctx, table, map[string]any{"username": username}, 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, db.ErrNotFound
	}
	return fromRecord(recs[0]), nil
}
