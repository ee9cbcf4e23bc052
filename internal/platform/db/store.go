package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Table describes one allow-listed table the store may touch. Domain
// packages declare their own Table values; query text is assembled only
// from these declarations, so caller-supplied strings never become SQL
// identifiers.
type Table struct {
	Name    string
	IDField string
	Fields  []string
}

func (t Table) allows(field string) bool {
	for _, f := range t.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Querier is the subset of pgxpool.Pool the store uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is the generic table-parametrized data-access layer. All domain
// repositories share one Store instead of hand-writing near-identical
// query sets per entity. Every operation is a single parameterized
// statement; multi-statement atomicity is delegated to the database's
// own constraints (unique indexes, foreign keys) surfaced as ErrConflict.
type Store struct {
	q Querier
}

func NewStore(pool *pgxpool.Pool) *Store { return &Store{q: pool} }

// NewStoreWithQuerier exists for tests that substitute the pool.
func NewStoreWithQuerier(q Querier) *Store { return &Store{q: q} }

func (s *Store) GetAll(ctx context.Context, t Table, limit, offset int) ([]Record, error) {
	sql := fmt.Sprintf(`SELECT * FROM %s ORDER BY %s LIMIT $1 OFFSET $2`, t.Name, t.IDField)
	rows, err := s.q.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (s *Store) GetByID(ctx context.Context, t Table, id any) (Record, error) {
	sql := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, t.Name, t.IDField)
	rows, err := s.q.Query(ctx, sql, id)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()
	recs, err := collectRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs[0], nil
}

func (s *Store) Insert(ctx context.Context, t Table, fields map[string]any) (Record, error) {
	sql, args, err := buildInsert(t, fields)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()
	recs, err := collectRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, wrapErr(pgx.ErrNoRows)
	}
	return recs[0], nil
}

func (s *Store) Update(ctx context.Context, t Table, id any, fields map[string]any) (Record, error) {
	sql, args, err := buildUpdate(t, id, fields)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()
	recs, err := collectRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs[0], nil
}

func (s *Store) Delete(ctx context.Context, t Table, id any) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Name, t.IDField)
	tag, err := s.q.Exec(ctx, sql, id)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Search(ctx context.Context, t Table, filters map[string]any, limit int) ([]Record, error) {
	sql, args, err := buildSearch(t, filters, limit)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// -- query builders --

// sortedKeys gives map iteration a stable order so generated SQL is
// deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func buildInsert(t Table, fields map[string]any) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty field set for %s", ErrBadField, t.Name)
	}
	keys := sortedKeys(fields)
	cols := make([]string, 0, len(keys))
	placeholders := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		if !t.allows(k) {
			return "", nil, fmt.Errorf("%w: %s.%s", ErrBadField, t.Name, k)
		}
		cols = append(cols, k)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, fields[k])
	}
	sql := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		t.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return sql, args, nil
}

func buildUpdate(t Table, id any, fields map[string]any) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty field set for %s", ErrBadField, t.Name)
	}
	keys := sortedKeys(fields)
	sets := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		if !t.allows(k) {
			return "", nil, fmt.Errorf("%w: %s.%s", ErrBadField, t.Name, k)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, fields[k])
	}
	args = append(args, id)
	sql := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d RETURNING *`,
		t.Name, strings.Join(sets, ", "), t.IDField, len(args))
	return sql, args, nil
}

func buildSearch(t Table, filters map[string]any, limit int) (string, []any, error) {
	keys := sortedKeys(filters)
	conds := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		if !t.allows(k) {
			return "", nil, fmt.Errorf("%w: %s.%s", ErrBadField, t.Name, k)
		}
		conds = append(conds, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, filters[k])
	}
	sql := `SELECT * FROM ` + t.Name
	if len(conds) > 0 {
		sql += ` WHERE ` + strings.Join(conds, " AND ")
	}
	sql += fmt.Sprintf(` ORDER BY %s`, t.IDField)
	if limit > 0 {
		args = append(args, limit)
		sql += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	return sql, args, nil
}

func collectRecords(rows pgx.Rows) ([]Record, error) {
	var recs []Record
	fields := rows.FieldDescriptions()
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, wrapErr(err)
		}
		rec := make(Record, len(fields))
		for i, fd := range fields {
			rec[fd.Name] = values[i]
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return recs, nil
}
