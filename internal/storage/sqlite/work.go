package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/work"
)

type WorkRepository struct {
	db *sql.DB
}

const workColumns = "id, description, category, date, start_time, end_time, actual_minutes, expected_minutes, notes, timestamp"

func scanWork(row rowScanner) (work.Entry, error) {
	var (
		e          work.Entry
		start, end string
		notes      sql.NullString
	)
	err := row.Scan(&e.ID, &e.Description, &e.Category, &e.Date, &start, &end,
		&e.ActualMinutes, &e.ExpectedMinutes, &notes, &e.Timestamp)
	if err != nil {
		return work.Entry{}, err
	}
	if e.Start, err = clock.Parse(start); err != nil {
		return work.Entry{}, err
	}
	if e.End, err = clock.Parse(end); err != nil {
		return work.Entry{}, err
	}
	e.Notes = notes.String
	return e, nil
}

func (r *WorkRepository) Create(ctx context.Context, e work.Entry) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO work_entries ("+workColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.Description, e.Category, e.Date, e.Start.String(), e.End.String(),
		e.ActualMinutes, e.ExpectedMinutes, nullableString(e.Notes), e.Timestamp)
	return wrapErr(resourceWork, "create", e.ID, err)
}

func (r *WorkRepository) Get(ctx context.Context, id string) (work.Entry, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+workColumns+" FROM work_entries WHERE id = ?", id)
	e, err := scanWork(row)
	if errors.Is(err, sql.ErrNoRows) {
		err = work.ErrNotFound
	}
	if err != nil {
		return work.Entry{}, wrapErr(resourceWork, "get", id, err)
	}
	return e, nil
}

func (r *WorkRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM work_entries WHERE id = ?", id)
	if err == nil {
		err = mustAffect(res, work.ErrNotFound)
	}
	return wrapErr(resourceWork, "delete", id, err)
}

// filterClause renders f as a WHERE clause with its arguments.
func filterClause(f work.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Date != "" {
		conds = append(conds, "date = ?")
		args = append(args, f.Date)
	}
	if f.Category != "" {
		conds = append(conds, "category = ? COLLATE NOCASE")
		args = append(args, f.Category)
	}
	if f.From != "" {
		conds = append(conds, "date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		conds = append(conds, "date <= ?")
		args = append(args, f.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *WorkRepository) List(ctx context.Context, f work.Filter) ([]work.Entry, error) {
	where, args := filterClause(f)
	rows, err := r.db.QueryContext(ctx, "SELECT "+workColumns+" FROM work_entries"+where+" ORDER BY rowid ASC", args...)
	if err != nil {
		return nil, wrapErr(resourceWork, "list", "", err)
	}
	defer rows.Close()

	entries := []work.Entry{}
	for rows.Next() {
		e, err := scanWork(rows)
		if err != nil {
			return nil, wrapErr(resourceWork, "list", "", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(resourceWork, "list", "", err)
	}
	return entries, nil
}

var _ work.Repository = (*WorkRepository)(nil)
