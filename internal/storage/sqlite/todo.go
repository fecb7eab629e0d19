package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/todo"
)

type TodoRepository struct {
	db *sql.DB
}

const todoColumns = "id, description, expected_minutes, date, start_time, end_time, actual_minutes"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (todo.Item, error) {
	var (
		item       todo.Item
		start, end sql.NullString
		actual     sql.NullInt64
	)
	if err := row.Scan(&item.ID, &item.Description, &item.ExpectedMinutes, &item.Date, &start, &end, &actual); err != nil {
		return todo.Item{}, err
	}
	if start.Valid && end.Valid && actual.Valid {
		s, err := clock.Parse(start.String)
		if err != nil {
			return todo.Item{}, err
		}
		e, err := clock.Parse(end.String)
		if err != nil {
			return todo.Item{}, err
		}
		item.Completion = &todo.Completion{Start: s, End: e, ActualMinutes: int(actual.Int64)}
	}
	return item, nil
}

func completionArgs(item todo.Item) (start, end sql.NullString, actual sql.NullInt64) {
	if c := item.Completion; c != nil {
		start = nullableString(c.Start.String())
		end = nullableString(c.End.String())
		actual = sql.NullInt64{Int64: int64(c.ActualMinutes), Valid: true}
	}
	return start, end, actual
}

func (r *TodoRepository) Create(ctx context.Context, item todo.Item) error {
	start, end, actual := completionArgs(item)
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO todos ("+todoColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.Description, item.ExpectedMinutes, item.Date, start, end, actual)
	return wrapErr(resourceTodo, "create", item.ID, err)
}

func (r *TodoRepository) Get(ctx context.Context, id string) (todo.Item, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+todoColumns+" FROM todos WHERE id = ?", id)
	item, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		err = todo.ErrNotFound
	}
	if err != nil {
		return todo.Item{}, wrapErr(resourceTodo, "get", id, err)
	}
	return item, nil
}

func (r *TodoRepository) Update(ctx context.Context, item todo.Item) error {
	start, end, actual := completionArgs(item)
	res, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET description = ?, expected_minutes = ?, date = ?, start_time = ?, end_time = ?, actual_minutes = ?
		WHERE id = ?`,
		item.Description, item.ExpectedMinutes, item.Date, start, end, actual, item.ID)
	if err == nil {
		err = mustAffect(res, todo.ErrNotFound)
	}
	return wrapErr(resourceTodo, "update", item.ID, err)
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err == nil {
		err = mustAffect(res, todo.ErrNotFound)
	}
	return wrapErr(resourceTodo, "delete", id, err)
}

func (r *TodoRepository) List(ctx context.Context) ([]todo.Item, error) {
	return r.query(ctx, "SELECT "+todoColumns+" FROM todos ORDER BY rowid ASC")
}

func (r *TodoRepository) ListByDate(ctx context.Context, date string) ([]todo.Item, error) {
	return r.query(ctx, "SELECT "+todoColumns+" FROM todos WHERE date = ? ORDER BY rowid ASC", date)
}

func (r *TodoRepository) query(ctx context.Context, query string, args ...any) ([]todo.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(resourceTodo, "list", "", err)
	}
	defer rows.Close()

	items := []todo.Item{}
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			return nil, wrapErr(resourceTodo, "list", "", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(resourceTodo, "list", "", err)
	}
	return items, nil
}

var _ todo.Repository = (*TodoRepository)(nil)
