package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/angelofallars/dpm/internal/category"
)

type CategoryRepository struct {
	db *sql.DB
}

const categoryColumns = "id, name, description, color, created_at, updated_at, work_entries_count"

func scanCategory(row rowScanner) (category.Category, error) {
	var (
		c           category.Category
		description sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &description, &c.Color, &c.CreatedAt, &c.UpdatedAt, &c.WorkEntriesCount); err != nil {
		return category.Category{}, err
	}
	c.Description = description.String
	return c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c category.Category) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories ("+categoryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.Name, nullableString(c.Description), c.Color, c.CreatedAt, c.UpdatedAt, c.WorkEntriesCount)
	return wrapErr(resourceCategory, "create", c.ID, err)
}

func (r *CategoryRepository) get(ctx context.Context, op, key, query string) (category.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		err = category.ErrNotFound
	}
	if err != nil {
		return category.Category{}, wrapErr(resourceCategory, op, key, err)
	}
	return c, nil
}

func (r *CategoryRepository) Get(ctx context.Context, id string) (category.Category, error) {
	return r.get(ctx, "get", id, "SELECT "+categoryColumns+" FROM categories WHERE id = ?")
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (category.Category, error) {
	return r.get(ctx, "find", strings.TrimSpace(name),
		"SELECT "+categoryColumns+" FROM categories WHERE name = ? COLLATE NOCASE")
}

func (r *CategoryRepository) Update(ctx context.Context, c category.Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories
		SET name = ?, description = ?, color = ?, updated_at = ?, work_entries_count = ?
		WHERE id = ?`,
		c.Name, nullableString(c.Description), c.Color, c.UpdatedAt, c.WorkEntriesCount, c.ID)
	if err == nil {
		err = mustAffect(res, category.ErrNotFound)
	}
	return wrapErr(resourceCategory, "update", c.ID, err)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err == nil {
		err = mustAffect(res, category.ErrNotFound)
	}
	return wrapErr(resourceCategory, "delete", id, err)
}

func (r *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+categoryColumns+" FROM categories ORDER BY rowid ASC")
	if err != nil {
		return nil, wrapErr(resourceCategory, "list", "", err)
	}
	defer rows.Close()

	out := []category.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, wrapErr(resourceCategory, "list", "", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(resourceCategory, "list", "", err)
	}
	return out, nil
}

var _ category.Repository = (*CategoryRepository)(nil)
