package repository

import (
	"context"
	"database/sql"

	"github.com/dmx/dmxmoney/internal/database"
)

// CategoryRepo handles categories.
type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create tolerates duplicate ids the same way accounts do.
func (r *CategoryRepo) Create(ctx context.Context, c Category) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT OR IGNORE INTO categories (id, name, icon, color) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Icon, c.Color)
	return database.ClassifyErr(err)
}

func (r *CategoryRepo) Update(ctx context.Context, c Category) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE categories SET name = ?, icon = ?, color = ? WHERE id = ?`,
		c.Name, c.Icon, c.Color, c.ID)
	return database.ClassifyErr(err)
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	return database.ClassifyErr(err)
}

func (r *CategoryRepo) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, icon, color FROM categories`)
	if err != nil {
		return nil, database.ClassifyErr(err)
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
