package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"weddinghub/internal/model"
)

type WipToggleRepository struct {
	db *pgxpool.Pool
}

func NewWipToggleRepository(db *pgxpool.Pool) *WipToggleRepository {
	return &WipToggleRepository{db: db}
}

// List returns every toggle ordered by page path.
func (r *WipToggleRepository) List(ctx context.Context) ([]*model.WipToggle, error) {
	query := `
        SELECT id, page_path, COALESCE(page_label, ''), is_wip, updated_at
        FROM wip_toggles
        ORDER BY page_path
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var toggles []*model.WipToggle
	for rows.Next() {
		var t model.WipToggle
		if err := rows.Scan(&t.ID, &t.PagePath, &t.PageLabel, &t.IsWip, &t.UpdatedAt); err != nil {
			return nil, err
		}
		toggles = append(toggles, &t)
	}
	return toggles, rows.Err()
}

// ActivePaths returns the paths currently flagged work-in-progress.
func (r *WipToggleRepository) ActivePaths(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT page_path FROM wip_toggles WHERE is_wip = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Upsert creates the toggle on first use and flips it afterwards.
func (r *WipToggleRepository) Upsert(ctx context.Context, t *model.WipToggle) error {
	query := `
        INSERT INTO wip_toggles (page_path, page_label, is_wip, updated_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (page_path)
        DO UPDATE SET is_wip = EXCLUDED.is_wip, updated_at = NOW()
        RETURNING id, updated_at
    `
	return r.db.QueryRow(ctx, query, t.PagePath, t.PageLabel, t.IsWip).Scan(&t.ID, &t.UpdatedAt)
}
