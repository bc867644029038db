package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"weddinghub/internal/model"
)

type GuestRepository struct {
	db *pgxpool.Pool
}

func NewGuestRepository(db *pgxpool.Pool) *GuestRepository {
	return &GuestRepository{db: db}
}

// FindInvitedByName matches an invited guest by trimmed,
// case-insensitive name. Returns nil when no row matches.
func (r *GuestRepository) FindInvitedByName(ctx context.Context, name string) (*model.Guest, error) {
	query := `
        SELECT id, guest_name, COALESCE(email, ''), COALESCE(phone, ''), party_size,
               COALESCE(plus_one_name, ''), COALESCE(side, ''), COALESCE(notes, ''),
               invited, created_at, updated_at
        FROM guest_list
        WHERE LOWER(guest_name) = LOWER($1) AND invited = TRUE
    `
	var g model.Guest
	err := r.db.QueryRow(ctx, query, name).Scan(
		&g.ID, &g.GuestName, &g.Email, &g.Phone, &g.PartySize,
		&g.PlusOneName, &g.Side, &g.Notes,
		&g.Invited, &g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns all guests ordered by name.
func (r *GuestRepository) List(ctx context.Context) ([]*model.Guest, error) {
	query := `
        SELECT id, guest_name, COALESCE(email, ''), COALESCE(phone, ''), party_size,
               COALESCE(plus_one_name, ''), COALESCE(side, ''), COALESCE(notes, ''),
               invited, created_at, updated_at
        FROM guest_list
        ORDER BY guest_name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []*model.Guest
	for rows.Next() {
		var g model.Guest
		if err := rows.Scan(
			&g.ID, &g.GuestName, &g.Email, &g.Phone, &g.PartySize,
			&g.PlusOneName, &g.Side, &g.Notes,
			&g.Invited, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		guests = append(guests, &g)
	}
	return guests, rows.Err()
}

// Create inserts a guest and fills in its id and timestamps.
func (r *GuestRepository) Create(ctx context.Context, g *model.Guest) error {
	query := `
        INSERT INTO guest_list (guest_name, email, phone, party_size, plus_one_name, side, notes, invited, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
        RETURNING id, created_at, updated_at
    `
	return r.db.QueryRow(ctx, query,
		g.GuestName, g.Email, g.Phone, g.PartySize, g.PlusOneName, g.Side, g.Notes, g.Invited,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

// Update rewrites a guest row by id.
func (r *GuestRepository) Update(ctx context.Context, g *model.Guest) error {
	query := `
        UPDATE guest_list
        SET guest_name = $1, email = $2, phone = $3, party_size = $4,
            plus_one_name = $5, side = $6, notes = $7, invited = $8, updated_at = NOW()
        WHERE id = $9
        RETURNING updated_at
    `
	err := r.db.QueryRow(ctx, query,
		g.GuestName, g.Email, g.Phone, g.PartySize, g.PlusOneName, g.Side, g.Notes, g.Invited, g.ID,
	).Scan(&g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a guest by id. Orphaned RSVPs are left in place.
func (r *GuestRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM guest_list WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
