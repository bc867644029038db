package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"weddinghub/internal/model"
)

type RSVPRepository struct {
	db *pgxpool.Pool
}

func NewRSVPRepository(db *pgxpool.Pool) *RSVPRepository {
	return &RSVPRepository{db: db}
}

const rsvpColumns = `
        id, guest_id, guest_name, email, COALESCE(phone, ''), attending,
        number_of_guests, COALESCE(dietary_restrictions, ''), COALESCE(message, ''),
        created_at, updated_at
`

func scanRSVP(row pgx.Row) (*model.RSVP, error) {
	var r model.RSVP
	err := row.Scan(
		&r.ID, &r.GuestID, &r.GuestName, &r.Email, &r.Phone, &r.Attending,
		&r.NumberOfGuests, &r.DietaryRestrictions, &r.Message,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FindLatestByName returns the most recently created RSVP whose name
// matches case-insensitively, or nil when none exists. This is a pure
// string match: an RSVP filed under a different spelling is invisible.
func (r *RSVPRepository) FindLatestByName(ctx context.Context, name string) (*model.RSVP, error) {
	query := `
        SELECT ` + rsvpColumns + `
        FROM rsvps
        WHERE LOWER(guest_name) = LOWER($1)
        ORDER BY created_at DESC
        LIMIT 1
    `
	rsvp, err := scanRSVP(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rsvp, nil
}

// List returns all RSVPs, newest first.
func (r *RSVPRepository) List(ctx context.Context) ([]*model.RSVP, error) {
	query := `
        SELECT ` + rsvpColumns + `
        FROM rsvps
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rsvps []*model.RSVP
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}

// Create inserts a new RSVP row and fills in its id and timestamps.
func (r *RSVPRepository) Create(ctx context.Context, rsvp *model.RSVP) error {
	query := `
        INSERT INTO rsvps (guest_id, guest_name, email, phone, attending, number_of_guests, dietary_restrictions, message)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at
    `
	return r.db.QueryRow(ctx, query,
		rsvp.GuestID, rsvp.GuestName, rsvp.Email, rsvp.Phone, rsvp.Attending,
		rsvp.NumberOfGuests, rsvp.DietaryRestrictions, rsvp.Message,
	).Scan(&rsvp.ID, &rsvp.CreatedAt, &rsvp.UpdatedAt)
}

// Update rewrites the response fields of an existing row in place, so
// repeated edits in one sitting do not pile up duplicate rows. The row
// must carry the same name as the submission: ids are guessable, so an
// id alone never grants a rewrite of someone else's response.
func (r *RSVPRepository) Update(ctx context.Context, rsvp *model.RSVP) error {
	query := `
        UPDATE rsvps
        SET guest_id = COALESCE($1, guest_id), email = $2, phone = $3, attending = $4,
            number_of_guests = $5, dietary_restrictions = $6, message = $7, updated_at = NOW()
        WHERE id = $8 AND LOWER(guest_name) = LOWER($9)
        RETURNING guest_name, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		rsvp.GuestID, rsvp.Email, rsvp.Phone, rsvp.Attending,
		rsvp.NumberOfGuests, rsvp.DietaryRestrictions, rsvp.Message, rsvp.ID, rsvp.GuestName,
	).Scan(&rsvp.GuestName, &rsvp.CreatedAt, &rsvp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes an RSVP by id.
func (r *RSVPRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rsvps WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
