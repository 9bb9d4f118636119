package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `
	id,
	name,
	description,
	price,
	category,
	image_url,
	is_popular,
	is_available,
	preparation_time,
	created_at,
	updated_at
`

func scanItem(row pgx.Row, item *MenuItem) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.ImageURL,
		&item.IsPopular,
		&item.IsAvailable,
		&item.PreparationTime,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

// --------------------------------------------------
// List (ordered by name — the catalog's public order)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]MenuItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem
	for rows.Next() {
		var it MenuItem
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*MenuItem, error) {

	var it MenuItem
	err := scanItem(r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = $1
	`, id), &it)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("menu item not found")
		}
		return nil, err
	}

	return &it, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *MenuItem) error {

	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			id,
			name,
			description,
			price,
			category,
			image_url,
			is_popular,
			is_available,
			preparation_time,
			created_at,
			updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now())
		RETURNING created_at, updated_at
	`,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.ImageURL,
		item.IsPopular,
		item.IsAvailable,
		item.PreparationTime,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) Update(ctx context.Context, item *MenuItem) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $1,
		    description = $2,
		    price = $3,
		    category = $4,
		    image_url = $5,
		    is_popular = $6,
		    is_available = $7,
		    preparation_time = $8,
		    updated_at = now()
		WHERE id = $9
	`,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.ImageURL,
		item.IsPopular,
		item.IsAvailable,
		item.PreparationTime,
		item.ID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menu_items WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}

	return nil
}

func (r *PostgresRepository) SetAvailability(
	ctx context.Context,
	id string,
	available bool,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET is_available = $1,
		    updated_at = now()
		WHERE id = $2
	`, available, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}

	return nil
}
