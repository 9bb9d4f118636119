package billing

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

// --------------------------------------------------
// Create bill + items (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, bill *Bill) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO bills (
			order_id,
			table_label,
			subtotal,
			tax,
			discount,
			tip_percent,
			tip,
			total,
			payment_method,
			customer_phone,
			paid,
			created_at,
			updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),now())
		RETURNING created_at, updated_at
	`,
		bill.OrderID,
		bill.Table,
		bill.Subtotal,
		bill.Tax,
		bill.Discount,
		bill.TipPercent,
		bill.Tip,
		bill.Total,
		bill.PaymentMethod,
		bill.CustomerPhone,
		bill.Paid,
	).Scan(&bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		return err
	}

	for _, item := range bill.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO bill_items (
				order_id,
				item_id,
				name,
				price,
				quantity
			)
			VALUES ($1,$2,$3,$4,$5)
		`,
			bill.OrderID,
			item.ID,
			item.Name,
			item.Price,
			item.Quantity,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Load bill + items
// --------------------------------------------------
func (r *PostgresRepository) GetByOrderID(
	ctx context.Context,
	orderID string,
) (*Bill, error) {

	var b Bill

	err := r.db.QueryRow(ctx, `
		SELECT
			order_id,
			table_label,
			subtotal,
			tax,
			discount,
			tip_percent,
			tip,
			total,
			payment_method,
			customer_phone,
			paid,
			created_at,
			updated_at
		FROM bills
		WHERE order_id = $1
	`, orderID).Scan(
		&b.OrderID,
		&b.Table,
		&b.Subtotal,
		&b.Tax,
		&b.Discount,
		&b.TipPercent,
		&b.Tip,
		&b.Total,
		&b.PaymentMethod,
		&b.CustomerPhone,
		&b.Paid,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("bill not found")
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id, name, price, quantity
		FROM bill_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		b.Items = append(b.Items, it)
	}

	return &b, rows.Err()
}

// --------------------------------------------------
// Update mutable fields
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, bill *Bill) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE bills
		SET subtotal = $1,
		    tax = $2,
		    discount = $3,
		    tip_percent = $4,
		    tip = $5,
		    total = $6,
		    payment_method = $7,
		    customer_phone = $8,
		    paid = $9,
		    updated_at = now()
		WHERE order_id = $10
	`,
		bill.Subtotal,
		bill.Tax,
		bill.Discount,
		bill.TipPercent,
		bill.Tip,
		bill.Total,
		bill.PaymentMethod,
		bill.CustomerPhone,
		bill.Paid,
		bill.OrderID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return errors.New("no bill row updated")
	}

	return nil
}
