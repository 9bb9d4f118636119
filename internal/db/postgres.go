package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// MENU ITEMS (catalog)
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL,
			description VARCHAR(500) NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL CHECK (price > 0),
			category VARCHAR(50) NOT NULL,
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			is_popular BOOLEAN NOT NULL DEFAULT FALSE,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			preparation_time INT NOT NULL CHECK (preparation_time BETWEEN 1 AND 180),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// BILLS
	// -------------------------------
	billsSQL := `
		CREATE TABLE IF NOT EXISTS bills (
			order_id VARCHAR(20) PRIMARY KEY,
			table_label VARCHAR(50) NOT NULL,
			subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
			tax DOUBLE PRECISION NOT NULL DEFAULT 0,
			discount DOUBLE PRECISION NOT NULL DEFAULT 0,
			tip_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
			tip DOUBLE PRECISION NOT NULL DEFAULT 0,
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			payment_method VARCHAR(20) NOT NULL DEFAULT '',
			customer_phone VARCHAR(20) NOT NULL DEFAULT '',
			paid BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, billsSQL); err != nil {
		return err
	}

	// -------------------------------
	// BILL ITEMS
	// -------------------------------
	billItemsSQL := `
		CREATE TABLE IF NOT EXISTS bill_items (
			id SERIAL PRIMARY KEY,
			order_id VARCHAR(20) NOT NULL REFERENCES bills(order_id) ON DELETE CASCADE,
			item_id VARCHAR(50) NOT NULL,
			name VARCHAR(100) NOT NULL,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			quantity INT NOT NULL CHECK (quantity > 0)
		)
	`
	if _, err := pool.Exec(ctx, billItemsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
