package menu

import "time"

// MenuItem is the authoritative catalog record. It is created and
// edited only through this package; billing and upsell treat it as
// read-only input.
type MenuItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"image_url"`
	IsPopular       bool      `json:"is_popular"`
	IsAvailable     bool      `json:"is_available"`
	PreparationTime int       `json:"preparation_time"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MenuItemInput is the submission shape for create/update.
type MenuItemInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	ImageURL        string  `json:"image_url"`
	IsPopular       bool    `json:"is_popular"`
	IsAvailable     bool    `json:"is_available"`
	PreparationTime int     `json:"preparation_time"`
}
