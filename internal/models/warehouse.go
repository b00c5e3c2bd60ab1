package models

import "time"

type Warehouse struct {
	ID              int       `json:"id" db:"id"`
	WarehouseName   string    `json:"warehouse_name" db:"warehouse_name"`
	Address         string    `json:"address" db:"address"`
	City            string    `json:"city" db:"city"`
	Country         string    `json:"country" db:"country"`
	ContactName     string    `json:"contact_name" db:"contact_name"`
	ContactPosition string    `json:"contact_position" db:"contact_position"`
	ContactEmail    string    `json:"contact_email" db:"contact_email"`
	ContactPhone    string    `json:"contact_phone" db:"contact_phone"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
