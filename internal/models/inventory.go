package models

import "time"

type Inventory struct {
	ID          int       `json:"id" db:"id"`
	WarehouseID int       `json:"warehouse_id" db:"warehouse_id"`
	ItemName    string    `json:"item_name" db:"item_name"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Status      string    `json:"status" db:"status"`
	Quantity    int       `json:"quantity" db:"quantity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// InventoryDetail is the read projection of an inventory row joined with its
// owning warehouse.
type InventoryDetail struct {
	ID            int       `json:"id" db:"id"`
	WarehouseID   int       `json:"warehouse_id" db:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name" db:"warehouse_name"`
	ItemName      string    `json:"item_name" db:"item_name"`
	Description   string    `json:"description" db:"description"`
	Category      string    `json:"category" db:"category"`
	Status        string    `json:"status" db:"status"`
	Quantity      int       `json:"quantity" db:"quantity"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
