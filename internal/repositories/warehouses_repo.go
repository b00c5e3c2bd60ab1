package repositories

import (
	"context"

	"instock/internal/models"
)

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) (int, error)
	GetByID(ctx context.Context, id int) (*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*models.Warehouse, error)
	Search(ctx context.Context, query string) ([]*models.Warehouse, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type warehouseRepo struct {
	db Database
}

func NewWarehouseRepository(db Database) WarehouseRepository {
	return &warehouseRepo{db: db}
}

const warehouseColumns = `id, warehouse_name, address, city, country, contact_name, contact_position, contact_email, contact_phone, created_at, updated_at`

func (r *warehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) (int, error) {
	query := `
		INSERT INTO warehouses (warehouse_name, address, city, country, contact_name, contact_position, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		warehouse.WarehouseName, warehouse.Address, warehouse.City, warehouse.Country,
		warehouse.ContactName, warehouse.ContactPosition, warehouse.ContactEmail, warehouse.ContactPhone,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *warehouseRepo) GetByID(ctx context.Context, id int) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&warehouse.ID, &warehouse.WarehouseName, &warehouse.Address, &warehouse.City, &warehouse.Country,
		&warehouse.ContactName, &warehouse.ContactPosition, &warehouse.ContactEmail, &warehouse.ContactPhone,
		&warehouse.CreatedAt, &warehouse.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (r *warehouseRepo) Update(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		UPDATE warehouses
		SET warehouse_name = $1, address = $2, city = $3, country = $4, contact_name = $5, contact_position = $6, contact_email = $7, contact_phone = $8, updated_at = NOW()
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query,
		warehouse.WarehouseName, warehouse.Address, warehouse.City, warehouse.Country,
		warehouse.ContactName, warehouse.ContactPosition, warehouse.ContactEmail, warehouse.ContactPhone,
		warehouse.ID,
	)
	return err
}

func (r *warehouseRepo) Delete(ctx context.Context, id int) error {
	// Dependent inventory rows go with the warehouse via the FK cascade.
	query := `DELETE FROM warehouses WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *warehouseRepo) List(ctx context.Context) ([]*models.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse := &models.Warehouse{}
		if err := rows.Scan(
			&warehouse.ID, &warehouse.WarehouseName, &warehouse.Address, &warehouse.City, &warehouse.Country,
			&warehouse.ContactName, &warehouse.ContactPosition, &warehouse.ContactEmail, &warehouse.ContactPhone,
			&warehouse.CreatedAt, &warehouse.UpdatedAt,
		); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, rows.Err()
}

// Search matches the text as a case-sensitive substring across the columns a
// client can see in the warehouse table view. LIKE is case-sensitive in
// Postgres, which is the contract here.
func (r *warehouseRepo) Search(ctx context.Context, query string) ([]*models.Warehouse, error) {
	sql := `
		SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE warehouse_name LIKE $1
		   OR id::text LIKE $1
		   OR address LIKE $1
		   OR country LIKE $1
		   OR contact_name LIKE $1
		   OR contact_position LIKE $1
		   OR contact_email LIKE $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse := &models.Warehouse{}
		if err := rows.Scan(
			&warehouse.ID, &warehouse.WarehouseName, &warehouse.Address, &warehouse.City, &warehouse.Country,
			&warehouse.ContactName, &warehouse.ContactPosition, &warehouse.ContactEmail, &warehouse.ContactPhone,
			&warehouse.CreatedAt, &warehouse.UpdatedAt,
		); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, rows.Err()
}

func (r *warehouseRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM warehouses WHERE id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
