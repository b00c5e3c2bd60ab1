package repositories

import (
	"context"

	"instock/internal/models"
)

type InventoryRepository interface {
	Create(ctx context.Context, inventory *models.Inventory) (int, error)
	GetByID(ctx context.Context, id int) (*models.InventoryDetail, error)
	Update(ctx context.Context, inventory *models.Inventory) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*models.InventoryDetail, error)
	Search(ctx context.Context, query string) ([]*models.InventoryDetail, error)
	ListByWarehouse(ctx context.Context, warehouseID int) ([]*models.Inventory, error)
	ListBelowQuantity(ctx context.Context, threshold int) ([]*models.Inventory, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type inventoryRepo struct {
	db Database
}

func NewInventoryRepository(db Database) InventoryRepository {
	return &inventoryRepo{db: db}
}

const inventoryColumns = `id, warehouse_id, item_name, description, category, status, quantity, created_at, updated_at`

const inventoryDetailSelect = `
	SELECT i.id, i.warehouse_id, w.warehouse_name, i.item_name, i.description, i.category, i.status, i.quantity, i.created_at, i.updated_at
	FROM inventories i
	JOIN warehouses w ON w.id = i.warehouse_id
`

func (r *inventoryRepo) Create(ctx context.Context, inventory *models.Inventory) (int, error) {
	query := `
		INSERT INTO inventories (warehouse_id, item_name, description, category, status, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		inventory.WarehouseID, inventory.ItemName, inventory.Description,
		inventory.Category, inventory.Status, inventory.Quantity,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id int) (*models.InventoryDetail, error) {
	detail := &models.InventoryDetail{}
	query := inventoryDetailSelect + ` WHERE i.id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&detail.ID, &detail.WarehouseID, &detail.WarehouseName, &detail.ItemName,
		&detail.Description, &detail.Category, &detail.Status, &detail.Quantity,
		&detail.CreatedAt, &detail.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *inventoryRepo) Update(ctx context.Context, inventory *models.Inventory) error {
	query := `
		UPDATE inventories
		SET warehouse_id = $1, item_name = $2, description = $3, category = $4, status = $5, quantity = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query,
		inventory.WarehouseID, inventory.ItemName, inventory.Description,
		inventory.Category, inventory.Status, inventory.Quantity,
		inventory.ID,
	)
	return err
}

func (r *inventoryRepo) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM inventories WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *inventoryRepo) List(ctx context.Context) ([]*models.InventoryDetail, error) {
	query := inventoryDetailSelect + ` ORDER BY i.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInventoryDetails(rows)
}

// Search matches the text as a case-sensitive substring across the joined
// projection, including numeric columns rendered as text.
func (r *inventoryRepo) Search(ctx context.Context, query string) ([]*models.InventoryDetail, error) {
	sql := inventoryDetailSelect + `
		WHERE w.warehouse_name LIKE $1
		   OR i.id::text LIKE $1
		   OR i.item_name LIKE $1
		   OR i.description LIKE $1
		   OR i.category LIKE $1
		   OR i.status LIKE $1
		   OR i.quantity::text LIKE $1
		ORDER BY i.id
	`
	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInventoryDetails(rows)
}

func (r *inventoryRepo) ListByWarehouse(ctx context.Context, warehouseID int) ([]*models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE warehouse_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInventories(rows)
}

func (r *inventoryRepo) ListBelowQuantity(ctx context.Context, threshold int) ([]*models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE quantity <= $1 ORDER BY quantity, id`
	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInventories(rows)
}

func (r *inventoryRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM inventories WHERE id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanInventories(rows pgxRows) ([]*models.Inventory, error) {
	var inventories []*models.Inventory
	for rows.Next() {
		inventory := &models.Inventory{}
		if err := rows.Scan(
			&inventory.ID, &inventory.WarehouseID, &inventory.ItemName, &inventory.Description,
			&inventory.Category, &inventory.Status, &inventory.Quantity,
			&inventory.CreatedAt, &inventory.UpdatedAt,
		); err != nil {
			return nil, err
		}
		inventories = append(inventories, inventory)
	}
	return inventories, rows.Err()
}

func scanInventoryDetails(rows pgxRows) ([]*models.InventoryDetail, error) {
	var details []*models.InventoryDetail
	for rows.Next() {
		detail := &models.InventoryDetail{}
		if err := rows.Scan(
			&detail.ID, &detail.WarehouseID, &detail.WarehouseName, &detail.ItemName,
			&detail.Description, &detail.Category, &detail.Status, &detail.Quantity,
			&detail.CreatedAt, &detail.UpdatedAt,
		); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}
