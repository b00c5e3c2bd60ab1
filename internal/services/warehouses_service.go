package services

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"

	"instock/internal/caching"
	"instock/internal/models"
	"instock/internal/repositories"
	"instock/internal/validation"
)

type WarehouseService interface {
	List(ctx context.Context) ([]*models.Warehouse, error)
	GetByID(ctx context.Context, id int) (*models.Warehouse, error)
	Search(ctx context.Context, query string) ([]*models.Warehouse, error)
	Create(ctx context.Context, warehouse *models.Warehouse) (*models.Warehouse, error)
	Update(ctx context.Context, id int, warehouse *models.Warehouse) (*models.Warehouse, error)
	Delete(ctx context.Context, id int) error
	ListInventories(ctx context.Context, id int) ([]*models.Inventory, error)
}

type warehouseService struct {
	warehouseRepo repositories.WarehouseRepository
	inventoryRepo repositories.InventoryRepository
	cache         caching.CacheService
}

func NewWarehouseService(warehouseRepo repositories.WarehouseRepository, inventoryRepo repositories.InventoryRepository, cache caching.CacheService) WarehouseService {
	return &warehouseService{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		cache:         cache,
	}
}

// validateWarehouse enforces the full-record contract: every writable field
// present, email and phone shaped. Create and Update share it.
func validateWarehouse(warehouse *models.Warehouse) error {
	required := []struct {
		name  string
		value string
	}{
		{"warehouse_name", warehouse.WarehouseName},
		{"address", warehouse.Address},
		{"city", warehouse.City},
		{"country", warehouse.Country},
		{"contact_name", warehouse.ContactName},
		{"contact_position", warehouse.ContactPosition},
		{"contact_email", warehouse.ContactEmail},
		{"contact_phone", warehouse.ContactPhone},
	}
	for _, field := range required {
		if field.value == "" {
			return validationErrorf("%s is required", field.name)
		}
	}
	if !validation.IsValidEmail(warehouse.ContactEmail) {
		return validationErrorf("contact_email must be a valid email address")
	}
	if !validation.IsValidPhoneNumber(warehouse.ContactPhone) {
		return validationErrorf("contact_phone must be a valid phone number")
	}
	return nil
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *warehouseService) List(ctx context.Context) ([]*models.Warehouse, error) {
	return s.warehouseRepo.List(ctx)
}

func (s *warehouseService) GetByID(ctx context.Context, id int) (*models.Warehouse, error) {
	if cached, err := s.cache.GetWarehouse(ctx, id); err != nil {
		log.Printf("warehouse cache read failed for %d: %v", id, err)
	} else if cached != nil {
		return cached, nil
	}

	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if err := s.cache.SetWarehouse(ctx, warehouse, caching.DefaultTTL); err != nil {
		log.Printf("warehouse cache write failed for %d: %v", id, err)
	}
	return warehouse, nil
}

func (s *warehouseService) Search(ctx context.Context, query string) ([]*models.Warehouse, error) {
	if query == "" {
		return nil, validationErrorf("query parameter is required")
	}
	return s.warehouseRepo.Search(ctx, query)
}

func (s *warehouseService) Create(ctx context.Context, warehouse *models.Warehouse) (*models.Warehouse, error) {
	if err := validateWarehouse(warehouse); err != nil {
		return nil, err
	}

	id, err := s.warehouseRepo.Create(ctx, warehouse)
	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the canonical row with generated id and
	// timestamps.
	created, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *warehouseService) Update(ctx context.Context, id int, warehouse *models.Warehouse) (*models.Warehouse, error) {
	if err := validateWarehouse(warehouse); err != nil {
		return nil, err
	}

	if _, err := s.warehouseRepo.GetByID(ctx, id); err != nil {
		return nil, mapNoRows(err)
	}

	warehouse.ID = id
	if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	updated, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *warehouseService) Delete(ctx context.Context, id int) error {
	exists, err := s.warehouseRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.warehouseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *warehouseService) ListInventories(ctx context.Context, id int) ([]*models.Inventory, error) {
	exists, err := s.warehouseRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.inventoryRepo.ListByWarehouse(ctx, id)
}

// invalidate drops the warehouse key and every cached inventory projection;
// the projection embeds warehouse_name and deletes cascade to inventories.
func (s *warehouseService) invalidate(ctx context.Context, id int) {
	if err := s.cache.DeleteWarehouse(ctx, id); err != nil {
		log.Printf("warehouse cache invalidation failed for %d: %v", id, err)
	}
	if err := s.cache.InvalidateInventories(ctx); err != nil {
		log.Printf("inventory cache invalidation failed: %v", err)
	}
}
