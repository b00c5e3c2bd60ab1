package services

import (
	"context"
	"log"
	"strconv"

	"instock/internal/caching"
	"instock/internal/models"
	"instock/internal/repositories"
	"instock/internal/validation"
)

// InventoryInput carries the writable inventory fields as they arrive from a
// client. Quantity stays a raw string until the digits-only check has run.
type InventoryInput struct {
	WarehouseID int
	ItemName    string
	Description string
	Category    string
	Status      string
	Quantity    string
}

type InventoryService interface {
	List(ctx context.Context) ([]*models.InventoryDetail, error)
	GetByID(ctx context.Context, id int) (*models.InventoryDetail, error)
	Search(ctx context.Context, query string) ([]*models.InventoryDetail, error)
	Create(ctx context.Context, input *InventoryInput) (*models.InventoryDetail, error)
	Update(ctx context.Context, id int, input *InventoryInput) (*models.InventoryDetail, error)
	Delete(ctx context.Context, id int) error
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	warehouseRepo repositories.WarehouseRepository
	cache         caching.CacheService
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository, warehouseRepo repositories.WarehouseRepository, cache caching.CacheService) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		warehouseRepo: warehouseRepo,
		cache:         cache,
	}
}

// validate checks field shape and the warehouse reference. The existence
// check is a direct repository lookup in-process; a dangling warehouse_id is
// a validation failure, not a not-found.
func (s *inventoryService) validate(ctx context.Context, input *InventoryInput) (int, error) {
	if input.WarehouseID == 0 {
		return 0, validationErrorf("warehouse_id is required")
	}
	required := []struct {
		name  string
		value string
	}{
		{"item_name", input.ItemName},
		{"description", input.Description},
		{"category", input.Category},
		{"status", input.Status},
		{"quantity", input.Quantity},
	}
	for _, field := range required {
		if field.value == "" {
			return 0, validationErrorf("%s is required", field.name)
		}
	}
	if !validation.IsNumber(input.Quantity) {
		return 0, validationErrorf("quantity must be a non-negative whole number")
	}
	quantity, err := strconv.Atoi(input.Quantity)
	if err != nil {
		return 0, validationErrorf("quantity must be a non-negative whole number")
	}

	exists, err := s.warehouseRepo.Exists(ctx, input.WarehouseID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, validationErrorf("warehouse with id %d does not exist", input.WarehouseID)
	}
	return quantity, nil
}

func (s *inventoryService) List(ctx context.Context) ([]*models.InventoryDetail, error) {
	return s.inventoryRepo.List(ctx)
}

func (s *inventoryService) GetByID(ctx context.Context, id int) (*models.InventoryDetail, error) {
	if cached, err := s.cache.GetInventory(ctx, id); err != nil {
		log.Printf("inventory cache read failed for %d: %v", id, err)
	} else if cached != nil {
		return cached, nil
	}

	detail, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if err := s.cache.SetInventory(ctx, detail, caching.DefaultTTL); err != nil {
		log.Printf("inventory cache write failed for %d: %v", id, err)
	}
	return detail, nil
}

func (s *inventoryService) Search(ctx context.Context, query string) ([]*models.InventoryDetail, error) {
	if query == "" {
		return nil, validationErrorf("query parameter is required")
	}
	return s.inventoryRepo.Search(ctx, query)
}

func (s *inventoryService) Create(ctx context.Context, input *InventoryInput) (*models.InventoryDetail, error) {
	quantity, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	inventory := &models.Inventory{
		WarehouseID: input.WarehouseID,
		ItemName:    input.ItemName,
		Description: input.Description,
		Category:    input.Category,
		Status:      input.Status,
		Quantity:    quantity,
	}

	id, err := s.inventoryRepo.Create(ctx, inventory)
	if err != nil {
		return nil, err
	}

	created, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *inventoryService) Update(ctx context.Context, id int, input *InventoryInput) (*models.InventoryDetail, error) {
	quantity, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	exists, err := s.inventoryRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	inventory := &models.Inventory{
		ID:          id,
		WarehouseID: input.WarehouseID,
		ItemName:    input.ItemName,
		Description: input.Description,
		Category:    input.Category,
		Status:      input.Status,
		Quantity:    quantity,
	}
	if err := s.inventoryRepo.Update(ctx, inventory); err != nil {
		return nil, err
	}

	if err := s.cache.DeleteInventory(ctx, id); err != nil {
		log.Printf("inventory cache invalidation failed for %d: %v", id, err)
	}

	updated, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *inventoryService) Delete(ctx context.Context, id int) error {
	exists, err := s.inventoryRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.DeleteInventory(ctx, id); err != nil {
		log.Printf("inventory cache invalidation failed for %d: %v", id, err)
	}
	return nil
}
