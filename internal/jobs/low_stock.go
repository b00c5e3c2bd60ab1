package jobs

import (
	"context"

	"instock/internal/models"
	"instock/internal/repositories"
)

const defaultLowStockThreshold = 10

// LowStockService scans inventory rows whose quantity has dropped to or
// below a threshold.
type LowStockService struct {
	inventoryRepo repositories.InventoryRepository
	threshold     int
}

type LowStockAlert struct {
	InventoryID int
	WarehouseID int
	ItemName    string
	Quantity    int
	Threshold   int
}

func NewLowStockService(inventoryRepo repositories.InventoryRepository, threshold int) *LowStockService {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	return &LowStockService{
		inventoryRepo: inventoryRepo,
		threshold:     threshold,
	}
}

func (s *LowStockService) Check(ctx context.Context) ([]LowStockAlert, error) {
	inventories, err := s.inventoryRepo.ListBelowQuantity(ctx, s.threshold)
	if err != nil {
		return nil, err
	}

	alerts := make([]LowStockAlert, 0, len(inventories))
	for _, inv := range inventories {
		alerts = append(alerts, alertFor(inv, s.threshold))
	}
	return alerts, nil
}

func alertFor(inv *models.Inventory, threshold int) LowStockAlert {
	return LowStockAlert{
		InventoryID: inv.ID,
		WarehouseID: inv.WarehouseID,
		ItemName:    inv.ItemName,
		Quantity:    inv.Quantity,
		Threshold:   threshold,
	}
}
