package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"instock/internal/models"
)

// DefaultTTL bounds staleness for cached by-id reads. The database stays
// authoritative; every mutation invalidates the affected keys as well.
const DefaultTTL = 5 * time.Minute

type CacheService interface {
	GetWarehouse(ctx context.Context, id int) (*models.Warehouse, error)
	SetWarehouse(ctx context.Context, warehouse *models.Warehouse, ttl time.Duration) error
	DeleteWarehouse(ctx context.Context, id int) error

	GetInventory(ctx context.Context, id int) (*models.InventoryDetail, error)
	SetInventory(ctx context.Context, detail *models.InventoryDetail, ttl time.Duration) error
	DeleteInventory(ctx context.Context, id int) error

	// InvalidateInventories drops every cached inventory projection. Needed
	// after any warehouse mutation: the projection embeds warehouse_name and
	// a warehouse delete cascades to inventory rows.
	InvalidateInventories(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return &redisCacheService{client: client}
}

func warehouseKey(id int) string {
	return fmt.Sprintf("instock:warehouse:%d", id)
}

func inventoryKey(id int) string {
	return fmt.Sprintf("instock:inventory:%d", id)
}

func (r *redisCacheService) GetWarehouse(ctx context.Context, id int) (*models.Warehouse, error) {
	data, err := r.client.Get(ctx, warehouseKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var warehouse models.Warehouse
	if err := json.Unmarshal(data, &warehouse); err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *redisCacheService) SetWarehouse(ctx context.Context, warehouse *models.Warehouse, ttl time.Duration) error {
	data, err := json.Marshal(warehouse)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, warehouseKey(warehouse.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteWarehouse(ctx context.Context, id int) error {
	return r.client.Del(ctx, warehouseKey(id)).Err()
}

func (r *redisCacheService) GetInventory(ctx context.Context, id int) (*models.InventoryDetail, error) {
	data, err := r.client.Get(ctx, inventoryKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var detail models.InventoryDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *redisCacheService) SetInventory(ctx context.Context, detail *models.InventoryDetail, ttl time.Duration) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, inventoryKey(detail.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteInventory(ctx context.Context, id int) error {
	return r.client.Del(ctx, inventoryKey(id)).Err()
}

func (r *redisCacheService) InvalidateInventories(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "instock:inventory:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
