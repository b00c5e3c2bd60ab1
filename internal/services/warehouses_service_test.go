package services

import (
	"context"
	"testing"
	"time"

	pgx "github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"instock/internal/models"
)

// Mock repositories and a pass-through cache

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *models.Warehouse) (int, error) {
	args := m.Called(ctx, warehouse)
	return args.Int(0), args.Error(1)
}

func (m *MockWarehouseRepository) GetByID(ctx context.Context, id int) (*models.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, warehouse *models.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarehouseRepository) List(ctx context.Context) ([]*models.Warehouse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Search(ctx context.Context, query string) ([]*models.Warehouse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, inventory *models.Inventory) (int, error) {
	args := m.Called(ctx, inventory)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, id int) (*models.InventoryDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryDetail), args.Error(1)
}

func (m *MockInventoryRepository) Update(ctx context.Context, inventory *models.Inventory) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryRepository) List(ctx context.Context) ([]*models.InventoryDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.InventoryDetail), args.Error(1)
}

func (m *MockInventoryRepository) Search(ctx context.Context, query string) ([]*models.InventoryDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*models.InventoryDetail), args.Error(1)
}

func (m *MockInventoryRepository) ListByWarehouse(ctx context.Context, warehouseID int) ([]*models.Inventory, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).([]*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) ListBelowQuantity(ctx context.Context, threshold int) ([]*models.Inventory, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// fakeCache is an in-memory stand-in for the redis cache.
type fakeCache struct {
	warehouses  map[int]*models.Warehouse
	inventories map[int]*models.InventoryDetail
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		warehouses:  make(map[int]*models.Warehouse),
		inventories: make(map[int]*models.InventoryDetail),
	}
}

func (f *fakeCache) GetWarehouse(_ context.Context, id int) (*models.Warehouse, error) {
	return f.warehouses[id], nil
}

func (f *fakeCache) SetWarehouse(_ context.Context, w *models.Warehouse, _ time.Duration) error {
	f.warehouses[w.ID] = w
	return nil
}

func (f *fakeCache) DeleteWarehouse(_ context.Context, id int) error {
	delete(f.warehouses, id)
	return nil
}

func (f *fakeCache) GetInventory(_ context.Context, id int) (*models.InventoryDetail, error) {
	return f.inventories[id], nil
}

func (f *fakeCache) SetInventory(_ context.Context, d *models.InventoryDetail, _ time.Duration) error {
	f.inventories[d.ID] = d
	return nil
}

func (f *fakeCache) DeleteInventory(_ context.Context, id int) error {
	delete(f.inventories, id)
	return nil
}

func (f *fakeCache) InvalidateInventories(_ context.Context) error {
	f.inventories = make(map[int]*models.InventoryDetail)
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func validWarehouse() *models.Warehouse {
	return &models.Warehouse{
		WarehouseName:   "W1",
		Address:         "1 St",
		City:            "C",
		Country:         "Co",
		ContactName:     "N",
		ContactPosition: "P",
		ContactEmail:    "n@x.com",
		ContactPhone:    "+12345678901",
	}
}

type WarehouseServiceTestSuite struct {
	suite.Suite
	warehouseRepo *MockWarehouseRepository
	inventoryRepo *MockInventoryRepository
	cache         *fakeCache
	service       WarehouseService
	context       context.Context
}

func (suite *WarehouseServiceTestSuite) SetupTest() {
	suite.warehouseRepo = new(MockWarehouseRepository)
	suite.inventoryRepo = new(MockInventoryRepository)
	suite.cache = newFakeCache()
	suite.service = NewWarehouseService(suite.warehouseRepo, suite.inventoryRepo, suite.cache)
	suite.context = context.Background()
}

func TestWarehouseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseServiceTestSuite))
}

func (suite *WarehouseServiceTestSuite) TestCreate_ReReadsByGeneratedID() {
	input := validWarehouse()
	stored := validWarehouse()
	stored.ID = 1

	suite.warehouseRepo.On("Create", suite.context, input).Return(1, nil)
	suite.warehouseRepo.On("GetByID", suite.context, 1).Return(stored, nil)

	created, err := suite.service.Create(suite.context, input)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, created.ID)
	assert.Equal(suite.T(), "W1", created.WarehouseName)
	suite.warehouseRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseServiceTestSuite) TestCreate_MissingFieldRejected() {
	input := validWarehouse()
	input.City = ""

	created, err := suite.service.Create(suite.context, input)
	assert.Nil(suite.T(), created)
	assert.True(suite.T(), IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "city")
	suite.warehouseRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestCreate_BadEmailRejected() {
	input := validWarehouse()
	input.ContactEmail = "a-b.com"

	_, err := suite.service.Create(suite.context, input)
	assert.True(suite.T(), IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "contact_email")
}

func (suite *WarehouseServiceTestSuite) TestCreate_BadPhoneRejected() {
	input := validWarehouse()
	input.ContactPhone = "not-a-phone"

	_, err := suite.service.Create(suite.context, input)
	assert.True(suite.T(), IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "contact_phone")
}

func (suite *WarehouseServiceTestSuite) TestGetByID_MapsNoRowsToNotFound() {
	suite.warehouseRepo.On("GetByID", suite.context, 99).Return(nil, pgx.ErrNoRows)

	warehouse, err := suite.service.GetByID(suite.context, 99)
	assert.Nil(suite.T(), warehouse)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *WarehouseServiceTestSuite) TestGetByID_SecondReadServedFromCache() {
	stored := validWarehouse()
	stored.ID = 1

	suite.warehouseRepo.On("GetByID", suite.context, 1).Return(stored, nil).Once()

	first, err := suite.service.GetByID(suite.context, 1)
	assert.NoError(suite.T(), err)

	second, err := suite.service.GetByID(suite.context, 1)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), first, second)
	suite.warehouseRepo.AssertNumberOfCalls(suite.T(), "GetByID", 1)
}

func (suite *WarehouseServiceTestSuite) TestSearch_EmptyQueryRejected() {
	warehouses, err := suite.service.Search(suite.context, "")
	assert.Nil(suite.T(), warehouses)
	assert.True(suite.T(), IsValidation(err))
	suite.warehouseRepo.AssertNotCalled(suite.T(), "Search", mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestSearch_DelegatesToRepo() {
	stored := validWarehouse()
	stored.ID = 1
	suite.warehouseRepo.On("Search", suite.context, "W1").Return([]*models.Warehouse{stored}, nil)

	warehouses, err := suite.service.Search(suite.context, "W1")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), warehouses, 1)
}

func (suite *WarehouseServiceTestSuite) TestUpdate_NotFound() {
	input := validWarehouse()
	suite.warehouseRepo.On("GetByID", suite.context, 42).Return(nil, pgx.ErrNoRows)

	updated, err := suite.service.Update(suite.context, 42, input)
	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *WarehouseServiceTestSuite) TestUpdate_InvalidPayloadCheckedBeforeExistence() {
	input := validWarehouse()
	input.WarehouseName = ""

	_, err := suite.service.Update(suite.context, 42, input)
	assert.True(suite.T(), IsValidation(err))
	suite.warehouseRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestUpdate_ReplacesAndInvalidatesCaches() {
	existing := validWarehouse()
	existing.ID = 1
	suite.cache.warehouses[1] = existing
	suite.cache.inventories[3] = &models.InventoryDetail{ID: 3, WarehouseID: 1, WarehouseName: "W1"}

	input := validWarehouse()
	input.WarehouseName = "W1 renamed"
	updated := validWarehouse()
	updated.ID = 1
	updated.WarehouseName = "W1 renamed"

	// The stale cached row must not short-circuit the existence read, so the
	// service goes to the repository for it.
	suite.warehouseRepo.On("GetByID", suite.context, 1).Return(existing, nil).Once()
	suite.warehouseRepo.On("Update", suite.context, mock.MatchedBy(func(w *models.Warehouse) bool {
		return w.ID == 1 && w.WarehouseName == "W1 renamed"
	})).Return(nil)
	suite.warehouseRepo.On("GetByID", suite.context, 1).Return(updated, nil).Once()

	result, err := suite.service.Update(suite.context, 1, input)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "W1 renamed", result.WarehouseName)
	assert.NotContains(suite.T(), suite.cache.warehouses, 1)
	assert.Empty(suite.T(), suite.cache.inventories)
}

func (suite *WarehouseServiceTestSuite) TestDelete_NotFound() {
	suite.warehouseRepo.On("Exists", suite.context, 5).Return(false, nil)

	err := suite.service.Delete(suite.context, 5)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
	suite.warehouseRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestDelete_DropsCachedInventories() {
	suite.cache.inventories[3] = &models.InventoryDetail{ID: 3, WarehouseID: 1}
	suite.warehouseRepo.On("Exists", suite.context, 1).Return(true, nil)
	suite.warehouseRepo.On("Delete", suite.context, 1).Return(nil)

	err := suite.service.Delete(suite.context, 1)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), suite.cache.inventories)
}

func (suite *WarehouseServiceTestSuite) TestListInventories_WarehouseMissing() {
	suite.warehouseRepo.On("Exists", suite.context, 9).Return(false, nil)

	inventories, err := suite.service.ListInventories(suite.context, 9)
	assert.Nil(suite.T(), inventories)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *WarehouseServiceTestSuite) TestListInventories_Success() {
	suite.warehouseRepo.On("Exists", suite.context, 1).Return(true, nil)
	suite.inventoryRepo.On("ListByWarehouse", suite.context, 1).Return([]*models.Inventory{
		{ID: 1, WarehouseID: 1, ItemName: "Item 1"},
	}, nil)

	inventories, err := suite.service.ListInventories(suite.context, 1)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), inventories, 1)
}
