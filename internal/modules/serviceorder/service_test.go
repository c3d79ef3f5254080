package serviceorder

import (
	"context"
	"testing"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.ServiceOrder) error {
	args := m.Called(ctx, o)
	if o != nil {
		o.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, f repository.OrderListFilter) ([]domain.ServiceOrder, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateTransition(ctx context.Context, id, version int64, fields map[string]any) error {
	args := m.Called(ctx, id, version, fields)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateEstimatedCost(ctx context.Context, id, version int64, cost decimal.Decimal) error {
	args := m.Called(ctx, id, version, cost)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateItem(ctx context.Context, item *domain.ServiceOrderItem) error {
	args := m.Called(ctx, item)
	if item != nil {
		item.ID = 301
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetItems(ctx context.Context, orderID int64) ([]domain.ServiceOrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrderItem), args.Error(1)
}

type MockVehicleReader struct {
	mock.Mock
}

func (m *MockVehicleReader) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type MockInventoryReader struct {
	mock.Mock
}

func (m *MockInventoryReader) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

type MockReplenisher struct {
	mock.Mock
}

func (m *MockReplenisher) CreateForShortfall(ctx context.Context, inventoryID, quantity, orderID int64, actor domain.Actor) (*domain.PurchaseRequest, error) {
	args := m.Called(ctx, inventoryID, quantity, orderID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseRequest), args.Error(1)
}

type MockPurchaseStatusReader struct {
	mock.Mock
}

func (m *MockPurchaseStatusReader) StatusByID(ctx context.Context, id int64) (domain.PurchaseStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.PurchaseStatus), args.Error(1)
}

type fixture struct {
	orders      *MockOrderRepository
	vehicles    *MockVehicleReader
	inventory   *MockInventoryReader
	replenisher *MockReplenisher
	purchases   *MockPurchaseStatusReader
	service     *Service
}

func newFixture() *fixture {
	f := &fixture{
		orders:      new(MockOrderRepository),
		vehicles:    new(MockVehicleReader),
		inventory:   new(MockInventoryReader),
		replenisher: new(MockReplenisher),
		purchases:   new(MockPurchaseStatusReader),
	}
	f.service = NewService(f.orders, f.vehicles, f.inventory, f.replenisher, f.purchases, nil)
	return f
}

func mechanic() domain.Actor {
	return domain.Actor{UserID: 9, Name: "Bekzat Mechanic", Role: domain.RoleMechanic}
}

func supervisor() domain.Actor {
	return domain.Actor{UserID: 5, Name: "Aslan Manager", Role: domain.RoleManager}
}

func openOrder() *domain.ServiceOrder {
	return &domain.ServiceOrder{
		ID:            77,
		Number:        "SO-20260831-BBBB0001",
		VehicleID:     3,
		Status:        domain.OrderOpen,
		Priority:      domain.UrgencyMedium,
		Type:          domain.OrderCorrective,
		EstimatedCost: decimal.Zero,
		Version:       2,
	}
}

func TestService_Create_Defaults(t *testing.T) {
	f := newFixture()
	f.vehicles.On("GetByID", mock.Anything, int64(3)).Return(&domain.Vehicle{ID: 3}, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	o, err := f.service.Create(context.Background(), CreateRequest{
		VehicleID:   3,
		Description: "Brake inspection",
	}, mechanic())

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderOpen, o.Status)
	assert.Equal(t, domain.UrgencyMedium, o.Priority)
	assert.Equal(t, domain.OrderCorrective, o.Type)
	assert.True(t, o.EstimatedCost.IsZero())
	assert.NotEmpty(t, o.Number)
}

func TestService_Create_UnknownVehicle(t *testing.T) {
	f := newFixture()
	f.vehicles.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.Create(context.Background(), CreateRequest{VehicleID: 99, Description: "x"}, mechanic())

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

// A sufficient part lands as a plain item and the order total is brought in
// line with the new line set.
func TestService_AddItem_SufficientStockReconcilesCost(t *testing.T) {
	f := newFixture()
	inventoryID := int64(7)
	pad := &domain.InventoryItem{
		ID:       7,
		Name:     "Brake pad set",
		Quantity: 12,
		UnitCost: decimal.RequireFromString("40.00"),
	}

	f.orders.On("GetByID", mock.Anything, int64(77)).Return(openOrder(), nil)
	f.inventory.On("GetByID", mock.Anything, int64(7)).Return(pad, nil)
	f.orders.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *domain.ServiceOrderItem) bool {
		return item.StockFlag == domain.StockSufficient && item.RequiredQuantity == 2
	})).Return(nil)
	f.orders.On("GetItems", mock.Anything, int64(77)).Return([]domain.ServiceOrderItem{
		{OrderID: 77, InventoryID: &inventoryID, RequiredQuantity: 2, Inventory: pad},
	}, nil)
	f.orders.On("UpdateEstimatedCost", mock.Anything, int64(77), int64(2),
		mock.MatchedBy(func(cost decimal.Decimal) bool {
			return cost.Equal(decimal.RequireFromString("80.00"))
		})).Return(nil)

	item, err := f.service.AddItem(context.Background(), 77, AddItemRequest{
		InventoryID:      &inventoryID,
		RequiredQuantity: 2,
	}, mechanic())

	assert.NoError(t, err)
	assert.Equal(t, "Brake pad set", item.Description)
	f.orders.AssertExpectations(t)
	f.replenisher.AssertNotCalled(t, "CreateForShortfall",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Short stock: the item is created flagged insufficient and a replenishment
// request for the missing quantity is opened and linked.
func TestService_AddItem_InsufficientStockFlagsAndReplenishes(t *testing.T) {
	f := newFixture()
	inventoryID := int64(7)
	pad := &domain.InventoryItem{
		ID:       7,
		Name:     "Brake pad set",
		Quantity: 3,
		UnitCost: decimal.RequireFromString("40.00"),
	}

	f.orders.On("GetByID", mock.Anything, int64(77)).Return(openOrder(), nil)
	f.inventory.On("GetByID", mock.Anything, int64(7)).Return(pad, nil)
	f.replenisher.On("CreateForShortfall", mock.Anything, int64(7), int64(2), int64(77), mock.Anything).
		Return(&domain.PurchaseRequest{ID: 501, Number: "PR-20260831-CCCC0001"}, nil)
	f.orders.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *domain.ServiceOrderItem) bool {
		return item.StockFlag == domain.StockInsufficient &&
			item.PurchaseRequestID != nil && *item.PurchaseRequestID == 501
	})).Return(nil)
	f.orders.On("GetItems", mock.Anything, int64(77)).Return([]domain.ServiceOrderItem{
		{OrderID: 77, InventoryID: &inventoryID, RequiredQuantity: 5, Inventory: pad},
	}, nil)
	f.orders.On("UpdateEstimatedCost", mock.Anything, int64(77), int64(2), mock.Anything).Return(nil)

	item, err := f.service.AddItem(context.Background(), 77, AddItemRequest{
		InventoryID:      &inventoryID,
		RequiredQuantity: 5,
	}, mechanic())

	assert.NoError(t, err)
	assert.Equal(t, domain.StockInsufficient, item.StockFlag)
	f.orders.AssertExpectations(t)
	f.replenisher.AssertExpectations(t)
}

// Zero stock aborts the addition: no item row, a high-urgency replenishment
// request instead, and the caller gets the shortfall payload.
func TestService_AddItem_OutOfStockAborts(t *testing.T) {
	f := newFixture()
	inventoryID := int64(7)
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(openOrder(), nil)
	f.inventory.On("GetByID", mock.Anything, int64(7)).Return(&domain.InventoryItem{
		ID:       7,
		Quantity: 0,
		UnitCost: decimal.RequireFromString("40.00"),
	}, nil)
	f.replenisher.On("CreateForShortfall", mock.Anything, int64(7), int64(4), int64(77), mock.Anything).
		Return(&domain.PurchaseRequest{ID: 502, Number: "PR-20260831-DDDD0001"}, nil)

	_, err := f.service.AddItem(context.Background(), 77, AddItemRequest{
		InventoryID:      &inventoryID,
		RequiredQuantity: 4,
	}, mechanic())

	var oerr *OutOfStockError
	assert.ErrorAs(t, err, &oerr)
	assert.Equal(t, int64(7), oerr.InventoryID)
	assert.Equal(t, int64(4), oerr.RequestedQuantity)
	assert.NotNil(t, oerr.PurchaseRequestID)
	assert.Equal(t, "PR-20260831-DDDD0001", oerr.PurchaseNumber)
	f.orders.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestService_AddItem_ClosedOrder(t *testing.T) {
	f := newFixture()
	closed := openOrder()
	closed.Status = domain.OrderCompleted
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(closed, nil)

	inventoryID := int64(7)
	_, err := f.service.AddItem(context.Background(), 77, AddItemRequest{
		InventoryID:      &inventoryID,
		RequiredQuantity: 1,
	}, mechanic())

	assert.ErrorIs(t, err, ErrOrderClosed)
	f.orders.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestService_Complete_Success(t *testing.T) {
	f := newFixture()
	inProgress := openOrder()
	inProgress.Status = domain.OrderInProgress
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(inProgress, nil).Once()
	f.orders.On("UpdateTransition", mock.Anything, int64(77), int64(2),
		mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == domain.OrderCompleted &&
				fields["validated_by"] == "Aslan Manager" &&
				fields["validation_date"] != nil &&
				fields["end_date"] != nil
		})).Return(nil)
	done := openOrder()
	done.Status = domain.OrderCompleted
	done.ValidatedBy = "Aslan Manager"
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(done, nil).Once()

	got, err := f.service.Complete(context.Background(), 77, CompleteRequest{}, supervisor())

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, got.Status)
	f.orders.AssertExpectations(t)
}

// Completing without an actor name fails with a validation error and writes
// nothing.
func TestService_Complete_MissingValidatorName(t *testing.T) {
	f := newFixture()
	inProgress := openOrder()
	inProgress.Status = domain.OrderInProgress
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(inProgress, nil)

	_, err := f.service.Complete(context.Background(), 77, CompleteRequest{},
		domain.Actor{UserID: 5, Name: "", Role: domain.RoleManager})

	assert.ErrorIs(t, err, ErrValidation)
	f.orders.AssertNotCalled(t, "UpdateTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// completed and cancelled are absorbing: work cannot restart.
func TestService_Start_FromTerminalRejected(t *testing.T) {
	for _, status := range []domain.OrderStatus{domain.OrderCompleted, domain.OrderCancelled} {
		f := newFixture()
		terminal := openOrder()
		terminal.Status = status
		f.orders.On("GetByID", mock.Anything, int64(77)).Return(terminal, nil)

		_, err := f.service.Start(context.Background(), 77, StartRequest{}, mechanic())

		var terr *domain.TransitionError
		assert.ErrorAs(t, err, &terr, "start from %s must fail", status)
		f.orders.AssertNotCalled(t, "UpdateTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestService_Start_VersionConflict(t *testing.T) {
	f := newFixture()
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(openOrder(), nil)
	f.orders.On("UpdateTransition", mock.Anything, int64(77), int64(2), mock.Anything).
		Return(repository.ErrVersionConflict)

	_, err := f.service.Start(context.Background(), 77, StartRequest{}, mechanic())

	assert.ErrorIs(t, err, repository.ErrVersionConflict)
}

func TestService_Reconcile_CorrectsDriftedCost(t *testing.T) {
	f := newFixture()
	inventoryID := int64(7)
	pad := &domain.InventoryItem{ID: 7, UnitCost: decimal.RequireFromString("40.00")}

	drifted := openOrder()
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(drifted, nil).Once()
	f.orders.On("GetItems", mock.Anything, int64(77)).Return([]domain.ServiceOrderItem{
		{OrderID: 77, InventoryID: &inventoryID, RequiredQuantity: 2, Inventory: pad},
	}, nil)
	f.orders.On("UpdateEstimatedCost", mock.Anything, int64(77), int64(2),
		mock.MatchedBy(func(cost decimal.Decimal) bool {
			return cost.Equal(decimal.RequireFromString("80.00"))
		})).Return(nil)
	corrected := openOrder()
	corrected.EstimatedCost = decimal.RequireFromString("80.00")
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(corrected, nil).Once()

	res, err := f.service.Reconcile(context.Background(), 77)

	assert.NoError(t, err)
	assert.True(t, res.Corrected)
	assert.True(t, res.Order.EstimatedCost.Equal(decimal.RequireFromString("80.00")))
	f.orders.AssertExpectations(t)
}

// Labor lines carry no inventory link and contribute zero to the total.
func TestService_Reconcile_LaborLinesContributeZero(t *testing.T) {
	f := newFixture()
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(openOrder(), nil)
	f.orders.On("GetItems", mock.Anything, int64(77)).Return([]domain.ServiceOrderItem{
		{OrderID: 77, Description: "Labor: brake bleed", RequiredQuantity: 1},
	}, nil)

	res, err := f.service.Reconcile(context.Background(), 77)

	assert.NoError(t, err)
	assert.False(t, res.Corrected)
	f.orders.AssertNotCalled(t, "UpdateEstimatedCost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A cancelled linked purchase request never mutates the item; reads surface
// it as a flag.
func TestService_Get_FlagsCancelledReplenishment(t *testing.T) {
	f := newFixture()
	prID := int64(501)
	withLink := openOrder()
	withLink.Items = []domain.ServiceOrderItem{
		{ID: 301, OrderID: 77, RequiredQuantity: 5, StockFlag: domain.StockInsufficient, PurchaseRequestID: &prID},
	}
	f.orders.On("GetByID", mock.Anything, int64(77)).Return(withLink, nil)
	f.purchases.On("StatusByID", mock.Anything, int64(501)).Return(domain.PurchaseCancelled, nil)

	detail, err := f.service.Get(context.Background(), 77)

	assert.NoError(t, err)
	assert.Len(t, detail.Items, 1)
	assert.True(t, detail.Items[0].ReplenishmentCancelled)
	assert.NotNil(t, detail.Items[0].Item.PurchaseRequestID, "link survives cancellation")
	f.orders.AssertNotCalled(t, "UpdateTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "UpdateEstimatedCost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Get_NotFound(t *testing.T) {
	f := newFixture()
	f.orders.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.Get(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
