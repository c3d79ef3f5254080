package serviceorder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	orders      OrderRepository
	vehicles    VehicleReader
	inventory   InventoryReader
	replenisher Replenisher
	purchases   PurchaseStatusReader
	notifs      NotificationSender
}

func NewService(orders OrderRepository, vehicles VehicleReader, inventory InventoryReader,
	replenisher Replenisher, purchases PurchaseStatusReader, notifs NotificationSender) *Service {
	return &Service{
		orders:      orders,
		vehicles:    vehicles,
		inventory:   inventory,
		replenisher: replenisher,
		purchases:   purchases,
		notifs:      notifs,
	}
}

func newOrderNumber() string {
	return fmt.Sprintf("SO-%s-%s", time.Now().Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}

func (s *Service) Create(ctx context.Context, req CreateRequest, actor domain.Actor) (*domain.ServiceOrder, error) {
	if _, err := s.vehicles.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	priority := domain.Urgency(req.Priority)
	if priority == "" {
		priority = domain.UrgencyMedium
	}
	orderType := domain.OrderType(req.Type)
	if orderType == "" {
		orderType = domain.OrderCorrective
	}

	o := &domain.ServiceOrder{
		Number:         newOrderNumber(),
		VehicleID:      req.VehicleID,
		DriverID:       req.DriverID,
		Description:    req.Description,
		Status:         domain.OrderOpen,
		Priority:       priority,
		Type:           orderType,
		CurrentMileage: req.CurrentMileage,
		Mechanic:       req.Mechanic,
		ScheduledDate:  req.ScheduledDate,
		EstimatedCost:  decimal.Zero,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Get is side-effect-free: it reports cost drift and stale replenishment
// links instead of correcting them.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.itemDetails(ctx, o.Items)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Order: o,
		Items: items,
		Drift: domain.TotalDrifted(o.EstimatedCost, computedCost(o.Items)),
	}, nil
}

func (s *Service) List(ctx context.Context, f repository.OrderListFilter) ([]domain.ServiceOrder, int64, error) {
	return s.orders.List(ctx, f)
}

// AddItem attaches a part or labor line to an open order. Parts are checked
// against stock first: an out-of-stock part aborts the addition and opens a
// high-urgency replenishment request instead; a short stock creates the item
// flagged insufficient. The order's estimated cost is reconciled afterwards.
func (s *Service) AddItem(ctx context.Context, orderID int64, req AddItemRequest, actor domain.Actor) (*domain.ServiceOrderItem, error) {
	o, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Terminal() {
		return nil, ErrOrderClosed
	}
	if req.RequiredQuantity <= 0 {
		return nil, ErrValidation
	}
	if req.InventoryID == nil && strings.TrimSpace(req.Description) == "" {
		return nil, ErrValidation
	}

	item := &domain.ServiceOrderItem{
		OrderID:          o.ID,
		InventoryID:      req.InventoryID,
		Description:      req.Description,
		RequiredQuantity: req.RequiredQuantity,
	}

	if req.InventoryID != nil {
		part, err := s.inventory.GetByID(ctx, *req.InventoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInventoryNotFound
			}
			return nil, err
		}
		if item.Description == "" {
			item.Description = part.Name
		}

		level := domain.ClassifyStock(part.Quantity, req.RequiredQuantity)
		if level == domain.StockOutOfStock {
			return nil, s.abortForShortfall(ctx, o, part.ID, req.RequiredQuantity, actor)
		}
		item.StockFlag = level

		// A short stock still gets its item, plus a replenishment request
		// for the missing quantity, linked for later inspection.
		if level == domain.StockInsufficient && s.replenisher != nil {
			pr, err := s.replenisher.CreateForShortfall(ctx, part.ID, req.RequiredQuantity-part.Quantity, o.ID, actor)
			if err != nil {
				return nil, err
			}
			item.PurchaseRequestID = &pr.ID
		}
	}

	if err := s.orders.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	// Keep the persisted total consistent with the new line set.
	if _, err := s.Reconcile(ctx, o.ID); err != nil {
		return nil, err
	}
	return item, nil
}

// abortForShortfall builds the OutOfStockError for an aborted item, opening
// the replenishment request when a purchase module is wired in.
func (s *Service) abortForShortfall(ctx context.Context, o *domain.ServiceOrder, inventoryID, quantity int64, actor domain.Actor) error {
	oerr := &OutOfStockError{InventoryID: inventoryID, RequestedQuantity: quantity}
	if s.replenisher != nil {
		pr, err := s.replenisher.CreateForShortfall(ctx, inventoryID, quantity, o.ID, actor)
		if err != nil {
			return err
		}
		oerr.PurchaseRequestID = &pr.ID
		oerr.PurchaseNumber = pr.Number
	}
	return oerr
}

// Start moves open -> in_progress and stamps the start date. An optional
// mechanic assignment rides along with the status write.
func (s *Service) Start(ctx context.Context, id int64, req StartRequest, actor domain.Actor) (*domain.ServiceOrder, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderInProgress {
		return o, nil
	}
	if err := domain.CheckOrderTransition(o.Status, domain.OrderInProgress); err != nil {
		return nil, err
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	fields := map[string]any{
		"status":     domain.OrderInProgress,
		"start_date": startDate,
	}
	if m := strings.TrimSpace(req.Mechanic); m != "" {
		fields["mechanic"] = m
	}

	if err := s.orders.UpdateTransition(ctx, o.ID, o.Version, fields); err != nil {
		return nil, err
	}

	s.notify(ctx, o.Number, o.Status, domain.OrderInProgress)
	return s.load(ctx, id)
}

// Complete closes the order. validated_by and validation_date are written
// atomically with the status; the validator is the authenticated actor,
// never a client-supplied string.
func (s *Service) Complete(ctx context.Context, id int64, req CompleteRequest, actor domain.Actor) (*domain.ServiceOrder, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderCompleted {
		return o, nil
	}
	if err := domain.CheckOrderTransition(o.Status, domain.OrderCompleted); err != nil {
		return nil, err
	}

	validatedBy := strings.TrimSpace(actor.Name)
	if validatedBy == "" {
		return nil, ErrValidation
	}
	validationDate := time.Now()
	if req.ValidationDate != nil {
		validationDate = *req.ValidationDate
	}
	endDate := validationDate
	if req.EndDate != nil {
		endDate = *req.EndDate
	}

	err = s.orders.UpdateTransition(ctx, o.ID, o.Version, map[string]any{
		"status":          domain.OrderCompleted,
		"validated_by":    validatedBy,
		"validation_date": validationDate,
		"end_date":        endDate,
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, o.Number, o.Status, domain.OrderCompleted)
	return s.load(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id int64, req CancelRequest, actor domain.Actor) (*domain.ServiceOrder, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderCancelled {
		return o, nil
	}
	if err := domain.CheckOrderTransition(o.Status, domain.OrderCancelled); err != nil {
		return nil, err
	}

	err = s.orders.UpdateTransition(ctx, o.ID, o.Version, map[string]any{
		"status":        domain.OrderCancelled,
		"cancel_reason": req.Reason,
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, o.Number, o.Status, domain.OrderCancelled)
	return s.load(ctx, id)
}

// Reconcile recomputes the estimated cost from the line items and overwrites
// the stored one when it drifts beyond a cent. This is the only operation
// that corrects totals; plain reads stay side-effect-free.
func (s *Service) Reconcile(ctx context.Context, id int64) (*ReconcileResult, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.orders.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}

	computed := computedCost(items)
	if !domain.TotalDrifted(o.EstimatedCost, computed) {
		return &ReconcileResult{Order: o, Corrected: false}, nil
	}

	if err := s.orders.UpdateEstimatedCost(ctx, o.ID, o.Version, computed); err != nil {
		return nil, err
	}

	o, err = s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ReconcileResult{Order: o, Corrected: true}, nil
}

// ExportSnapshot reconciles first, then serializes, so the exported document
// never carries a drifted cost.
func (s *Service) ExportSnapshot(ctx context.Context, id int64) (*Export, error) {
	if _, err := s.Reconcile(ctx, id); err != nil {
		return nil, err
	}

	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.itemDetails(ctx, o.Items)
	if err != nil {
		return nil, err
	}

	return &Export{Order: o, Items: items, GeneratedAt: time.Now()}, nil
}

// itemDetails decorates items with read-time flags. Cancelling a linked
// purchase request leaves the item untouched; the stale link surfaces here.
func (s *Service) itemDetails(ctx context.Context, items []domain.ServiceOrderItem) ([]ItemDetail, error) {
	details := make([]ItemDetail, 0, len(items))
	for _, item := range items {
		d := ItemDetail{Item: item}
		if item.PurchaseRequestID != nil && s.purchases != nil {
			status, err := s.purchases.StatusByID(ctx, *item.PurchaseRequestID)
			if err != nil {
				return nil, err
			}
			d.ReplenishmentCancelled = status == domain.PurchaseCancelled
		}
		details = append(details, d)
	}
	return details, nil
}

// computedCost sums quantity x unit cost over the items. Labor lines and
// parts without a resolved inventory record contribute zero.
func computedCost(items []domain.ServiceOrderItem) decimal.Decimal {
	lines := make([]domain.CostLine, 0, len(items))
	for _, item := range items {
		unitCost := decimal.Zero
		if item.Inventory != nil {
			unitCost = item.Inventory.UnitCost
		}
		lines = append(lines, domain.CostLine{Quantity: item.RequiredQuantity, UnitCost: unitCost})
	}
	return domain.LineItemsTotal(lines)
}

func (s *Service) load(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) notify(ctx context.Context, number string, from, to domain.OrderStatus) {
	if s.notifs != nil {
		_ = s.notifs.NotifyOrderStatus(ctx, number, from, to)
	}
}
