package purchase

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
	requests  PurchaseRepository
	inventory InventoryReader
	notifs    NotificationSender
}

func NewService(requests PurchaseRepository, inventory InventoryReader, notifs NotificationSender) *Service {
	return &Service{requests: requests, inventory: inventory, notifs: notifs}
}

func newNumber() string {
	return fmt.Sprintf("PR-%s-%s", time.Now().Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}

func (s *Service) Create(ctx context.Context, req CreateRequest, actor domain.Actor) (*domain.PurchaseRequest, error) {
	if req.Quantity <= 0 {
		return nil, ErrValidation
	}

	item, err := s.inventory.GetByID(ctx, req.InventoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}

	total := domain.LineItemsTotal([]domain.CostLine{
		{Quantity: req.Quantity, UnitCost: item.UnitCost},
	})
	if req.TotalOverride != nil {
		override, err := decimal.NewFromString(*req.TotalOverride)
		if err != nil || override.IsNegative() {
			return nil, ErrValidation
		}
		total = override.Round(2)
	}

	urgency := domain.Urgency(req.Urgency)
	if urgency == "" {
		urgency = domain.UrgencyMedium
	}

	supplierID := req.SupplierID
	if supplierID == nil {
		supplierID = item.SupplierID
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}

	pr := &domain.PurchaseRequest{
		Number:         newNumber(),
		InventoryID:    req.InventoryID,
		ServiceOrderID: req.ServiceOrderID,
		SupplierID:     supplierID,
		Urgency:        urgency,
		Status:         domain.PurchasePending,
		Quantity:       req.Quantity,
		TotalAmount:    total,
		PurchaseDate:   purchaseDate,
		Notes:          req.Notes,
	}

	if err := s.requests.Create(ctx, pr); err != nil {
		return nil, err
	}
	return pr, nil
}

// CreateForShortfall opens a replenishment request when a service-order item
// hits an out-of-stock part. Urgency is forced high and the request keeps a
// back-reference to the order that triggered it.
func (s *Service) CreateForShortfall(ctx context.Context, inventoryID, quantity, orderID int64, actor domain.Actor) (*domain.PurchaseRequest, error) {
	return s.Create(ctx, CreateRequest{
		InventoryID:    inventoryID,
		Quantity:       quantity,
		Urgency:        string(domain.UrgencyHigh),
		ServiceOrderID: &orderID,
		Notes:          fmt.Sprintf("replenishment for service order #%d, requested by %s", orderID, actor.Name),
	}, actor)
}

// Get is side-effect-free: it reports drift instead of correcting it.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	pr, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{Request: pr, Drift: domain.TotalDrifted(pr.TotalAmount, s.computedTotal(pr))}, nil
}

func (s *Service) List(ctx context.Context, f repository.PurchaseListFilter) ([]domain.PurchaseRequest, int64, error) {
	return s.requests.List(ctx, f)
}

// Approve moves pending -> approved. approved_by and approval_date are
// written atomically with the status; the approver is the authenticated
// actor, never a client-supplied string.
func (s *Service) Approve(ctx context.Context, id int64, req ApproveRequest, actor domain.Actor) (*domain.PurchaseRequest, error) {
	pr, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr.Status == domain.PurchaseApproved {
		return pr, nil
	}
	if err := domain.CheckPurchaseTransition(pr.Status, domain.PurchaseApproved); err != nil {
		return nil, err
	}

	approvedBy := strings.TrimSpace(actor.Name)
	if approvedBy == "" {
		return nil, ErrValidation
	}
	approvalDate := time.Now()
	if req.ApprovalDate != nil {
		approvalDate = *req.ApprovalDate
	}

	err = s.requests.UpdateTransition(ctx, pr.ID, pr.Version, map[string]any{
		"status":        domain.PurchaseApproved,
		"approved_by":   approvedBy,
		"approval_date": approvalDate,
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, pr.Number, pr.Status, domain.PurchaseApproved)
	return s.load(ctx, id)
}

// Receive moves approved -> received. receiver_name, invoice_number and the
// receipt date are required and written atomically with the status.
func (s *Service) Receive(ctx context.Context, id int64, req ReceiveRequest, actor domain.Actor) (*domain.PurchaseRequest, error) {
	pr, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr.Status == domain.PurchaseReceived {
		return pr, nil
	}
	if err := domain.CheckPurchaseTransition(pr.Status, domain.PurchaseReceived); err != nil {
		return nil, err
	}

	receiver := strings.TrimSpace(actor.Name)
	if receiver == "" || strings.TrimSpace(req.InvoiceNumber) == "" {
		return nil, ErrValidation
	}
	receiptDate := time.Now()
	if req.ReceiptDate != nil {
		receiptDate = *req.ReceiptDate
	}

	err = s.requests.UpdateTransition(ctx, pr.ID, pr.Version, map[string]any{
		"status":         domain.PurchaseReceived,
		"receiver_name":  receiver,
		"invoice_number": strings.TrimSpace(req.InvoiceNumber),
		"delivery_date":  receiptDate,
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, pr.Number, pr.Status, domain.PurchaseReceived)
	return s.load(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id int64, req CancelRequest, actor domain.Actor) (*domain.PurchaseRequest, error) {
	pr, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr.Status == domain.PurchaseCancelled {
		return pr, nil
	}
	if err := domain.CheckPurchaseTransition(pr.Status, domain.PurchaseCancelled); err != nil {
		return nil, err
	}

	err = s.requests.UpdateTransition(ctx, pr.ID, pr.Version, map[string]any{
		"status":        domain.PurchaseCancelled,
		"cancel_reason": req.Reason,
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, pr.Number, pr.Status, domain.PurchaseCancelled)
	return s.load(ctx, id)
}

// Reconcile recomputes the derived total and overwrites the stored one when
// it drifts beyond a cent. This is the only operation that corrects totals;
// plain reads stay side-effect-free.
func (s *Service) Reconcile(ctx context.Context, id int64) (*ReconcileResult, error) {
	pr, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	computed := s.computedTotal(pr)
	if !domain.TotalDrifted(pr.TotalAmount, computed) {
		return &ReconcileResult{Request: pr, Corrected: false}, nil
	}

	if err := s.requests.UpdateTotal(ctx, pr.ID, pr.Version, computed); err != nil {
		return nil, err
	}

	pr, err = s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ReconcileResult{Request: pr, Corrected: true}, nil
}

func (s *Service) computedTotal(pr *domain.PurchaseRequest) decimal.Decimal {
	unitCost := decimal.Zero
	if pr.Inventory != nil {
		unitCost = pr.Inventory.UnitCost
	}
	return domain.LineItemsTotal([]domain.CostLine{
		{Quantity: pr.Quantity, UnitCost: unitCost},
	})
}

func (s *Service) load(ctx context.Context, id int64) (*domain.PurchaseRequest, error) {
	pr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pr, nil
}

func (s *Service) notify(ctx context.Context, number string, from, to domain.PurchaseStatus) {
	if s.notifs != nil {
		_ = s.notifs.NotifyPurchaseStatus(ctx, number, from, to)
	}
}
