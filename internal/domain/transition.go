package domain

import "fmt"

// TransitionError reports a status change outside the legal set. The UI is
// expected to never produce one; the guard exists as defense in depth.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition: %s -> %s", e.Entity, e.From, e.To)
}

var purchaseTransitions = map[PurchaseStatus]map[PurchaseStatus]bool{
	PurchasePending: {
		PurchaseApproved:  true,
		PurchaseCancelled: true,
	},
	PurchaseApproved: {
		PurchaseReceived:  true,
		PurchaseCancelled: true,
	},
	// received and cancelled are absorbing
	PurchaseReceived:  {},
	PurchaseCancelled: {},
}

var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderOpen: {
		OrderInProgress: true,
		OrderCompleted:  true,
		OrderCancelled:  true,
	},
	OrderInProgress: {
		OrderCompleted: true,
		OrderCancelled: true,
	},
	// completed and cancelled are absorbing
	OrderCompleted: {},
	OrderCancelled: {},
}

// CheckPurchaseTransition returns nil when from -> to is legal. A no-op
// (from == to) is legal; callers skip the write.
func CheckPurchaseTransition(from, to PurchaseStatus) error {
	if from == to {
		return nil
	}
	if purchaseTransitions[from][to] {
		return nil
	}
	return &TransitionError{Entity: "purchase request", From: string(from), To: string(to)}
}

// CheckOrderTransition returns nil when from -> to is legal. A no-op
// (from == to) is legal; callers skip the write.
func CheckOrderTransition(from, to OrderStatus) error {
	if from == to {
		return nil
	}
	if orderTransitions[from][to] {
		return nil
	}
	return &TransitionError{Entity: "service order", From: string(from), To: string(to)}
}
