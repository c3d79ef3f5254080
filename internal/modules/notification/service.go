package notification

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

// Event is the wire format pushed to connected clients.
type Event struct {
	Kind      string    `json:"kind"`
	Number    string    `json:"number"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
}

// Service broadcasts workflow status changes over the hub. It satisfies the
// purchase and service-order NotificationSender interfaces; senders treat it
// as best-effort and ignore failures.
type Service struct {
	hub *Hub
}

func NewService(hub *Hub) *Service {
	return &Service{hub: hub}
}

func (s *Service) NotifyPurchaseStatus(ctx context.Context, number string, from, to domain.PurchaseStatus) error {
	s.hub.Broadcast(Event{
		Kind:      "purchase_request",
		Number:    number,
		From:      string(from),
		To:        string(to),
		Timestamp: time.Now(),
	})
	return nil
}

func (s *Service) NotifyOrderStatus(ctx context.Context, number string, from, to domain.OrderStatus) error {
	s.hub.Broadcast(Event{
		Kind:      "service_order",
		Number:    number,
		From:      string(from),
		To:        string(to),
		Timestamp: time.Now(),
	})
	return nil
}
