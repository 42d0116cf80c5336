package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeProductViewed = "product.viewed"
	TypeCartItemAdded = "cart.item_added"
)

// Event is the envelope published for storefront analytics.
type Event struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	SessionID string    `json:"session_id"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

type ProductViewedPayload struct {
	ProductID int64 `json:"product_id"`
}

type CartItemAddedPayload struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// Publisher ships events somewhere. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

func New(eventType, sessionID string, payload any) Event {
	return Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		SessionID: sessionID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
