// Package events publishes domain notifications about round-ups and
// investment sweeps.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gulfacorns/internal/models"
	"gulfacorns/internal/money"
)

// Event types double as AMQP routing keys.
const (
	TypeRoundUpRecorded = "roundup.recorded"
	TypeInvestSettled   = "invest.settled"
)

// Event is the JSON message published for every notable state change.
type Event struct {
	Type       string          `json:"type"`
	UserID     string          `json:"user_id"`
	ResourceID string          `json:"resource_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Portfolio  string          `json:"portfolio,omitempty"`
	Message    string          `json:"message"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Publisher delivers events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// NewRoundUpRecorded describes the ledger entry created for a purchase.
func NewRoundUpRecorded(p *models.Purchase) *Event {
	return &Event{
		Type:       TypeRoundUpRecorded,
		UserID:     p.UserID,
		ResourceID: p.ID,
		Amount:     p.Roundup,
		Currency:   p.Currency,
		Message: fmt.Sprintf("Round-up of %s %s added to your investment wallet!",
			p.Currency, money.Fixed(p.Roundup, p.Currency)),
		OccurredAt: p.CreatedAt,
	}
}

// NewInvestSettled describes a lot created by an invest sweep.
func NewInvestSettled(lot *models.InvestLot) *Event {
	return &Event{
		Type:       TypeInvestSettled,
		UserID:     lot.UserID,
		ResourceID: lot.ID,
		Amount:     lot.Amount,
		Currency:   lot.Currency,
		Portfolio:  lot.Portfolio,
		Message: fmt.Sprintf("Successfully invested %s into your %s portfolio!",
			money.Format(lot.Amount, lot.Currency), lot.Portfolio),
		OccurredAt: lot.CreatedAt,
	}
}

// ToJSON converts the event to JSON bytes
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event published by this package
func FromJSON(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
