package amqp

import (
	"encoding/json"
	"time"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
)

// LedgerMessage is the wire form of a domain.LedgerEvent.
type LedgerMessage struct {
	Kind          string    `json:"kind"`
	TransactionID int64     `json:"transaction_id,omitempty"`
	RecurringID   *int64    `json:"recurring_id,omitempty"`
	Status        string    `json:"status,omitempty"`
	Date          string    `json:"date,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewLedgerMessage converts an event.
func NewLedgerMessage(e domain.LedgerEvent) LedgerMessage {
	msg := LedgerMessage{
		Kind:          string(e.Kind),
		TransactionID: e.TransactionID,
		RecurringID:   e.RecurringID,
		Status:        string(e.Status),
		OccurredAt:    e.OccurredAt,
	}
	if !e.Date.IsZero() {
		msg.Date = e.Date.String()
	}
	return msg
}

func (m LedgerMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerMessageFromJSON decodes a message body.
func LedgerMessageFromJSON(data []byte) (*LedgerMessage, error) {
	var msg LedgerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
