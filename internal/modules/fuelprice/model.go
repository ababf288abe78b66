// README: Daily fuel price record and store contract.
package fuelprice

import (
	"context"
	"errors"
)

// DateLayout is the calendar-day key format for price records.
const DateLayout = "2006-01-02"

// Record is the single persisted fuel price datum.
type Record struct {
	Price float64 `json:"price"`
	Date  string  `json:"date"`
}

// ErrNoRecord is returned by a Store when no price has been persisted yet.
var ErrNoRecord = errors.New("no fuel price record")

// Store persists the daily fuel price record.
type Store interface {
	// Load returns the most recent record, or ErrNoRecord.
	Load(ctx context.Context) (Record, error)
	// Save writes the record for its date, replacing any existing value.
	Save(ctx context.Context, rec Record) error
}
