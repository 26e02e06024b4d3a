package neoxbridge

import (
	"context"
	"time"
)

// AlertCondition is the direction a price must cross for an alert to fire.
type AlertCondition string

const (
	AlertAbove AlertCondition = "above"
	AlertBelow AlertCondition = "below"
)

// PriceAlert fires when Symbol's price crosses Target in the direction of
// Condition.
type PriceAlert struct {
	ID          string
	Symbol      string
	Target      float64
	Condition   AlertCondition
	Active      bool
	CreatedAt   time.Time
	TriggeredAt time.Time
	ExpiresAt   time.Time
}

// Triggered reports whether price satisfies the alert's condition.
func (a PriceAlert) Triggered(price float64) bool {
	switch a.Condition {
	case AlertAbove:
		return price >= a.Target
	case AlertBelow:
		return price <= a.Target
	default:
		return false
	}
}

// PriceSource returns the current USD price for a symbol such as "NEO".
type PriceSource interface {
	Price(ctx context.Context, symbol string) (float64, error)
}
