// Package alert keeps a bounded, expiring set of price alerts and
// evaluates them against a [neoxbridge.PriceSource].
package alert

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/neoxbridge"
	"github.com/google/uuid"
)

// Defaults for a new Book.
const (
	DefaultCapacity = 20
	DefaultTTL      = 24 * time.Hour
)

var alertPattern = regexp.MustCompile(`(?i)(neo|gas|bitcoin|ethereum)\s+(above|below)\s+([\d.]+)`)

// Parse extracts symbol, condition and target from text such as
// "create price alert NEO above 50".
func Parse(text string) (symbol string, cond neoxbridge.AlertCondition, target float64, ok bool) {
	m := alertPattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", 0, false
	}
	target, err := strconv.ParseFloat(m[3], 64)
	if err != nil || target <= 0 {
		return "", "", 0, false
	}
	return strings.ToUpper(m[1]), neoxbridge.AlertCondition(strings.ToLower(m[2])), target, true
}

// Book holds active alerts. It is safe for concurrent use.
type Book struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu     sync.Mutex
	alerts []neoxbridge.PriceAlert
}

// Option configures a [Book].
type Option func(*Book)

// WithCapacity bounds the number of active alerts.
func WithCapacity(n int) Option {
	return func(b *Book) {
		if n > 0 {
			b.capacity = n
		}
	}
}

// WithTTL sets how long an alert stays active.
func WithTTL(d time.Duration) Option {
	return func(b *Book) {
		if d > 0 {
			b.ttl = d
		}
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

// New creates an empty Book.
func New(opts ...Option) *Book {
	b := &Book{capacity: DefaultCapacity, ttl: DefaultTTL, now: time.Now}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Capacity returns the maximum number of active alerts.
func (b *Book) Capacity() int { return b.capacity }

// Create adds an alert. It returns ErrAlertCapacity when the book is full.
func (b *Book) Create(symbol string, target float64, cond neoxbridge.AlertCondition) (neoxbridge.PriceAlert, error) {
	if cond != neoxbridge.AlertAbove && cond != neoxbridge.AlertBelow {
		return neoxbridge.PriceAlert{}, fmt.Errorf("alert: condition %q: %w", cond, neoxbridge.ErrValidation)
	}
	if target <= 0 {
		return neoxbridge.PriceAlert{}, fmt.Errorf("alert: target must be positive: %w", neoxbridge.ErrValidation)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	b.prune(now)
	if len(b.alerts) >= b.capacity {
		return neoxbridge.PriceAlert{}, fmt.Errorf("alert: %d active: %w", len(b.alerts), neoxbridge.ErrAlertCapacity)
	}
	a := neoxbridge.PriceAlert{
		ID:        uuid.NewString(),
		Symbol:    strings.ToUpper(symbol),
		Target:    target,
		Condition: cond,
		Active:    true,
		CreatedAt: now,
		ExpiresAt: now.Add(b.ttl),
	}
	b.alerts = append(b.alerts, a)
	return a, nil
}

// Active returns the alerts that have neither fired nor expired, oldest
// first.
func (b *Book) Active() []neoxbridge.PriceAlert {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prune(b.now())
	out := make([]neoxbridge.PriceAlert, len(b.alerts))
	copy(out, b.alerts)
	return out
}

// Len returns the number of active alerts.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prune(b.now())
	return len(b.alerts)
}

// Evaluate checks every active alert against current prices and returns
// the ones that fired. Fired alerts leave the book. Symbols whose price
// cannot be fetched are skipped and stay active.
func (b *Book) Evaluate(ctx context.Context, src neoxbridge.PriceSource) []neoxbridge.PriceAlert {
	pending := b.Active()

	prices := make(map[string]float64)
	failed := make(map[string]bool)
	for _, a := range pending {
		if _, ok := prices[a.Symbol]; ok || failed[a.Symbol] {
			continue
		}
		p, err := src.Price(ctx, a.Symbol)
		if err != nil {
			failed[a.Symbol] = true
			continue
		}
		prices[a.Symbol] = p
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	var fired []neoxbridge.PriceAlert
	for i := range b.alerts {
		a := &b.alerts[i]
		p, ok := prices[a.Symbol]
		if !ok || !a.Active || !a.Triggered(p) {
			continue
		}
		a.Active = false
		a.TriggeredAt = now
		fired = append(fired, *a)
	}
	b.prune(now)
	return fired
}

// prune drops fired and expired alerts. Callers hold mu.
func (b *Book) prune(now time.Time) {
	kept := b.alerts[:0]
	for _, a := range b.alerts {
		if a.Active && now.Before(a.ExpiresAt) {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(b.alerts); i++ {
		b.alerts[i] = neoxbridge.PriceAlert{}
	}
	b.alerts = kept
}
