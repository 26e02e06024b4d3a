package neoxbridge

import (
	"fmt"
	"time"
)

// Session is the mutable per-conversation state. It is owned by a single
// orchestrator and is not safe for concurrent use.
type Session struct {
	ID        string
	StartedAt time.Time

	// LastAddress is empty or an address accepted by IsAddress.
	LastAddress string

	// Pending is the transfer awaiting confirmation, if any.
	Pending *PendingTransfer

	// Account is the loaded wallet, if any.
	Account *Account

	Preferences map[string]string
	History     *History
}

// NewSession creates an empty session.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:          id,
		StartedAt:   now,
		Preferences: make(map[string]string),
		History:     NewHistory(DefaultHistoryCapacity),
	}
}

// SetLastAddress records addr as the most recently referenced address.
func (s *Session) SetLastAddress(addr string) error {
	if !IsAddress(addr) {
		return fmt.Errorf("last address %q: %w", addr, ErrInvalidAddress)
	}
	s.LastAddress = addr
	return nil
}

// WalletAddress returns the loaded wallet's address, or "".
func (s *Session) WalletAddress() string {
	if s.Account == nil {
		return ""
	}
	return s.Account.Address
}

// Stage replaces any pending transfer with p.
func (s *Session) Stage(p PendingTransfer) {
	s.Pending = &p
}

// Consume takes the pending transfer if the confirmation matches it. A
// mismatch leaves the transfer staged; an expired transfer is cleared.
func (s *Session) Consume(amount float64, asset, recipient string, now time.Time) (PendingTransfer, error) {
	if s.Pending == nil {
		return PendingTransfer{}, ErrNoPendingTransfer
	}
	p := *s.Pending
	if p.Expired(now) {
		s.Pending = nil
		return p, ErrConfirmationExpired
	}
	if !p.Matches(amount, asset, recipient) {
		return p, ErrConfirmationMismatch
	}
	s.Pending = nil
	return p, nil
}

// CancelPending clears the pending transfer and reports whether there was one.
func (s *Session) CancelPending() bool {
	had := s.Pending != nil
	s.Pending = nil
	return had
}

// Uptime returns how long the session has been running at now.
func (s *Session) Uptime(now time.Time) time.Duration {
	return now.Sub(s.StartedAt).Truncate(time.Second)
}
