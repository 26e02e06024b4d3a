package neoxbridge

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PendingTransfer is a previewed send awaiting confirmation. Only a
// confirmation naming the same amount, asset and recipient before
// ExpiresAt may consume it.
type PendingTransfer struct {
	Token        string
	From         string
	To           string
	Amount       float64
	Asset        string
	NetworkFee   float64
	SecuritySafe bool
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// ConfirmText is the exact phrase the user types to execute the transfer.
func (p PendingTransfer) ConfirmText() string {
	return fmt.Sprintf("confirm send %s %s to %s", FormatAmount(p.Amount), p.Asset, p.To)
}

// Expired reports whether the transfer can no longer be confirmed at now.
func (p PendingTransfer) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Matches reports whether a confirmation names this transfer.
func (p PendingTransfer) Matches(amount float64, asset, recipient string) bool {
	return p.Amount == amount &&
		strings.EqualFold(p.Asset, asset) &&
		p.To == recipient
}

// FormatAmount renders an amount without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
