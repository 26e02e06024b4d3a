// Package mock provides test doubles for neoxbridge interfaces using
// function fields. Calling a method whose field is unset panics.
package mock

import (
	"context"

	"github.com/fwojciec/neoxbridge"
)

// Interface compliance checks.
var (
	_ neoxbridge.Explorer        = (*Explorer)(nil)
	_ neoxbridge.SecurityChecker = (*SecurityChecker)(nil)
	_ neoxbridge.Completer       = (*Completer)(nil)
	_ neoxbridge.PriceSource     = (*PriceSource)(nil)
	_ neoxbridge.KeyDecoder      = (*KeyDecoder)(nil)
)

// SecurityChecker is a test double for neoxbridge.SecurityChecker.
type SecurityChecker struct {
	CheckFn func(ctx context.Context, target string, tt neoxbridge.TargetType) neoxbridge.SecurityResult
}

// Check delegates to CheckFn.
func (s *SecurityChecker) Check(ctx context.Context, target string, tt neoxbridge.TargetType) neoxbridge.SecurityResult {
	return s.CheckFn(ctx, target, tt)
}

// Completer is a test double for neoxbridge.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req neoxbridge.CompletionRequest) (string, error)
}

// Complete delegates to CompleteFn.
func (c *Completer) Complete(ctx context.Context, req neoxbridge.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}

// PriceSource is a test double for neoxbridge.PriceSource.
type PriceSource struct {
	PriceFn func(ctx context.Context, symbol string) (float64, error)
}

// Price delegates to PriceFn.
func (p *PriceSource) Price(ctx context.Context, symbol string) (float64, error) {
	return p.PriceFn(ctx, symbol)
}

// KeyDecoder is a test double for neoxbridge.KeyDecoder.
type KeyDecoder struct {
	DecodeFn          func(key string) (neoxbridge.Account, error)
	ValidateAddressFn func(address string) error
}

// Decode delegates to DecodeFn.
func (k *KeyDecoder) Decode(key string) (neoxbridge.Account, error) {
	return k.DecodeFn(key)
}

// ValidateAddress delegates to ValidateAddressFn.
func (k *KeyDecoder) ValidateAddress(address string) error {
	return k.ValidateAddressFn(address)
}
