package neoxbridge

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request or parameter failed validation.
	ErrValidation = errors.New("validation error")

	// ErrInvalidAddress indicates text is not a well-formed Neo address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidKey indicates a private key could not be decoded.
	ErrInvalidKey = errors.New("invalid private key")

	// ErrInvalidAmount indicates a transfer amount is out of range or
	// has the wrong precision for its asset.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNoPendingTransfer indicates a confirmation arrived with nothing staged.
	ErrNoPendingTransfer = errors.New("no pending transfer")

	// ErrConfirmationMismatch indicates a confirmation does not match the
	// staged transfer.
	ErrConfirmationMismatch = errors.New("confirmation does not match pending transfer")

	// ErrConfirmationExpired indicates the staged transfer outlived its TTL.
	ErrConfirmationExpired = errors.New("pending transfer expired")

	// ErrAlertCapacity indicates the alert book is full.
	ErrAlertCapacity = errors.New("alert capacity reached")

	// ErrUnsupportedTarget indicates a security check for an unknown target type.
	ErrUnsupportedTarget = errors.New("unsupported target type")

	// ErrUnknownSymbol indicates a price lookup for an unsupported symbol.
	ErrUnknownSymbol = errors.New("unknown symbol")
)
