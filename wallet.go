package neoxbridge

// Account is a wallet identity derived from a private key. The key itself
// is never retained.
type Account struct {
	Address    string
	ScriptHash string
	PublicKey  string
}

// KeyDecoder derives accounts from private keys and validates addresses.
type KeyDecoder interface {
	// Decode derives the account for a WIF or hex private key. It returns
	// an error wrapping ErrInvalidKey on failure.
	Decode(key string) (Account, error)
	// ValidateAddress checks an address's version byte and checksum. It
	// returns an error wrapping ErrInvalidAddress on failure.
	ValidateAddress(address string) error
}
