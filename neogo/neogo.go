// Package neogo implements [neoxbridge.KeyDecoder] with the neo-go SDK.
package neogo

import (
	"fmt"
	"strings"

	"github.com/fwojciec/neoxbridge"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
)

// Interface compliance check.
var _ neoxbridge.KeyDecoder = Decoder{}

// Decoder derives Neo N3 accounts. The zero value is ready to use.
type Decoder struct{}

// Decode accepts a WIF key or a 64-digit hex key with or without 0x.
func (Decoder) Decode(key string) (neoxbridge.Account, error) {
	key = strings.TrimSpace(key)
	var (
		priv *keys.PrivateKey
		err  error
	)
	switch {
	case len(key) == 52 && (key[0] == 'K' || key[0] == 'L'):
		priv, err = keys.NewPrivateKeyFromWIF(key)
	case len(key) == 66 && strings.HasPrefix(strings.ToLower(key), "0x"):
		priv, err = keys.NewPrivateKeyFromHex(key[2:])
	case len(key) == 64:
		priv, err = keys.NewPrivateKeyFromHex(key)
	default:
		return neoxbridge.Account{}, fmt.Errorf("neogo: unrecognized key format: %w", neoxbridge.ErrInvalidKey)
	}
	if err != nil {
		return neoxbridge.Account{}, fmt.Errorf("neogo: %w: %w", neoxbridge.ErrInvalidKey, err)
	}
	defer priv.Destroy()

	pub := priv.PublicKey()
	return neoxbridge.Account{
		Address:    priv.Address(),
		ScriptHash: "0x" + pub.GetScriptHash().StringLE(),
		PublicKey:  pub.StringCompressed(),
	}, nil
}

// ValidateAddress checks the base58check encoding, version byte and
// checksum of addr.
func (Decoder) ValidateAddress(addr string) error {
	if !neoxbridge.IsAddress(addr) {
		return fmt.Errorf("neogo: %q: %w", addr, neoxbridge.ErrInvalidAddress)
	}
	if _, err := address.StringToUint160(addr); err != nil {
		return fmt.Errorf("neogo: %w: %w", neoxbridge.ErrInvalidAddress, err)
	}
	return nil
}
