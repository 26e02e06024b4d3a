package format

import (
	"fmt"

	"github.com/fwojciec/neoxbridge"
)

// WalletLoaded confirms a wallet import.
func WalletLoaded(a neoxbridge.Account, network string) string {
	return fmt.Sprintf(`✅ **Wallet Loaded Successfully!**

📍 **Address:** `+"`%s`"+`
💼 **Network:** %s
🔐 **Status:** Ready for operations

Available operations:
• `+"`check my balance`"+` - View NEO/GAS balance
• `+"`my nfts`"+` - View NFT collection
• `+"`transaction history`"+` - View recent transactions
• `+"`security check %s`"+` - Analyze address security`, a.Address, network, a.Address)
}

// WalletLoadFailed is the reply to a key that could not be decoded.
func WalletLoadFailed() string {
	return "❌ Failed to load wallet. Please check your private key format."
}

// WalletStatus shows the loaded account, or how to load one when a is nil.
func WalletStatus(a *neoxbridge.Account, network string) string {
	if a == nil {
		return `💼 **Wallet Status**

🔸 **Status:** ❌ Not loaded
🔸 **Action needed:** Load your private key

` + walletUsage
	}
	return fmt.Sprintf(`💼 **Wallet Status**

🔸 **Address:** `+"`%s`"+`
🔸 **Public Key:** `+"`%s`"+`
🔸 **Network:** %s
🔸 **Status:** ✅ Loaded and ready`, a.Address, a.PublicKey, network)
}
