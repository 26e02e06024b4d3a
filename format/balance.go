package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/neoxbridge"
)

// Balance renders a balance lookup. A failed lookup uses the failure
// template; a balance with every asset at zero uses the empty template.
// source names where the numbers came from, such as "blockchain" or "demo".
func Balance(b neoxbridge.Balance, source string) string {
	if b.Error != "" {
		return BalanceFailed(b.Address, b.Error)
	}
	assets := b.Assets()
	if !anyPositive(assets) {
		return fmt.Sprintf(`💰 **Balance Information**

🔍 Address: `+"`%s`"+`
📊 Current Balances:
  • NEO: 0.0
  • GAS: 0.0

This address currently has no tokens. To get started:
• Receive tokens from another address
• Purchase tokens on an exchange
• Check if this is the correct address`, b.Address)
	}
	lines := make([]string, len(assets))
	for i, a := range assets {
		lines[i] = fmt.Sprintf("  • %s: %s", a.Asset, a.Amount)
	}
	return fmt.Sprintf(`💰 **Balance Information**

🔍 Address: `+"`%s`"+`
📊 Current Balances:
%s

%s **Source:** %s_data

💡 **Tip:** NEO generates GAS over time. GAS is used for transaction fees.

Need to do anything else? I can help you:
• Send tokens to another address
• Validate a different address
• Check transaction history`, b.Address, strings.Join(lines, "\n"), sourceEmoji(source), source)
}

// BalanceFailed is the reply when a balance lookup could not be completed.
func BalanceFailed(address, reason string) string {
	return fmt.Sprintf(`❌ **Balance Check Failed**

🔍 Address: `+"`%s`"+`
📊 Error: %s

Please verify the address is correct and try again.`, address, reason)
}

// BalanceNeedsAddress asks for an address when no wallet is loaded.
func BalanceNeedsAddress() string {
	return "Please provide an address or load your wallet first.\nExample: `balance for " + exampleAddress + "`"
}

func anyPositive(assets []neoxbridge.AssetAmount) bool {
	for _, a := range assets {
		v, err := strconv.ParseFloat(a.Amount, 64)
		if err == nil && v > 0 {
			return true
		}
	}
	return false
}

func sourceEmoji(source string) string {
	if source == "blockchain" {
		return "🌐"
	}
	return "🧪"
}
