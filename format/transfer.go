package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/neoxbridge"
)

const walletUsage = `**Usage:** ` + "`load wallet YOUR_PRIVATE_KEY`" + `

**Supported formats:**
• WIF: ` + "`" + exampleWIF + "`" + `
• Hex: ` + "`0x1234...`" + ` or ` + "`1234567890abcdef...`"

// WalletRequired is the reply to a send attempted without a wallet.
func WalletRequired() string {
	return `💸 **Transaction Error**

❌ **Wallet not loaded**

To send transactions, you need to load your wallet first:

` + walletUsage
}

// MissingDetails is the reply to a send without amount or recipient.
func MissingDetails() string {
	return `💸 **Transaction Error**

❌ **Missing transaction details**

**Usage:** ` + "`send AMOUNT ASSET to ADDRESS`" + `

**Examples:**
• ` + "`send 5 NEO to " + exampleAddress + "`" + `
• ` + "`transfer 10.5 GAS to NhGomKyZgSuYUGqrXHcpv1bNH9ntwvfm4c`" + `
• ` + "`pay 1 NEO to NUVPACMnKFhpuHjsRjhUvXz1XhqfGZYVtY`"
}

// InvalidTransfer explains why a send was rejected before any lookup.
func InvalidTransfer(reason string) string {
	return fmt.Sprintf(`❌ **Transaction Failed**

🚫 Error: %s

Please check your inputs and try again:
• Verify the recipient address is correct
• Ensure you have sufficient balance
• Check that the amount is valid

Need help? I can assist you with:
• Validating the recipient address
• Checking your current balance
• Understanding transaction requirements`, reason)
}

// InsufficientBalance is the reply when the sender cannot cover the
// amount plus any fee charged in the same asset.
func InsufficientBalance(amount, fee, available float64, asset string) string {
	required := amount + fee
	return fmt.Sprintf(`💸 **Insufficient Balance**

❌ **Transaction cannot proceed**

🔸 **Required:** %s %s (%s + %s fee)
🔸 **Available:** %s %s
🔸 **Shortage:** %s %s

Please ensure you have sufficient balance and try again.`,
		neoxbridge.FormatAmount(required), asset,
		neoxbridge.FormatAmount(amount), neoxbridge.FormatAmount(fee),
		neoxbridge.FormatAmount(available), asset,
		neoxbridge.FormatAmount(required-available), asset)
}

// SecurityBlocked is the reply when the recipient failed its security check
// or the check could not be completed.
func SecurityBlocked(recipient string, r neoxbridge.SecurityResult) string {
	if r.Risk == neoxbridge.RiskUnknown {
		return fmt.Sprintf(`🚨 **SECURITY CHECK FAILED - Transaction Blocked**

⚠️ The security check for `+"`%s`"+` could not be completed: %s

Nothing was flagged, but transfers are only allowed to recipients that pass the check.

🔒 **What to do:**
• Try again in a moment
• Verify the recipient address through a trusted channel`,
			recipient, FailedChecks(r.Details))
	}
	return fmt.Sprintf(`🚨 **SECURITY ALERT - Transaction Blocked**

⚠️ **Security Warning:** %s risk detected for `+"`%s`"+`: %s

For your safety, this transaction has been automatically blocked.

🛡️ **What this means:**
• The recipient address has been flagged as potentially dangerous
• This could be a phishing scam or malicious contract
• Your funds are safe because the transaction was prevented

🔒 **What to do:**
• Verify the recipient address through a trusted channel
• Double-check you have the correct address
• Only proceed if you're absolutely certain the address is legitimate`,
		strings.ToUpper(r.Risk.String()), recipient, FailedChecks(r.Details))
}

// Preview shows a staged transfer. checked is false when no security
// check ran. The confirmation phrase closes the message.
func Preview(p neoxbridge.PendingTransfer, checked bool, ttl time.Duration) string {
	total := neoxbridge.FormatAmount(p.Amount) + " " + p.Asset
	if p.Asset != neoxbridge.AssetGAS {
		total += " + " + neoxbridge.FormatAmount(p.NetworkFee) + " GAS"
	}
	status := "✅ SAFE"
	if !checked {
		status = "⚪ NOT CHECKED"
	}
	return fmt.Sprintf(`💸 **Transaction Preview**

📤 **From:** `+"`%s`"+`
📥 **To:** `+"`%s`"+`
💰 **Amount:** %s %s
⛽ **Network Fee:** %s GAS
🔸 **Total Cost:** %s

🛡️ **Security Status:** %s
⏳ **Expires in:** %s

**This is a PREVIEW. To execute the transaction, confirm by typing:**
`+"`%s`",
		p.From, p.To, neoxbridge.FormatAmount(p.Amount), p.Asset,
		neoxbridge.FormatAmount(p.NetworkFee), total, status, ttl, p.ConfirmText())
}

// Accepted is the receipt for a confirmed transfer. Broadcasting is out of
// scope, so no transaction hash is reported.
func Accepted(p neoxbridge.PendingTransfer) string {
	return fmt.Sprintf(`🚀 **Transaction Confirmed**

├─ Asset: %s
├─ Amount: %s
├─ From: `+"`%s`"+`
├─ Recipient: `+"`%s`"+`
└─ Status: ✅ SIMULATED

⚡ Your transfer of %s %s was approved.

ℹ️ Signing and broadcasting are outside this assistant, so no transaction hash was produced.`,
		p.Asset, neoxbridge.FormatAmount(p.Amount), p.From, p.To,
		neoxbridge.FormatAmount(p.Amount), p.Asset)
}

// ConfirmMismatch is the reply when a confirmation names a different
// transfer than the one staged.
func ConfirmMismatch(p neoxbridge.PendingTransfer) string {
	return `❌ **Confirmation Does Not Match**

The pending transfer is still waiting. To execute it, type exactly:
` + "`" + p.ConfirmText() + "`" + `

Or type ` + "`cancel send`" + ` to discard it.`
}

// ConfirmExpired is the reply when the staged transfer outlived its TTL.
func ConfirmExpired(p neoxbridge.PendingTransfer) string {
	return fmt.Sprintf(`⌛ **Confirmation Expired**

The preview for %s %s to `+"`%s`"+` has expired and was discarded.
Send the request again to get a fresh preview.`, neoxbridge.FormatAmount(p.Amount), p.Asset, p.To)
}

// NothingToConfirm is the reply to a confirmation with nothing staged.
func NothingToConfirm() string {
	return "❌ **Nothing to Confirm**\n\nThere is no pending transfer. Start with `send AMOUNT ASSET to ADDRESS`."
}

// Cancelled is the reply to a cancellation.
func Cancelled(hadPending bool) string {
	if !hadPending {
		return "ℹ️ There is no pending transfer to cancel."
	}
	return "🛑 **Transfer Cancelled**\n\nThe pending transfer was discarded. Nothing was sent."
}

// BulkWalletRequired is the reply to a bulk send without a wallet.
func BulkWalletRequired() string {
	return `💸 **Bulk Transaction Error**

❌ **Wallet not loaded**

To send bulk transactions, load your wallet first:
` + "`load wallet YOUR_PRIVATE_KEY`"
}

// BulkPreview describes the planned multi-recipient feature.
func BulkPreview() string {
	return `💸 **Bulk Transaction Feature**

🚀 **Coming Soon!** Bulk transactions will allow you to:

• Send to multiple recipients in one transaction
• Batch payments with reduced fees
• Mass airdrops and distributions
• Multi-recipient smart contract calls

**Example Usage (Future):**
` + "```" + `
bulk send NEO:
  NiEtVMWVYgpXrWkRTMwRaMJtJ41gD3912N: 5
  NhGomKyZgSuYUGqrXHcpv1bNH9ntwvfm4c: 3
  NUVPACMnKFhpuHjsRjhUvXz1XhqfGZYVtY: 2
` + "```" + `

For now, use individual transactions:
` + "`send 5 NEO to ADDRESS`"
}

// TransactionHelp explains the send commands.
func TransactionHelp() string {
	return `💸 **Transaction Commands Help**

🚀 **Send Tokens:**
• ` + "`send AMOUNT ASSET to ADDRESS`" + ` - Send NEO/GAS
• ` + "`transfer 5 NEO to " + exampleAddress + "`" + `
• ` + "`pay 10.5 GAS to NhGomKyZgSuYUGqrXHcpv1bNH9ntwvfm4c`" + `

🔐 **Requirements:**
• Wallet must be loaded first
• Sufficient balance (including network fees)
• Valid recipient address

🛡️ **Security Features:**
• Automatic recipient address validation
• Comprehensive security checks via GoPlusLabs
• Balance verification before sending
• Transaction preview and confirmation

💡 **Supported Assets:**
• NEO (indivisible - whole numbers only)
• GAS (divisible - decimal amounts allowed)

**Examples:**
` + "```" + `
load wallet YOUR_PRIVATE_KEY
check my balance
send 5 NEO to NiEtVMWVYgpXrWkRTMwRaMJtJ41gD3912N
transfer 2.5 GAS to NhGomKyZgSuYUGqrXHcpv1bNH9ntwvfm4c
` + "```"
}
