package format

import (
	"fmt"
	"time"
)

// Help is the full command reference.
func Help() string {
	return `🤖 **NeoXBridge AI - Complete Command Reference**

🔐 **Wallet Management:**
• ` + "`load wallet PRIVATE_KEY`" + ` - Load your Neo wallet
• ` + "`wallet status`" + ` - Check wallet status
• ` + "`my address`" + ` - Show wallet address

💰 **Balance & Assets:**
• ` + "`check my balance`" + ` - Check your balance
• ` + "`balance for ADDRESS`" + ` - Check any address
• ` + "`validate ADDRESS`" + ` - Validate an address
• ` + "`my nfts`" + ` - View your NFT collection

🛡️ **Security Analysis:**
• ` + "`security check ADDRESS`" + ` - Analyze address safety
• ` + "`analyze token CONTRACT`" + ` - Token security analysis
• ` + "`security check URL`" + ` - Website safety check

📊 **Blockchain Data:**
• ` + "`block height`" + ` - Current blockchain height
• ` + "`recent blocks`" + ` - Recent block information
• ` + "`asset count`" + ` - Total assets on network
• ` + "`check tx HASH`" + ` - Transaction status
• ` + "`transaction history`" + ` - Recent transfers

📈 **Price Monitoring:**
• ` + "`create price alert SYMBOL above/below PRICE`" + ` - Create alert
• ` + "`check my alerts`" + ` - View active alerts
• ` + "`neo price`" + ` - Get current prices

💸 **Token Transfers:**
• ` + "`send AMOUNT ASSET to ADDRESS`" + ` - Send tokens securely
• ` + "`confirm send AMOUNT ASSET to ADDRESS`" + ` - Execute a previewed transfer
• ` + "`cancel send`" + ` - Discard a previewed transfer
• ` + "`send help`" + ` - Transaction help and examples

🏛️ **Governance:**
• ` + "`committee info`" + ` - Neo committee information
• ` + "`candidate count`" + ` - Total candidates

💡 **System:**
• ` + "`help`" + ` - Show this help
• ` + "`status`" + ` - Session status
• ` + "`examples`" + ` - Example requests
• ` + "`quit`" + ` - Exit application

**Example Usage:**
` + "```" + `
load wallet ` + exampleWIF + `
check my balance
security check ` + exampleAddress + `
create price alert NEO above 50
` + "```"
}

// Welcome is the general reply when no language model is available.
func Welcome() string {
	return `🌉 **Welcome to NeoXBridge AI!**

I'm your comprehensive Neo blockchain assistant with advanced capabilities:

🔸 **Complete Neo N3 integration** - Real blockchain data
🔸 **Advanced security analysis** - Multi-layer protection
🔸 **Price monitoring & alerts** - Never miss market moves
🔸 **NFT tracking & analysis** - Full collectible management
🔸 **Governance insights** - Committee and voting data

Type ` + "`help`" + ` for all commands, or try:
• ` + "`load wallet YOUR_PRIVATE_KEY`" + `
• ` + "`security check ADDRESS`" + `
• ` + "`create price alert NEO above 50`" + `

What would you like to explore?`
}

// StatusInfo is the session state shown by the status command.
type StatusInfo struct {
	SessionID string
	Network   string
	Wallet    string
	Provider  string
	Security  bool
	Messages  int
	Alerts    int
	Pending   bool
	Uptime    time.Duration
}

// Status renders session state.
func Status(s StatusInfo) string {
	wallet := s.Wallet
	if wallet == "" {
		wallet = "not loaded"
	}
	provider := s.Provider
	if provider == "" {
		provider = "none"
	}
	return fmt.Sprintf(`📋 **Session Status**

🔸 **Session:** %s
🔸 **Network:** %s
🔸 **Wallet:** %s
🔸 **Language model:** %s
🔸 **Security checks:** %s
🔸 **Messages:** %d
🔸 **Active alerts:** %d
🔸 **Pending transfer:** %s
🔸 **Uptime:** %s`,
		s.SessionID, s.Network, wallet, provider, onOff(s.Security),
		s.Messages, s.Alerts, yesNo(s.Pending), s.Uptime)
}

// Examples lists sample requests.
func Examples() string {
	return `💡 **Example Requests**

• ` + "`validate " + exampleAddress + "`" + `
• ` + "`balance for " + exampleAddress + "`" + `
• ` + "`is " + exampleAddress + " safe?`" + `
• ` + "`send 5 NEO to " + exampleAddress + "`" + `
• ` + "`block height`" + `
• ` + "`create price alert NEO above 50`" + `
• ` + "`committee info`"
}

// Error is the top-level reply for an unexpected failure.
func Error(err error) string {
	return fmt.Sprintf("❌ I encountered an error: %v. Please try again.", err)
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
