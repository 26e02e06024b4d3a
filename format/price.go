package format

import (
	"fmt"
	"strings"

	"github.com/fwojciec/neoxbridge"
)

// PriceHelp lists the price commands.
func PriceHelp() string {
	return `📈 **Price Monitoring**

**Available Commands:**
• ` + "`create price alert SYMBOL above/below PRICE`" + ` - Create alert
• ` + "`check my alerts`" + ` - View active alerts
• ` + "`neo price`" + ` - Get current NEO price

**Supported symbols:** NEO, GAS, BITCOIN, ETHEREUM`
}

// AlertUsage explains the alert syntax after a parse failure.
func AlertUsage() string {
	return `🚨 **Price Alert Help**

**Usage:** ` + "`create price alert SYMBOL above/below PRICE`" + `

**Examples:**
• ` + "`create price alert NEO above 50`" + `
• ` + "`create price alert GAS below 10`" + `
• ` + "`create price alert BITCOIN above 100000`"
}

// AlertCreated confirms a new alert.
func AlertCreated(a neoxbridge.PriceAlert) string {
	return fmt.Sprintf(`🚨 **Price Alert Created**

🔸 **Symbol:** %s
🔸 **Condition:** %s $%s
🔸 **Status:** Active
🔸 **Created:** %s
🔸 **Expires:** %s

I'll monitor the price and notify you when triggered!`,
		a.Symbol, a.Condition, neoxbridge.FormatAmount(a.Target),
		a.CreatedAt.Format("2006-01-02 15:04:05"), a.ExpiresAt.Format("2006-01-02 15:04:05"))
}

// AlertCapacity is the reply when the alert book is full.
func AlertCapacity(max int) string {
	return fmt.Sprintf("🚨 **Alert Limit Reached**\n\nYou already have %d active alerts. Wait for some to trigger or expire before adding more.", max)
}

// Alerts lists active alerts and any that fired during this check.
func Alerts(active, fired []neoxbridge.PriceAlert) string {
	var b strings.Builder
	if len(fired) > 0 {
		lines := make([]string, len(fired))
		for i, a := range fired {
			lines[i] = fmt.Sprintf("%s %s $%s", a.Symbol, a.Condition, neoxbridge.FormatAmount(a.Target))
		}
		b.WriteString("🔔 **Triggered Alerts**\n\n")
		b.WriteString(bullets(lines))
		b.WriteString("\n\n")
	}
	if len(active) == 0 {
		b.WriteString("🚨 **Active Price Alerts**\n\nNo active alerts found.\n\nCreate one with: `create price alert NEO above 50`")
		return b.String()
	}
	lines := make([]string, len(active))
	for i, a := range active {
		lines[i] = fmt.Sprintf("%s %s $%s", a.Symbol, a.Condition, neoxbridge.FormatAmount(a.Target))
	}
	fmt.Fprintf(&b, "🚨 **Active Price Alerts**\n\n%s\n\n🔸 **Total Active:** %d", bullets(lines), len(active))
	return b.String()
}

// Price reports a current USD price.
func Price(symbol string, usd float64) string {
	return fmt.Sprintf("📈 **%s Price**\n\n🔸 **USD:** $%s", strings.ToUpper(symbol), neoxbridge.FormatAmount(usd))
}

// PriceError is the reply when a price lookup fails.
func PriceError(reason string) string {
	return "❌ Price monitoring error: " + reason
}
