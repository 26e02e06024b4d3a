package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/neoxbridge"
)

// Security renders a security verdict. The header is SAFE, UNKNOWN when
// the check could not be completed, or the risk tier otherwise.
func Security(r neoxbridge.SecurityResult) string {
	status, emoji := "SAFE", "✅"
	switch {
	case r.IsSafe:
	case r.Risk == neoxbridge.RiskUnknown:
		status, emoji = "UNKNOWN", "❔"
	case r.Risk == neoxbridge.RiskMedium || r.Risk == neoxbridge.RiskHigh:
		status, emoji = "RISK: "+strings.ToUpper(r.Risk.String()), "⚠️"
	default:
		status, emoji = "RISK: "+strings.ToUpper(r.Risk.String()), "🚨"
	}
	return fmt.Sprintf(`🛡️ **Security Analysis - %s**

%s **Target:** `+"`%s`"+`
🔸 **Type:** %s
🔸 **Risk Level:** %s
🔸 **Confidence:** %.1f%%
🔸 **Checks Passed:** %d/%d

📊 **Analysis Details:**
%s

🕒 **Analyzed:** %s`,
		status, emoji, r.Target, r.TargetType, r.Risk, r.Confidence*100,
		r.Passed, r.Total, SecurityDetails(r.Details),
		r.CheckedAt.Format("2006-01-02 15:04:05"))
}

// SecurityDetails lists sub-check outcomes in name order.
func SecurityDetails(details map[string]neoxbridge.CheckDetail) string {
	if len(details) == 0 {
		return "• No detailed analysis available"
	}
	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		d := details[name]
		mark := "✅"
		if !d.Passed {
			mark = "❌"
		}
		line := fmt.Sprintf("%s: %s %s", name, mark, d.Message)
		if len(d.Flags) > 0 {
			line += " (" + strings.Join(d.Flags, ", ") + ")"
		}
		lines[i] = line
	}
	return bullets(lines)
}

// FailedChecks joins the messages of every failed sub-check.
func FailedChecks(details map[string]neoxbridge.CheckDetail) string {
	names := make([]string, 0, len(details))
	for name, d := range details {
		if !d.Passed {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	msgs := make([]string, len(names))
	for i, name := range names {
		msgs[i] = details[name].Message
	}
	if len(msgs) == 0 {
		return "Unknown risk"
	}
	return strings.Join(msgs, ", ")
}

// SecurityHelp lists the supported security targets.
func SecurityHelp() string {
	return `🛡️ **Security Analysis**

Please provide a target to analyze:
• ` + "`security check " + exampleAddress + "`" + ` - Check address
• ` + "`analyze token 0x1234...`" + ` - Check token contract
• ` + "`security check https://example.com`" + ` - Check website`
}

// SecurityDisabled is the reply when security checks are turned off.
func SecurityDisabled() string {
	return `🛡️ **Security Analysis**

⚠️ Security checks are disabled in this session.
Set ` + "`ENABLE_SECURITY_CHECKS=true`" + ` to analyze addresses, tokens and websites.`
}
