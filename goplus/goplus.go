// Package goplus implements [neoxbridge.SecurityChecker] against the GoPlus
// Labs security API.
//
// Checks fail closed: any transport, status or decode error yields an
// unsafe result with unknown risk.
package goplus

// Source is recorded on every result produced by this package.
const Source = "GoPlus Labs"

const (
	defaultBaseURL = "https://api.gopluslabs.io"
	defaultChain   = "1"

	addressPath  = "/api/v1/address_security/"
	tokenPath    = "/api/v1/token_security/"
	dappPath     = "/api/v1/dapp_security"
	phishingPath = "/api/v1/phishing_site"

	// maxTax is the highest buy or sell tax, as a fraction, a token may
	// charge and still pass.
	maxTax = 0.10
)

// addressFlags are the address_security indicators that mark an address
// as malicious when set to "1".
var addressFlags = []string{
	"blacklist_doubt",
	"blackmail_activities",
	"cybercrime",
	"darkweb_transactions",
	"financial_crime",
	"fake_token",
	"honeypot_related_address",
	"malicious_mining_activities",
	"mixer",
	"money_laundering",
	"phishing_activities",
	"stealing_attack",
}
