// Package router classifies free-text messages into intents using an
// ordered list of keyword rules. The first rule whose keywords appear in
// the message wins; later rules are never consulted, even when the message
// also contains their keywords.
//
// Keywords are matched with address tokens masked out, so the letters of
// an address never trigger a rule.
package router

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/neoxbridge"
)

// Keyword groups, in rule order.
var (
	walletTerms     = []string{"load wallet", "import wallet", "wallet status", "my address", "private key"}
	balanceTerms    = []string{"balance"}
	securityTerms   = []string{"security", "safe", "malicious", "check address", "analyze"}
	blockchainTerms = []string{"block", "transaction", "tx", "contract", "asset info"}
	nftTerms        = []string{"nft", "nep11", "collectible", "non-fungible"}
	priceTerms      = []string{"price", "alert", "monitor", "track price"}
	sendTerms       = []string{"send", "transfer", "pay"}
	bulkTerms       = []string{"bulk", "multiple", ","}
	historyTerms    = []string{"transaction history", "tx history", "recent transactions"}
	governanceTerms = []string{"governance", "committee", "candidate", "vote", "voting"}
	helpTerms       = []string{"help", "?", "commands", "what can you do"}
	validateTerms   = []string{"validate", "verify", "valid"}
)

// sendPattern is the strict single-recipient form. Keywords and asset are
// case-insensitive; the recipient keeps the caller's casing.
var sendPattern = regexp.MustCompile(`(?i)(?:send|transfer|pay)\s+(\d+(?:\.\d+)?)\s+(neo|gas)\s+to\s+(N[A-Za-z0-9]{33})\b`)

// rule maps a keyword predicate to an intent builder.
type rule struct {
	name  string
	match func(lower string) bool
	build func(text, lower, keys string) neoxbridge.Intent
}

// Router is an ordered, first-match-wins intent classifier. It is
// stateless and safe for concurrent use.
type Router struct {
	rules []rule
}

// New creates a Router with the standard rule order.
func New() *Router {
	return &Router{rules: []rule{
		{name: "wallet", match: containsAny(walletTerms), build: buildWallet},
		{name: "balance", match: containsAny(balanceTerms), build: buildBalance},
		{name: "security", match: containsAny(securityTerms), build: buildSecurity},
		{name: "blockchain", match: containsAny(blockchainTerms), build: buildBlockchain},
		{name: "nft", match: containsAny(nftTerms), build: buildNFT},
		{name: "price", match: containsAny(priceTerms), build: simple(neoxbridge.IntentPriceMonitoring)},
		{name: "send", match: containsAny(sendTerms), build: buildSend},
		{name: "history", match: containsAny(historyTerms), build: simple(neoxbridge.IntentTransactionHistory)},
		{name: "governance", match: containsAny(governanceTerms), build: simple(neoxbridge.IntentGovernanceInfo)},
		{name: "help", match: equalsAny(helpTerms), build: simple(neoxbridge.IntentHelp)},
		{name: "validate", match: validateMatch, build: buildValidate},
	}}
}

// Rules returns the rule names in evaluation order.
func (r *Router) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rl := range r.rules {
		names[i] = rl.name
	}
	return names
}

// Classify returns the intent of text. Messages that match no rule are
// IntentGeneral.
func (r *Router) Classify(text string) neoxbridge.Intent {
	lower := strings.ToLower(text)
	keys := anyCaseAddress.ReplaceAllString(lower, addressMask)
	for _, rl := range r.rules {
		if rl.match(keys) {
			return rl.build(text, lower, keys)
		}
	}
	return neoxbridge.Intent{Kind: neoxbridge.IntentGeneral, Params: neoxbridge.Params{Query: lower}}
}

// ParseSend extracts amount, asset and recipient from a strict send phrase.
func ParseSend(text string) (amount float64, asset, recipient string, ok bool) {
	m := sendPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", "", false
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", "", false
	}
	return amount, strings.ToUpper(m[2]), m[3], true
}

func containsAny(terms []string) func(string) bool {
	return func(lower string) bool {
		for _, t := range terms {
			if strings.Contains(lower, t) {
				return true
			}
		}
		return false
	}
}

func equalsAny(terms []string) func(string) bool {
	return func(lower string) bool {
		s := strings.TrimSpace(lower)
		for _, t := range terms {
			if s == t {
				return true
			}
		}
		return false
	}
}

// addressMask replaces address tokens before keyword matching.
const addressMask = "⟨addr⟩"

func validateMatch(keys string) bool {
	return containsAny(validateTerms)(keys) && strings.Contains(keys, addressMask)
}

func simple(kind neoxbridge.IntentKind) func(text, lower, keys string) neoxbridge.Intent {
	return func(_, lower, _ string) neoxbridge.Intent {
		return neoxbridge.Intent{Kind: kind, Params: neoxbridge.Params{Query: lower}}
	}
}

func buildWallet(text, lower, _ string) neoxbridge.Intent {
	return neoxbridge.Intent{Kind: neoxbridge.IntentWalletOperations, Params: neoxbridge.Params{
		PrivateKey: neoxbridge.ExtractPrivateKey(text),
		Query:      lower,
	}}
}

func buildBalance(text, lower, _ string) neoxbridge.Intent {
	return neoxbridge.Intent{Kind: neoxbridge.IntentCheckBalance, Params: neoxbridge.Params{
		Address: extractAnyCase(text),
		Query:   lower,
	}}
}

func buildSecurity(text, lower, _ string) neoxbridge.Intent {
	p := neoxbridge.Params{Query: lower}
	switch {
	case neoxbridge.ExtractAddress(text) != "":
		p.Target, p.TargetType = neoxbridge.ExtractAddress(text), neoxbridge.TargetAddress
	case neoxbridge.ExtractContractHash(text) != "":
		p.Target, p.TargetType = neoxbridge.ExtractContractHash(text), neoxbridge.TargetToken
	case neoxbridge.ExtractURL(text) != "":
		p.Target, p.TargetType = neoxbridge.ExtractURL(text), neoxbridge.TargetURL
	}
	p.Address = neoxbridge.ExtractAddress(text)
	return neoxbridge.Intent{Kind: neoxbridge.IntentSecurityAnalysis, Params: p}
}

func buildBlockchain(text, lower, keys string) neoxbridge.Intent {
	if hash := neoxbridge.ExtractTxHash(text); hash != "" {
		return neoxbridge.Intent{Kind: neoxbridge.IntentCheckTransaction, Params: neoxbridge.Params{TxHash: hash, Query: lower}}
	}
	if containsAny(historyTerms)(keys) {
		return neoxbridge.Intent{Kind: neoxbridge.IntentTransactionHistory, Params: neoxbridge.Params{
			Address: extractAnyCase(text),
			Query:   lower,
		}}
	}
	return neoxbridge.Intent{Kind: neoxbridge.IntentBlockchainData, Params: neoxbridge.Params{
		Target: neoxbridge.ExtractContractHash(text),
		Query:  lower,
	}}
}

func buildNFT(text, lower, _ string) neoxbridge.Intent {
	return neoxbridge.Intent{Kind: neoxbridge.IntentNFTOperations, Params: neoxbridge.Params{
		Address: extractAnyCase(text),
		Query:   lower,
	}}
}

// buildSend applies the send sub-rules: confirm, cancel, bulk, strict
// single-recipient, then the help fallback.
func buildSend(text, lower, keys string) neoxbridge.Intent {
	trimmed := strings.TrimSpace(lower)
	p := neoxbridge.Params{Query: lower}
	switch {
	case strings.HasPrefix(trimmed, "confirm"):
		p.Amount, p.Asset, p.Recipient, _ = ParseSend(text)
		return neoxbridge.Intent{Kind: neoxbridge.IntentConfirmTransaction, Params: p}
	case strings.HasPrefix(trimmed, "cancel"):
		return neoxbridge.Intent{Kind: neoxbridge.IntentCancelTransaction, Params: p}
	case containsAny(bulkTerms)(keys):
		return neoxbridge.Intent{Kind: neoxbridge.IntentBulkTransaction, Params: p}
	}
	amount, asset, recipient, ok := ParseSend(text)
	if !ok {
		return neoxbridge.Intent{Kind: neoxbridge.IntentTransactionHelp, Params: p}
	}
	p.Amount, p.Asset, p.Recipient = amount, asset, recipient
	return neoxbridge.Intent{Kind: neoxbridge.IntentSendTransaction, Params: p}
}

func buildValidate(text, lower, _ string) neoxbridge.Intent {
	return neoxbridge.Intent{Kind: neoxbridge.IntentValidateAddress, Params: neoxbridge.Params{
		Address: extractAnyCase(text),
		Query:   lower,
	}}
}

// extractAnyCase prefers a correctly cased address and falls back to the
// raw token, so a miscased address is reported as invalid instead of being
// replaced by the wallet or last address.
func extractAnyCase(text string) string {
	if a := neoxbridge.ExtractAddress(text); a != "" {
		return a
	}
	return anyCaseAddress.FindString(text)
}

var anyCaseAddress = regexp.MustCompile(`\b[Nn][A-Za-z0-9]{33}\b`)
