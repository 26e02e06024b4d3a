package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/format"
)

// SystemPrompt frames every general conversation turn.
const SystemPrompt = `You are NeoXBridge AI, a secure conversational assistant for Neo N3 blockchain operations.

Your primary role is to help users safely interact with the Neo blockchain through natural language commands.

Core capabilities:
- Validate Neo wallet addresses and check their network existence
- Check NEO and GAS token balances for any address
- Preview NEO/GAS transfers with built-in malicious address detection
- Check transaction status and provide detailed information
- Run GoPlus Labs security analysis on addresses, tokens and websites

Security first:
- Always validate addresses before any transaction
- Always confirm transaction details with the user before execution
- Never proceed with transactions to flagged addresses

Be friendly and professional, use clear non-technical language, and keep answers focused on blockchain operations.
Neo addresses are 34 characters long and start with 'N'. All transactions are irreversible once confirmed.`

const (
	classifyMaxTokens = 200
	classifyTemp      = 0.1
	chatMaxTokens     = 300
	chatTemp          = 0.7
	contextMessages   = 4
	contextWidth      = 100
)

const classifyPrompt = `Classify this user message for Neo blockchain operations:

Message: %q

Respond with ONLY a JSON object in this format:
{
    "intent": "one of: validate_address, check_balance, send_transaction, check_transaction, security_analysis, general",
    "confidence": 0.0-1.0,
    "parameters": {
        "address": "extracted_address_if_any",
        "amount": "extracted_amount_if_any",
        "asset": "NEO_or_GAS_if_mentioned",
        "recipient": "recipient_address_if_any",
        "tx_hash": "transaction_hash_if_any"
    }
}`

// llmKinds are the intents a model classification may select. Aliases
// map older names onto them.
var llmKinds = map[string]neoxbridge.IntentKind{
	"validate_address":  neoxbridge.IntentValidateAddress,
	"check_balance":     neoxbridge.IntentCheckBalance,
	"send_transaction":  neoxbridge.IntentSendTransaction,
	"check_transaction": neoxbridge.IntentCheckTransaction,
	"security_analysis": neoxbridge.IntentSecurityAnalysis,
	"security_check":    neoxbridge.IntentSecurityAnalysis,
}

type classification struct {
	Intent     string `json:"intent"`
	Parameters struct {
		Address   string `json:"address"`
		Amount    any    `json:"amount"`
		Asset     string `json:"asset"`
		Recipient string `json:"recipient"`
		TxHash    string `json:"tx_hash"`
	} `json:"parameters"`
}

// classify asks the model to refine a general intent. Any failure or an
// unsupported answer keeps fallback.
func (a *Agent) classify(ctx context.Context, text string, fallback neoxbridge.Intent) neoxbridge.Intent {
	ctx, cancel := context.WithTimeout(ctx, a.llmTimeout)
	defer cancel()
	raw, err := a.llm.Complete(ctx, neoxbridge.CompletionRequest{
		Prompt:      fmt.Sprintf(classifyPrompt, text),
		MaxTokens:   classifyMaxTokens,
		Temperature: neoxbridge.Float64(classifyTemp),
	})
	if err != nil {
		a.logger.Warn("intent classification failed", "err", err)
		return fallback
	}
	in, ok := ParseClassification(raw, fallback.Params.Query)
	if !ok {
		a.logger.Debug("classification rejected", "reply", raw)
		return fallback
	}
	return in
}

// ParseClassification decodes a model's JSON classification. It accepts
// replies wrapped in prose or code fences and rejects intents outside the
// supported set.
func ParseClassification(raw, query string) (neoxbridge.Intent, bool) {
	start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return neoxbridge.Intent{}, false
	}
	var c classification
	if err := json.Unmarshal([]byte(raw[start:end+1]), &c); err != nil {
		return neoxbridge.Intent{}, false
	}
	kind, ok := llmKinds[strings.ToLower(strings.TrimSpace(c.Intent))]
	if !ok {
		return neoxbridge.Intent{}, false
	}
	cp := c.Parameters
	p := neoxbridge.Params{Query: query}
	switch kind {
	case neoxbridge.IntentValidateAddress, neoxbridge.IntentCheckBalance:
		p.Address = cp.Address
	case neoxbridge.IntentSendTransaction:
		p.Amount = toAmount(cp.Amount)
		p.Asset = strings.ToUpper(cp.Asset)
		p.Recipient = cp.Recipient
		if p.Recipient == "" {
			p.Recipient = cp.Address
		}
	case neoxbridge.IntentCheckTransaction:
		p.TxHash = neoxbridge.ExtractTxHash(cp.TxHash)
	case neoxbridge.IntentSecurityAnalysis:
		p.Target, p.TargetType = cp.Address, neoxbridge.TargetAddress
	}
	// Addresses from a model are kept only when they are address-shaped.
	if !neoxbridge.IsAddress(p.Address) {
		p.Address = ""
	}
	if !neoxbridge.IsAddress(p.Recipient) {
		p.Recipient = ""
	}
	if p.TargetType == neoxbridge.TargetAddress && !neoxbridge.IsAddress(p.Target) {
		p.Target, p.TargetType = "", ""
	}
	return neoxbridge.Intent{Kind: kind, Params: p}, true
}

func toAmount(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// converse answers a general message with the model, or with the welcome
// template when no model is configured or the call fails.
func (a *Agent) converse(ctx context.Context, s *neoxbridge.Session) neoxbridge.Response {
	if a.llm == nil {
		return a.respond(true, format.Welcome(), nil, neoxbridge.ActionWelcome)
	}
	msgs := s.History.Recent(1)
	var last string
	if len(msgs) == 1 {
		last = msgs[0].Text
	}
	prompt := fmt.Sprintf(`User message: %q

Recent conversation context:
%s

Respond helpfully about Neo blockchain operations. You can validate addresses, check NEO/GAS balances, help with secure token transfers, check transaction status, and give security advice.`,
		last, s.History.Context(contextMessages, contextWidth))

	ctx, cancel := context.WithTimeout(ctx, a.llmTimeout)
	defer cancel()
	reply, err := a.llm.Complete(ctx, neoxbridge.CompletionRequest{
		SystemPrompt: SystemPrompt,
		Prompt:       prompt,
		MaxTokens:    chatMaxTokens,
		Temperature:  neoxbridge.Float64(chatTemp),
	})
	reply = strings.TrimSpace(reply)
	if err != nil || reply == "" {
		a.logger.Warn("conversation failed", "err", err)
		return a.respond(true, format.Welcome(), nil, neoxbridge.ActionWelcome)
	}
	return a.respond(true, reply, nil, neoxbridge.ActionConversation)
}
