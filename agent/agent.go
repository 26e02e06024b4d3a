// Package agent turns one user message into one [neoxbridge.Response]. It
// extracts values, classifies the intent, runs the matching handler against
// the external clients, and records the exchange in the session history.
package agent

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/alert"
	"github.com/fwojciec/neoxbridge/command"
	"github.com/fwojciec/neoxbridge/format"
	"github.com/fwojciec/neoxbridge/neogo"
	"github.com/fwojciec/neoxbridge/router"
	"github.com/google/uuid"
)

// Defaults for a new Agent.
const (
	DefaultMaxTransfer = 1000.0
	DefaultConfirmTTL  = 5 * time.Minute
	DefaultLLMTimeout  = 30 * time.Second

	// NetworkFee is the flat GAS fee quoted for every transfer.
	NetworkFee = 0.5
)

// Agent handles messages for any number of sessions. Each session must be
// driven by one goroutine at a time.
type Agent struct {
	explorer neoxbridge.Explorer
	security neoxbridge.SecurityChecker
	llm      neoxbridge.Completer
	provider string
	prices   neoxbridge.PriceSource
	alerts   *alert.Book
	keys     neoxbridge.KeyDecoder
	router   *router.Router

	network        string
	node           string
	maxTransfer    float64
	confirmTTL     time.Duration
	requireConfirm bool
	demo           bool
	llmTimeout     time.Duration

	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures an [Agent].
type Option func(*Agent)

// WithSecurity sets the security checker. A nil checker disables checks.
func WithSecurity(s neoxbridge.SecurityChecker) Option {
	return func(a *Agent) { a.security = s }
}

// WithCompleter sets the language model used for fallback classification
// and general conversation. name is shown in the session status.
func WithCompleter(c neoxbridge.Completer, name string) Option {
	return func(a *Agent) {
		a.llm = c
		a.provider = name
	}
}

// WithLLMTimeout bounds each language model call.
func WithLLMTimeout(d time.Duration) Option {
	return func(a *Agent) {
		if d > 0 {
			a.llmTimeout = d
		}
	}
}

// WithPrices sets the price source for price queries and alerts.
func WithPrices(p neoxbridge.PriceSource) Option {
	return func(a *Agent) { a.prices = p }
}

// WithAlerts sets the alert book.
func WithAlerts(b *alert.Book) Option {
	return func(a *Agent) { a.alerts = b }
}

// WithKeyDecoder replaces the neo-go key decoder.
func WithKeyDecoder(k neoxbridge.KeyDecoder) Option {
	return func(a *Agent) { a.keys = k }
}

// WithNetwork names the network and the explorer node shown in replies.
func WithNetwork(network, node string) Option {
	return func(a *Agent) {
		a.network = network
		a.node = node
	}
}

// WithMaxTransfer sets the largest amount a single send may move.
func WithMaxTransfer(v float64) Option {
	return func(a *Agent) {
		if v > 0 {
			a.maxTransfer = v
		}
	}
}

// WithConfirmTTL sets how long a previewed transfer can be confirmed.
func WithConfirmTTL(d time.Duration) Option {
	return func(a *Agent) {
		if d > 0 {
			a.confirmTTL = d
		}
	}
}

// WithRequireConfirmation controls whether sends stop at a preview.
func WithRequireConfirmation(v bool) Option {
	return func(a *Agent) { a.requireConfirm = v }
}

// WithDemoMode enables the built-in demo balances for known addresses when
// the explorer has none.
func WithDemoMode(v bool) Option {
	return func(a *Agent) { a.demo = v }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Agent) { a.logger = l }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(a *Agent) { a.now = now }
}

// WithIDs sets the generator for session-scoped tokens.
func WithIDs(next func() string) Option {
	return func(a *Agent) { a.newID = next }
}

// New creates an Agent backed by explorer.
func New(explorer neoxbridge.Explorer, opts ...Option) *Agent {
	a := &Agent{
		explorer:       explorer,
		keys:           neogo.Decoder{},
		router:         router.New(),
		network:        "testnet",
		maxTransfer:    DefaultMaxTransfer,
		confirmTTL:     DefaultConfirmTTL,
		requireConfirm: true,
		llmTimeout:     DefaultLLMTimeout,
		logger:         log.New(io.Discard),
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, o := range opts {
		o(a)
	}
	if a.alerts == nil {
		a.alerts = alert.New(alert.WithClock(a.now))
	}
	return a
}

// NewSession starts a session with a fresh ID.
func (a *Agent) NewSession() *neoxbridge.Session {
	return neoxbridge.NewSession(a.newID(), a.now())
}

// Network returns the configured network name.
func (a *Agent) Network() string { return a.network }

// Handle processes one message. It never returns an error: every failure,
// including a panic in a handler, is rendered as a Response.
func (a *Agent) Handle(ctx context.Context, s *neoxbridge.Session, text string) (resp neoxbridge.Response) {
	in := a.router.Classify(text)
	clean := redact(text, in)
	s.History.Append(neoxbridge.UserMessage(clean, a.now()))
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("handler panic", "panic", r)
			resp = a.respond(false, format.Error(fmt.Errorf("%v", r)), nil, neoxbridge.ActionError)
		}
		s.History.Append(neoxbridge.AssistantMessage(resp.Message, a.now()))
	}()

	switch command.Parse(text) {
	case command.Help:
		return a.respond(true, format.Help(), nil, neoxbridge.ActionHelp)
	case command.Status:
		return a.status(s)
	case command.Examples:
		return a.respond(true, format.Examples(), nil, neoxbridge.ActionExamples)
	}

	if addr := neoxbridge.ExtractAddress(text); addr != "" {
		_ = s.SetLastAddress(addr)
	}
	if in.Kind == neoxbridge.IntentGeneral {
		in.Params.Query = strings.ToLower(clean)
		if a.llm != nil {
			in = a.classify(ctx, clean, in)
		}
	}
	a.logger.Debug("classified", "session", s.ID, "intent", in.Kind)
	return a.dispatch(ctx, s, in)
}

func (a *Agent) dispatch(ctx context.Context, s *neoxbridge.Session, in neoxbridge.Intent) neoxbridge.Response {
	p := in.Params
	switch in.Kind {
	case neoxbridge.IntentValidateAddress:
		return a.validate(ctx, p)
	case neoxbridge.IntentCheckBalance:
		return a.balance(ctx, s, p)
	case neoxbridge.IntentSendTransaction:
		return a.send(ctx, s, p)
	case neoxbridge.IntentConfirmTransaction:
		return a.confirm(s, p)
	case neoxbridge.IntentCancelTransaction:
		return a.respond(true, format.Cancelled(s.CancelPending()), nil, neoxbridge.ActionTransactionCancel)
	case neoxbridge.IntentBulkTransaction:
		return a.bulk(s)
	case neoxbridge.IntentTransactionHelp:
		return a.respond(true, format.TransactionHelp(), nil, neoxbridge.ActionTransactionHelp)
	case neoxbridge.IntentCheckTransaction:
		return a.transaction(ctx, p)
	case neoxbridge.IntentTransactionHistory:
		return a.history(ctx, s, p)
	case neoxbridge.IntentSecurityAnalysis:
		return a.securityCheck(ctx, s, p)
	case neoxbridge.IntentBlockchainData:
		return a.blockchain(ctx, p)
	case neoxbridge.IntentNFTOperations:
		return a.nfts(ctx, s, p)
	case neoxbridge.IntentPriceMonitoring:
		return a.price(ctx, p)
	case neoxbridge.IntentGovernanceInfo:
		return a.governance(ctx)
	case neoxbridge.IntentWalletOperations:
		return a.wallet(s, p)
	case neoxbridge.IntentHelp:
		return a.respond(true, format.Help(), nil, neoxbridge.ActionHelp)
	default:
		return a.converse(ctx, s)
	}
}

func (a *Agent) status(s *neoxbridge.Session) neoxbridge.Response {
	info := format.StatusInfo{
		SessionID: s.ID,
		Network:   a.network,
		Wallet:    s.WalletAddress(),
		Provider:  a.provider,
		Security:  a.security != nil,
		Messages:  s.History.Len(),
		Alerts:    a.alerts.Len(),
		Pending:   s.Pending != nil,
		Uptime:    s.Uptime(a.now()),
	}
	return a.respond(true, format.Status(info), info, neoxbridge.ActionStatus)
}

func (a *Agent) respond(success bool, msg string, data any, action neoxbridge.ActionType) neoxbridge.Response {
	return neoxbridge.NewResponse(success, msg, data, action, a.now())
}

// resolveAddress picks the explicit address, then the wallet, then the
// last address mentioned in the session.
func resolveAddress(s *neoxbridge.Session, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if w := s.WalletAddress(); w != "" {
		return w
	}
	return s.LastAddress
}

const keyMask = "[private key]"

// redact removes private keys before text is kept in history or sent to a
// model. The key of a wallet import is removed in any form.
func redact(text string, in neoxbridge.Intent) string {
	if k := in.Params.PrivateKey; k != "" {
		text = strings.ReplaceAll(text, k, keyMask)
	}
	return neoxbridge.RedactKeys(text, keyMask)
}
