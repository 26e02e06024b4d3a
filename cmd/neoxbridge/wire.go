package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/agent"
	"github.com/fwojciec/neoxbridge/alert"
	"github.com/fwojciec/neoxbridge/coingecko"
	"github.com/fwojciec/neoxbridge/config"
	"github.com/fwojciec/neoxbridge/goplus"
	"github.com/fwojciec/neoxbridge/neogo"
	"github.com/fwojciec/neoxbridge/onegate"
)

// buildAgent wires the external clients named by cfg into an Agent.
func buildAgent(ctx context.Context, cfg *config.Config, logger *log.Logger) (*agent.Agent, error) {
	llm, provider, err := resolveCompleter(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	explorerOpts := []onegate.Option{
		onegate.WithTimeout(cfg.Neo.Timeout),
		onegate.WithLogger(logger.WithPrefix("onegate")),
	}
	if cfg.Neo.RPCURL != "" {
		explorerOpts = append(explorerOpts, onegate.WithBaseURL(cfg.Neo.RPCURL))
	}
	explorer := onegate.New(cfg.Neo.Network, explorerOpts...)

	prices := coingecko.New(
		coingecko.WithBaseURL(cfg.Price.BaseURL),
		coingecko.WithCacheTTL(cfg.Price.CacheTTL),
		coingecko.WithLogger(logger.WithPrefix("coingecko")),
	)
	alerts := alert.New(
		alert.WithCapacity(cfg.Price.MaxAlerts),
		alert.WithTTL(cfg.Price.AlertTTL),
	)

	opts := []agent.Option{
		agent.WithCompleter(llm, provider),
		agent.WithPrices(prices),
		agent.WithAlerts(alerts),
		agent.WithNetwork(explorer.Network(), explorer.URL()),
		agent.WithMaxTransfer(cfg.Transfer.MaxAmount),
		agent.WithConfirmTTL(cfg.Transfer.ConfirmTTL),
		agent.WithRequireConfirmation(cfg.Transfer.RequireConfirmation),
		agent.WithDemoMode(cfg.Transfer.Demo),
		agent.WithLogger(logger.WithPrefix("agent")),
	}
	if checker := newSecurityChecker(cfg.Security, logger); checker != nil {
		opts = append(opts, agent.WithSecurity(checker))
	}
	return agent.New(explorer, opts...), nil
}

// newSecurityChecker returns the GoPlus checker, or nil when checks are
// disabled or no app key is set. Without a checker, transfers are previewed
// as not checked.
func newSecurityChecker(c config.Security, logger *log.Logger) neoxbridge.SecurityChecker {
	if !c.Enabled {
		return nil
	}
	if c.AppKey == "" {
		logger.Warn("security checks skipped", "reason", "GO_PLUS_LABS_APP_KEY not set")
		return nil
	}
	return goplus.New(c.AppKey,
		goplus.WithBaseURL(c.BaseURL),
		goplus.WithTimeout(c.Timeout),
		goplus.WithLogger(logger.WithPrefix("goplus")),
	)
}

// openSession starts a session and loads the configured wallet, if any.
// A key that cannot be decoded is logged and the session starts without a
// wallet.
func openSession(a *agent.Agent, privateKey string, logger *log.Logger) *neoxbridge.Session {
	s := a.NewSession()
	if privateKey == "" {
		return s
	}
	acct, err := neogo.Decoder{}.Decode(privateKey)
	if err != nil {
		logger.Warn("NEO_PRIVATE_KEY ignored", "err", err)
		return s
	}
	s.Account = &acct
	logger.Info("wallet loaded", "address", acct.Address)
	return s
}
