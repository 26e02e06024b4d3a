package agent

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/alert"
	"github.com/fwojciec/neoxbridge/format"
)

// priceSymbols are the words recognized as a price query symbol.
var priceSymbols = map[string]string{
	"neo":      "NEO",
	"gas":      "GAS",
	"btc":      "BTC",
	"bitcoin":  "BITCOIN",
	"eth":      "ETH",
	"ethereum": "ETHEREUM",
}

func (a *Agent) price(ctx context.Context, p neoxbridge.Params) neoxbridge.Response {
	q := p.Query
	if symbol, cond, target, ok := alert.Parse(q); ok {
		return a.createAlert(symbol, cond, target)
	}
	switch {
	case strings.Contains(q, "alert") && (strings.Contains(q, "create") || strings.Contains(q, "set")):
		return a.respond(false, format.AlertUsage(), nil, neoxbridge.ActionPriceHelp)
	case strings.Contains(q, "alert"):
		return a.listAlerts(ctx)
	}
	if symbol := findSymbol(q); symbol != "" && strings.Contains(q, "price") {
		return a.currentPrice(ctx, symbol)
	}
	return a.respond(true, format.PriceHelp(), nil, neoxbridge.ActionPriceHelp)
}

func (a *Agent) createAlert(symbol string, cond neoxbridge.AlertCondition, target float64) neoxbridge.Response {
	al, err := a.alerts.Create(symbol, target, cond)
	switch {
	case errors.Is(err, neoxbridge.ErrAlertCapacity):
		return a.respond(false, format.AlertCapacity(a.alerts.Capacity()), nil, neoxbridge.ActionPriceError)
	case err != nil:
		return a.respond(false, format.AlertUsage(), nil, neoxbridge.ActionPriceHelp)
	}
	return a.respond(true, format.AlertCreated(al), al, neoxbridge.ActionPriceAlertCreated)
}

// alertReport is the Data of an alert listing.
type alertReport struct {
	Active []neoxbridge.PriceAlert
	Fired  []neoxbridge.PriceAlert
}

func (a *Agent) listAlerts(ctx context.Context) neoxbridge.Response {
	var r alertReport
	if a.prices != nil {
		r.Fired = a.alerts.Evaluate(ctx, a.prices)
	}
	r.Active = a.alerts.Active()
	return a.respond(true, format.Alerts(r.Active, r.Fired), r, neoxbridge.ActionPriceAlerts)
}

func (a *Agent) currentPrice(ctx context.Context, symbol string) neoxbridge.Response {
	if a.prices == nil {
		return a.respond(false, format.PriceError("no price source configured"), nil, neoxbridge.ActionPriceError)
	}
	usd, err := a.prices.Price(ctx, symbol)
	if err != nil {
		a.logger.Warn("price lookup failed", "symbol", symbol, "err", err)
		return a.respond(false, format.PriceError(err.Error()), nil, neoxbridge.ActionPriceError)
	}
	return a.respond(true, format.Price(symbol, usd), usd, neoxbridge.ActionPriceInfo)
}

// findSymbol returns the first recognized symbol word in q.
func findSymbol(q string) string {
	words := strings.FieldsFunc(q, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	for _, w := range words {
		if s, ok := priceSymbols[w]; ok {
			return s
		}
	}
	return ""
}
