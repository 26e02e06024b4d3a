package agent

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/format"
)

// Blocked is the Data of a send stopped by the recipient security check.
type Blocked struct {
	Recipient       string
	Security        neoxbridge.SecurityResult
	SecurityBlocked bool
}

func (a *Agent) send(ctx context.Context, s *neoxbridge.Session, p neoxbridge.Params) neoxbridge.Response {
	if s.Account == nil {
		return a.respond(false, format.WalletRequired(), nil, neoxbridge.ActionTransactionError)
	}
	if p.Recipient == "" || p.Amount == 0 || p.Asset == "" {
		return a.respond(false, format.MissingDetails(), nil, neoxbridge.ActionTransactionError)
	}
	asset := strings.ToUpper(p.Asset)
	if reason := a.amountProblem(p.Amount, asset); reason != "" {
		return a.respond(false, format.InvalidTransfer(reason), nil, neoxbridge.ActionTransactionError)
	}
	if err := a.keys.ValidateAddress(p.Recipient); err != nil {
		return a.respond(false, format.InvalidTransfer("Invalid recipient address: checksum verification failed"), nil, neoxbridge.ActionTransactionError)
	}

	from := s.Account.Address
	bal, _ := a.lookupBalance(ctx, from)
	if bal.Error != "" {
		return a.respond(false, format.InvalidTransfer("Could not verify balance: "+bal.Error), bal, neoxbridge.ActionTransactionError)
	}
	available := assetAmount(bal, asset)
	fee := 0.0
	if asset == neoxbridge.AssetGAS {
		fee = NetworkFee
	}
	if available < p.Amount+fee {
		return a.respond(false, format.InsufficientBalance(p.Amount, fee, available, asset), bal, neoxbridge.ActionTransactionError)
	}

	checked := a.security != nil
	if checked {
		r := a.security.Check(ctx, p.Recipient, neoxbridge.TargetAddress)
		if !r.IsSafe {
			a.logger.Warn("transfer blocked", "target", p.Recipient, "risk", r.Risk)
			return a.respond(false, format.SecurityBlocked(p.Recipient, r),
				Blocked{Recipient: p.Recipient, Security: r, SecurityBlocked: true},
				neoxbridge.ActionTransactionBlocked)
		}
	}

	now := a.now()
	pt := neoxbridge.PendingTransfer{
		Token:        a.newID(),
		From:         from,
		To:           p.Recipient,
		Amount:       p.Amount,
		Asset:        asset,
		NetworkFee:   NetworkFee,
		SecuritySafe: checked,
		CreatedAt:    now,
		ExpiresAt:    now.Add(a.confirmTTL),
	}
	if !a.requireConfirm {
		return a.respond(true, format.Accepted(pt), pt, neoxbridge.ActionTransactionSent)
	}
	s.Stage(pt)
	return a.respond(true, format.Preview(pt, checked, a.confirmTTL), pt, neoxbridge.ActionTransactionPreview)
}

// amountProblem describes why amount of asset cannot be sent, or returns "".
func (a *Agent) amountProblem(amount float64, asset string) string {
	switch {
	case asset != neoxbridge.AssetNEO && asset != neoxbridge.AssetGAS:
		return fmt.Sprintf("Unsupported asset %q. Only NEO and GAS can be sent", asset)
	case amount <= 0 || amount > a.maxTransfer:
		return fmt.Sprintf("Amount must be greater than 0 and at most %s %s", neoxbridge.FormatAmount(a.maxTransfer), asset)
	case asset == neoxbridge.AssetNEO && amount != math.Trunc(amount):
		return "NEO is indivisible. Send a whole number of NEO"
	default:
		return ""
	}
}

func assetAmount(b neoxbridge.Balance, asset string) float64 {
	for _, x := range b.Assets() {
		if x.Asset == asset {
			v, err := strconv.ParseFloat(x.Amount, 64)
			if err != nil {
				return 0
			}
			return v
		}
	}
	return 0
}

func (a *Agent) confirm(s *neoxbridge.Session, p neoxbridge.Params) neoxbridge.Response {
	pt, err := s.Consume(p.Amount, p.Asset, p.Recipient, a.now())
	switch {
	case err == nil:
		a.logger.Info("transfer confirmed", "session", s.ID, "token", pt.Token, "asset", pt.Asset)
		return a.respond(true, format.Accepted(pt), pt, neoxbridge.ActionTransactionSent)
	case errors.Is(err, neoxbridge.ErrNoPendingTransfer):
		return a.respond(false, format.NothingToConfirm(), nil, neoxbridge.ActionTransactionError)
	case errors.Is(err, neoxbridge.ErrConfirmationExpired):
		return a.respond(false, format.ConfirmExpired(pt), pt, neoxbridge.ActionTransactionError)
	default:
		return a.respond(false, format.ConfirmMismatch(pt), pt, neoxbridge.ActionTransactionError)
	}
}

func (a *Agent) bulk(s *neoxbridge.Session) neoxbridge.Response {
	if s.Account == nil {
		return a.respond(false, format.BulkWalletRequired(), nil, neoxbridge.ActionTransactionError)
	}
	return a.respond(true, format.BulkPreview(), nil, neoxbridge.ActionFeaturePreview)
}

func (a *Agent) securityCheck(ctx context.Context, s *neoxbridge.Session, p neoxbridge.Params) neoxbridge.Response {
	if a.security == nil {
		return a.respond(false, format.SecurityDisabled(), nil, neoxbridge.ActionSecurityError)
	}
	target, tt := p.Target, p.TargetType
	if target == "" && s.LastAddress != "" {
		target, tt = s.LastAddress, neoxbridge.TargetAddress
	}
	if target == "" {
		return a.respond(false, format.SecurityHelp(), nil, neoxbridge.ActionSecurityHelp)
	}
	r := a.security.Check(ctx, target, tt)
	return a.respond(true, format.Security(r), r, neoxbridge.ActionSecurityAnalysis)
}
