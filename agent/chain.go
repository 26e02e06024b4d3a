package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/format"
	"golang.org/x/sync/errgroup"
)

const (
	recentBlockLimit = 5
	historyLimit     = 10
)

func (a *Agent) validate(ctx context.Context, p neoxbridge.Params) neoxbridge.Response {
	addr := p.Address
	if addr == "" {
		return a.respond(false, format.AddressMissing(), nil, neoxbridge.ActionAddressValidation)
	}
	if reason := addressProblem(addr); reason != "" {
		return a.respond(false, format.AddressInvalid(addr, reason), nil, neoxbridge.ActionAddressValidation)
	}
	if err := a.keys.ValidateAddress(addr); err != nil {
		return a.respond(false, format.AddressInvalid(addr, "Checksum verification failed"), nil, neoxbridge.ActionAddressValidation)
	}
	info := a.explorer.AddressInfo(ctx, addr)
	if info.Found {
		return a.respond(true, format.AddressValid(addr), info, neoxbridge.ActionAddressValidation)
	}
	return a.respond(true, format.AddressNotFound(addr), info, neoxbridge.ActionAddressValidation)
}

// addressProblem describes why addr is not address-shaped, or returns "".
func addressProblem(addr string) string {
	switch {
	case len(addr) != 34:
		return fmt.Sprintf("Address must be exactly 34 characters long (got %d)", len(addr))
	case addr[0] != 'N':
		return "Address must start with 'N'"
	case !neoxbridge.IsAddress(addr):
		return "Address contains invalid characters"
	default:
		return ""
	}
}

func (a *Agent) balance(ctx context.Context, s *neoxbridge.Session, p neoxbridge.Params) neoxbridge.Response {
	addr := resolveAddress(s, p.Address)
	if addr == "" {
		return a.respond(false, format.BalanceNeedsAddress(), nil, neoxbridge.ActionBalanceError)
	}
	if reason := addressProblem(addr); reason != "" {
		return a.respond(false, format.AddressInvalid(addr, reason), nil, neoxbridge.ActionBalanceError)
	}
	b, source := a.lookupBalance(ctx, addr)
	if b.Error != "" {
		return a.respond(false, format.Balance(b, source), b, neoxbridge.ActionBalanceError)
	}
	return a.respond(true, format.Balance(b, source), b, neoxbridge.ActionBalanceCheck)
}

// lookupBalance queries the explorer and, in demo mode, substitutes the
// demo balance when the explorer failed or reported nothing.
func (a *Agent) lookupBalance(ctx context.Context, addr string) (neoxbridge.Balance, string) {
	b := a.explorer.Balance(ctx, addr)
	if a.demo && (b.Error != "" || isEmpty(b)) {
		if d, ok := demoBalance(addr); ok {
			return d, "demo"
		}
	}
	return b, "blockchain"
}

func isEmpty(b neoxbridge.Balance) bool {
	for _, x := range b.Assets() {
		if v, err := strconv.ParseFloat(x.Amount, 64); err == nil && v > 0 {
			return false
		}
	}
	return true
}

func (a *Agent) transaction(ctx context.Context, p neoxbridge.Params) neoxbridge.Response {
	if p.TxHash == "" {
		return a.respond(false, format.TxHashMissing(), nil, neoxbridge.ActionTransactionStatus)
	}
	st := a.explorer.TransactionStatus(ctx, p.TxHash)
	return a.respond(st.Error == "" && st.Found, format.TxStatus(st), st, neoxbridge.ActionTransactionStatus)
}

func (a *Agent) history(ctx context.Context, s *neoxbridge.Session, p neoxbridge.Params) neoxbridge.Response {
	addr := p.Address
	if addr == "" {
		addr = s.WalletAddress()
	}
	if addr == "" {
		return a.respond(false, format.HistoryNeedsWallet(), nil, neoxbridge.ActionTransactionHistory)
	}
	if reason := addressProblem(addr); reason != "" {
		return a.respond(false, format.AddressInvalid(addr, reason), nil, neoxbridge.ActionTransactionHistory)
	}
	h := a.explorer.NEP17Transfers(ctx, addr, historyLimit)
	return a.respond(h.Error == "", format.History(h, a.network), h, neoxbridge.ActionTransactionHistory)
}

// overview is the Data of a blockchain overview reply.
type overview struct {
	Height     int64
	AssetCount int64
}

func (a *Agent) blockchain(ctx context.Context, p neoxbridge.Params) neoxbridge.Response {
	q := p.Query
	switch {
	case p.Target != "":
		c := a.explorer.Contract(ctx, p.Target)
		if c.Error != "" {
			return a.respond(false, format.ChainError(c.Error), c, neoxbridge.ActionBlockchainError)
		}
		return a.respond(true, format.ContractInfo(c, a.network), c, neoxbridge.ActionBlockchainInfo)

	case strings.Contains(q, "block") && strings.Contains(q, "height"):
		h := a.explorer.BlockCount(ctx)
		if h == 0 {
			return a.respond(false, format.ChainError("block height unavailable"), nil, neoxbridge.ActionBlockchainError)
		}
		return a.respond(true, format.Height(h, a.network, a.node), h, neoxbridge.ActionBlockchainInfo)

	case strings.Contains(q, "recent blocks"):
		list := a.explorer.RecentBlocks(ctx, recentBlockLimit)
		if list.Error != "" || len(list.Blocks) == 0 {
			reason := list.Error
			if reason == "" {
				reason = "no blocks returned"
			}
			return a.respond(false, format.ChainError(reason), list, neoxbridge.ActionBlockchainError)
		}
		return a.respond(true, format.RecentBlocks(list.Blocks, a.network), list, neoxbridge.ActionBlockchainInfo)

	case strings.Contains(q, "asset count"):
		n := a.explorer.AssetCount(ctx)
		return a.respond(true, format.AssetCount(n, a.network), n, neoxbridge.ActionBlockchainInfo)
	}

	var ov overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ov.Height = a.explorer.BlockCount(gctx)
		return nil
	})
	g.Go(func() error {
		ov.AssetCount = a.explorer.AssetCount(gctx)
		return nil
	})
	_ = g.Wait()
	if ov.Height == 0 {
		return a.respond(false, format.ChainError("explorer unavailable"), ov, neoxbridge.ActionBlockchainError)
	}
	return a.respond(true, format.Overview(ov.Height, ov.AssetCount, a.network), ov, neoxbridge.ActionBlockchainInfo)
}

func (a *Agent) nfts(ctx context.Context, s *neoxbridge.Session, p neoxbridge.Params) neoxbridge.Response {
	addr := resolveAddress(s, p.Address)
	if addr == "" {
		return a.respond(false, format.NFTNeedsAddress(), nil, neoxbridge.ActionNFTError)
	}
	if reason := addressProblem(addr); reason != "" {
		return a.respond(false, format.AddressInvalid(addr, reason), nil, neoxbridge.ActionNFTError)
	}
	h := a.explorer.NEP11Owned(ctx, addr)
	if h.Error != "" {
		return a.respond(false, format.NFTError(h.Error), h, neoxbridge.ActionNFTError)
	}
	return a.respond(true, format.NFTs(h, a.network), h, neoxbridge.ActionNFTInfo)
}

// governanceInfo is the Data of a governance reply.
type governanceInfo struct {
	Committee  neoxbridge.Committee
	Candidates int64
}

func (a *Agent) governance(ctx context.Context) neoxbridge.Response {
	var gi governanceInfo
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		gi.Committee = a.explorer.Committee(gctx)
		return nil
	})
	g.Go(func() error {
		gi.Candidates = a.explorer.CandidateCount(gctx)
		return nil
	})
	_ = g.Wait()
	if gi.Committee.Error != "" {
		a.logger.Warn("governance unavailable", "err", gi.Committee.Error)
		return a.respond(false, format.GovernanceError(), gi, neoxbridge.ActionGovernanceError)
	}
	return a.respond(true, format.Governance(len(gi.Committee.Members), gi.Candidates, a.network), gi, neoxbridge.ActionGovernanceInfo)
}

func (a *Agent) wallet(s *neoxbridge.Session, p neoxbridge.Params) neoxbridge.Response {
	if p.PrivateKey == "" {
		return a.respond(true, format.WalletStatus(s.Account, a.network), s.Account, neoxbridge.ActionWalletStatus)
	}
	acct, err := a.keys.Decode(p.PrivateKey)
	if err != nil {
		a.logger.Warn("wallet load failed", "err", err)
		return a.respond(false, format.WalletLoadFailed(), nil, neoxbridge.ActionWalletError)
	}
	s.Account = &acct
	return a.respond(true, format.WalletLoaded(acct, a.network), acct, neoxbridge.ActionWalletLoaded)
}
