package mock

import (
	"context"

	"github.com/fwojciec/neoxbridge"
)

// Explorer is a test double for neoxbridge.Explorer.
// Set the function fields for the methods you need.
type Explorer struct {
	BalanceFn           func(ctx context.Context, address string) neoxbridge.Balance
	AddressInfoFn       func(ctx context.Context, address string) neoxbridge.AddressInfo
	BlockCountFn        func(ctx context.Context) int64
	BestBlockHashFn     func(ctx context.Context) string
	RecentBlocksFn      func(ctx context.Context, limit int) neoxbridge.BlockList
	AssetCountFn        func(ctx context.Context) int64
	CandidateCountFn    func(ctx context.Context) int64
	CommitteeFn         func(ctx context.Context) neoxbridge.Committee
	NEP11OwnedFn        func(ctx context.Context, address string) neoxbridge.NFTHoldings
	NEP17TransfersFn    func(ctx context.Context, address string, limit int) neoxbridge.TransferHistory
	TransactionStatusFn func(ctx context.Context, txHash string) neoxbridge.TxStatus
	ContractFn          func(ctx context.Context, hash string) neoxbridge.Contract
}

// Balance delegates to BalanceFn.
func (e *Explorer) Balance(ctx context.Context, address string) neoxbridge.Balance {
	return e.BalanceFn(ctx, address)
}

// AddressInfo delegates to AddressInfoFn.
func (e *Explorer) AddressInfo(ctx context.Context, address string) neoxbridge.AddressInfo {
	return e.AddressInfoFn(ctx, address)
}

// BlockCount delegates to BlockCountFn.
func (e *Explorer) BlockCount(ctx context.Context) int64 {
	return e.BlockCountFn(ctx)
}

// BestBlockHash delegates to BestBlockHashFn.
func (e *Explorer) BestBlockHash(ctx context.Context) string {
	return e.BestBlockHashFn(ctx)
}

// RecentBlocks delegates to RecentBlocksFn.
func (e *Explorer) RecentBlocks(ctx context.Context, limit int) neoxbridge.BlockList {
	return e.RecentBlocksFn(ctx, limit)
}

// AssetCount delegates to AssetCountFn.
func (e *Explorer) AssetCount(ctx context.Context) int64 {
	return e.AssetCountFn(ctx)
}

// CandidateCount delegates to CandidateCountFn.
func (e *Explorer) CandidateCount(ctx context.Context) int64 {
	return e.CandidateCountFn(ctx)
}

// Committee delegates to CommitteeFn.
func (e *Explorer) Committee(ctx context.Context) neoxbridge.Committee {
	return e.CommitteeFn(ctx)
}

// NEP11Owned delegates to NEP11OwnedFn.
func (e *Explorer) NEP11Owned(ctx context.Context, address string) neoxbridge.NFTHoldings {
	return e.NEP11OwnedFn(ctx, address)
}

// NEP17Transfers delegates to NEP17TransfersFn.
func (e *Explorer) NEP17Transfers(ctx context.Context, address string, limit int) neoxbridge.TransferHistory {
	return e.NEP17TransfersFn(ctx, address, limit)
}

// TransactionStatus delegates to TransactionStatusFn.
func (e *Explorer) TransactionStatus(ctx context.Context, txHash string) neoxbridge.TxStatus {
	return e.TransactionStatusFn(ctx, txHash)
}

// Contract delegates to ContractFn.
func (e *Explorer) Contract(ctx context.Context, hash string) neoxbridge.Contract {
	return e.ContractFn(ctx, hash)
}
