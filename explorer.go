package neoxbridge

import "context"

// Balance holds NEO and GAS amounts for an address as decimal strings.
// Error is set when the lookup failed; the amounts are then "0".
type Balance struct {
	Address string
	NEO     string
	GAS     string
	Error   string
}

// Assets returns the balance as an ordered asset list.
func (b Balance) Assets() []AssetAmount {
	return []AssetAmount{{Asset: AssetNEO, Amount: b.NEO}, {Asset: AssetGAS, Amount: b.GAS}}
}

// AssetAmount is one line of a balance.
type AssetAmount struct {
	Asset  string
	Amount string
}

// AddressInfo reports whether an address is known to the network.
type AddressInfo struct {
	Address          string
	Found            bool
	FirstUseTime     int64
	TransactionCount int64
	Error            string
}

// Block summarizes one block.
type Block struct {
	Index            int64
	Hash             string
	Timestamp        int64
	TransactionCount int64
}

// BlockList is a page of recent blocks.
type BlockList struct {
	Blocks []Block
	Error  string
}

// Committee lists the current committee members' public keys.
type Committee struct {
	Members []string
	Error   string
}

// NFT is one NEP-11 token held by an address.
type NFT struct {
	Contract string
	TokenID  string
}

// NFTHoldings lists NEP-11 tokens held by an address.
type NFTHoldings struct {
	Address string
	Tokens  []NFT
	Error   string
}

// ByContract counts tokens per contract, preserving first-seen order.
func (h NFTHoldings) ByContract() []ContractCount {
	var out []ContractCount
	index := make(map[string]int)
	for _, t := range h.Tokens {
		i, ok := index[t.Contract]
		if !ok {
			i = len(out)
			index[t.Contract] = i
			out = append(out, ContractCount{Contract: t.Contract})
		}
		out[i].Count++
	}
	return out
}

// ContractCount is a per-contract tally.
type ContractCount struct {
	Contract string
	Count    int
}

// Transfer is one NEP-17 transfer.
type Transfer struct {
	TxHash    string
	From      string
	To        string
	Contract  string
	Amount    string
	Timestamp int64
}

// TransferHistory lists recent NEP-17 transfers for an address.
type TransferHistory struct {
	Address   string
	Transfers []Transfer
	Total     int64
	Error     string
}

// TxStatus is the execution outcome of a transaction.
type TxStatus struct {
	TxHash      string
	Found       bool
	VMState     string
	GasConsumed string
	BlockHeight int64
	Timestamp   int64
	Error       string
}

// Contract describes a deployed contract.
type Contract struct {
	Hash  string
	Name  string
	Error string
}

// Explorer is the blockchain data client. Every method is fail-soft: on
// any failure it returns a zero value with Error set (or 0 for counts) and
// never an error.
type Explorer interface {
	Balance(ctx context.Context, address string) Balance
	AddressInfo(ctx context.Context, address string) AddressInfo
	BlockCount(ctx context.Context) int64
	BestBlockHash(ctx context.Context) string
	RecentBlocks(ctx context.Context, limit int) BlockList
	AssetCount(ctx context.Context) int64
	CandidateCount(ctx context.Context) int64
	Committee(ctx context.Context) Committee
	NEP11Owned(ctx context.Context, address string) NFTHoldings
	NEP17Transfers(ctx context.Context, address string, limit int) TransferHistory
	TransactionStatus(ctx context.Context, txHash string) TxStatus
	Contract(ctx context.Context, hash string) Contract
}
