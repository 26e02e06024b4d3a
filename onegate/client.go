package onegate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/neoxbridge"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
)

// Interface compliance check.
var _ neoxbridge.Explorer = (*Client)(nil)

const defaultTimeout = 30 * time.Second

// Client implements [neoxbridge.Explorer] for the OneGate explorer.
type Client struct {
	network    string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *log.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL overrides the network's endpoint. Useful for testing with
// httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for absorbed failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a [Client] for network ("mainnet" or "testnet").
func New(network string, opts ...Option) *Client {
	c := &Client{
		network:    network,
		baseURL:    URLFor(network),
		timeout:    defaultTimeout,
		httpClient: http.DefaultClient,
		logger:     log.New(io.Discard),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Network returns the configured network name.
func (c *Client) Network() string { return c.network }

// URL returns the explorer endpoint in use.
func (c *Client) URL() string { return c.baseURL }

// Balance returns NEO and GAS holdings for address.
func (c *Client) Balance(ctx context.Context, addr string) neoxbridge.Balance {
	out := neoxbridge.Balance{Address: addr, NEO: "0", GAS: "0"}
	var raw json.RawMessage
	if err := c.call(ctx, "GetAssetsHeldByAddress", map[string]any{"Address": scriptHash(addr)}, &raw); err != nil {
		out.Error = err.Error()
		return out
	}
	assets, _, err := decodeList[heldAsset](raw)
	if err != nil {
		out.Error = c.absorb("GetAssetsHeldByAddress", err).Error()
		return out
	}
	for _, a := range assets {
		switch strings.ToLower(a.Asset) {
		case NEOContract:
			out.NEO = units(a.Balance, neoDecimals)
		case GASContract:
			out.GAS = units(a.Balance, gasDecimals)
		}
	}
	return out
}

// AddressInfo reports whether address has been seen on chain.
func (c *Client) AddressInfo(ctx context.Context, addr string) neoxbridge.AddressInfo {
	out := neoxbridge.AddressInfo{Address: addr}
	var info *addressInfo
	if err := c.call(ctx, "GetAddressInfoByAddress", map[string]any{"Address": scriptHash(addr)}, &info); err != nil {
		out.Error = err.Error()
		return out
	}
	if info == nil || info.Address == "" {
		return out
	}
	out.Found = true
	out.FirstUseTime = info.FirstUseTime
	out.TransactionCount = info.TransactionsSent
	return out
}

// BlockCount returns the current chain height, or 0 on failure.
func (c *Client) BlockCount(ctx context.Context) int64 {
	var res struct {
		Index int64 `json:"index"`
	}
	if err := c.call(ctx, "GetBlockCount", nil, &res); err != nil {
		return 0
	}
	return res.Index
}

// BestBlockHash returns the latest block hash, or "" on failure.
func (c *Client) BestBlockHash(ctx context.Context) string {
	var res struct {
		Hash string `json:"hash"`
	}
	if err := c.call(ctx, "GetBestBlockHash", nil, &res); err != nil {
		return ""
	}
	return res.Hash
}

// RecentBlocks returns up to limit of the newest blocks.
func (c *Client) RecentBlocks(ctx context.Context, limit int) neoxbridge.BlockList {
	var raw json.RawMessage
	if err := c.call(ctx, "GetBlockInfoList", map[string]any{"Limit": limit}, &raw); err != nil {
		return neoxbridge.BlockList{Error: err.Error()}
	}
	blocks, _, err := decodeList[blockInfo](raw)
	if err != nil {
		return neoxbridge.BlockList{Error: c.absorb("GetBlockInfoList", err).Error()}
	}
	if limit > 0 && len(blocks) > limit {
		blocks = blocks[:limit]
	}
	out := neoxbridge.BlockList{Blocks: make([]neoxbridge.Block, len(blocks))}
	for i, b := range blocks {
		out.Blocks[i] = neoxbridge.Block{
			Index:            b.Index,
			Hash:             b.Hash,
			Timestamp:        b.Timestamp,
			TransactionCount: b.TransactionCount,
		}
	}
	return out
}

// AssetCount returns the number of registered assets, or 0 on failure.
func (c *Client) AssetCount(ctx context.Context) int64 {
	return c.count(ctx, "GetAssetCount")
}

// CandidateCount returns the number of registered candidates, or 0 on failure.
func (c *Client) CandidateCount(ctx context.Context) int64 {
	return c.count(ctx, "GetCandidateCount")
}

// Committee returns the current committee.
func (c *Client) Committee(ctx context.Context) neoxbridge.Committee {
	var raw json.RawMessage
	if err := c.call(ctx, "GetCommittee", nil, &raw); err != nil {
		return neoxbridge.Committee{Error: err.Error()}
	}
	members, _, err := decodeList[committeeMember](raw)
	if err != nil {
		return neoxbridge.Committee{Error: c.absorb("GetCommittee", err).Error()}
	}
	out := neoxbridge.Committee{Members: make([]string, len(members))}
	for i, m := range members {
		out.Members[i] = m.PublicKey
		if m.PublicKey == "" {
			out.Members[i] = m.Candidate
		}
	}
	return out
}

// NEP11Owned lists the NFTs held by address.
func (c *Client) NEP11Owned(ctx context.Context, addr string) neoxbridge.NFTHoldings {
	out := neoxbridge.NFTHoldings{Address: addr}
	var raw json.RawMessage
	if err := c.call(ctx, "GetNep11OwnedByAddress", map[string]any{"Address": scriptHash(addr)}, &raw); err != nil {
		out.Error = err.Error()
		return out
	}
	tokens, _, err := decodeList[nep11Token](raw)
	if err != nil {
		out.Error = c.absorb("GetNep11OwnedByAddress", err).Error()
		return out
	}
	for _, t := range tokens {
		contract := t.Contract
		if contract == "" {
			contract = t.Asset
		}
		out.Tokens = append(out.Tokens, neoxbridge.NFT{Contract: contract, TokenID: t.TokenID})
	}
	return out
}

// NEP17Transfers lists up to limit recent token transfers for address.
func (c *Client) NEP17Transfers(ctx context.Context, addr string, limit int) neoxbridge.TransferHistory {
	out := neoxbridge.TransferHistory{Address: addr}
	params := map[string]any{"Address": scriptHash(addr), "Limit": limit, "Skip": 0}
	var raw json.RawMessage
	if err := c.call(ctx, "GetNep17TransferByAddress", params, &raw); err != nil {
		out.Error = err.Error()
		return out
	}
	transfers, total, err := decodeList[nep17Transfer](raw)
	if err != nil {
		out.Error = c.absorb("GetNep17TransferByAddress", err).Error()
		return out
	}
	if limit > 0 && len(transfers) > limit {
		transfers = transfers[:limit]
	}
	hash := scriptHash(addr)
	out.Total = total
	for _, t := range transfers {
		out.Transfers = append(out.Transfers, neoxbridge.Transfer{
			TxHash:    t.TxID,
			From:      ownAddress(t.From, hash, addr),
			To:        ownAddress(t.To, hash, addr),
			Contract:  t.Contract,
			Amount:    units(t.Value, transferDecimals(t)),
			Timestamp: t.Timestamp,
		})
	}
	return out
}

// TransactionStatus returns the execution outcome of txHash.
func (c *Client) TransactionStatus(ctx context.Context, txHash string) neoxbridge.TxStatus {
	out := neoxbridge.TxStatus{TxHash: txHash}
	var res *applicationLog
	if err := c.call(ctx, "GetApplicationLogByTransactionHash", map[string]any{"TransactionHash": txHash}, &res); err != nil {
		out.Error = err.Error()
		return out
	}
	if res == nil {
		return out
	}
	out.Found = true
	out.VMState, out.GasConsumed = res.VMState, res.GasConsumed
	if len(res.Executions) > 0 {
		if out.VMState == "" {
			out.VMState = res.Executions[0].VMState
		}
		if out.GasConsumed == "" {
			out.GasConsumed = res.Executions[0].GasConsumed
		}
	}
	out.GasConsumed = units(out.GasConsumed, gasDecimals)
	out.BlockHeight = res.BlockIndex
	out.Timestamp = res.Timestamp
	return out
}

// Contract describes the contract deployed at hash.
func (c *Client) Contract(ctx context.Context, hash string) neoxbridge.Contract {
	out := neoxbridge.Contract{Hash: hash}
	var res *contractInfo
	if err := c.call(ctx, "GetContractByContractHash", map[string]any{"ContractHash": hash}, &res); err != nil {
		out.Error = err.Error()
		return out
	}
	if res == nil {
		out.Error = "contract not found"
		return out
	}
	out.Name = res.Name
	return out
}

func (c *Client) count(ctx context.Context, method string) int64 {
	var res countResult
	if err := c.call(ctx, method, nil, &res); err != nil {
		return 0
	}
	return res.Total
}

// call performs one JSON-RPC request and decodes result into out. Errors
// are logged before being returned so callers only need to record them.
func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return c.absorb(method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return c.absorb(method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.absorb(method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.absorb(method, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return c.absorb(method, fmt.Errorf("decode response: %w", err))
	}
	if rpcResp.Error != nil {
		return c.absorb(method, rpcResp.Error)
	}
	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		return json.Unmarshal([]byte("null"), out)
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return c.absorb(method, fmt.Errorf("decode result: %w", err))
	}
	return nil
}

func (c *Client) absorb(method string, err error) error {
	err = fmt.Errorf("onegate: %s: %w", method, err)
	c.logger.Warn("explorer call failed", "method", method, "err", err)
	return err
}

// decodeList accepts either a bare JSON array or a paginated envelope.
func decodeList[T any](raw json.RawMessage) ([]T, int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, 0, nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, 0, err
		}
		return items, int64(len(items)), nil
	}
	var p page[T]
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, 0, err
	}
	if p.TotalCount == 0 {
		p.TotalCount = int64(len(p.Result))
	}
	return p.Result, p.TotalCount, nil
}

// scriptHash converts an N3 address to the 0x-prefixed script hash the
// explorer indexes by. Input that is not an address is passed through.
func scriptHash(addr string) string {
	u, err := address.StringToUint160(addr)
	if err != nil {
		return addr
	}
	return "0x" + u.StringLE()
}

func ownAddress(v, hash, addr string) string {
	if strings.EqualFold(v, hash) {
		return addr
	}
	return v
}

func transferDecimals(t nep17Transfer) int {
	if t.Decimals != nil {
		return *t.Decimals
	}
	switch strings.ToLower(t.Contract) {
	case NEOContract:
		return neoDecimals
	default:
		return gasDecimals
	}
}

// units renders raw / 10^decimals without trailing zeros. Unparseable
// input renders as "0".
func units(raw string, decimals int) string {
	n, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return "0"
	}
	if decimals <= 0 {
		return n.String()
	}
	neg := n.Sign() < 0
	digits := new(big.Int).Abs(n).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	whole, frac := digits[:len(digits)-decimals], strings.TrimRight(digits[len(digits)-decimals:], "0")
	s := whole
	if frac != "" {
		s += "." + frac
	}
	if neg {
		s = "-" + s
	}
	return s
}
