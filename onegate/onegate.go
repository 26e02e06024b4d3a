// Package onegate implements [neoxbridge.Explorer] against the OneGate
// explorer JSON-RPC API.
//
// Every call is fail-soft. Transport errors, non-200 responses, JSON-RPC
// error objects and undecodable bodies are logged and folded into the
// returned value's Error field.
package onegate

import (
	"encoding/json"
	"fmt"
)

// Explorer endpoints per network.
const (
	MainnetURL = "https://explorer.onegate.space/api"
	TestnetURL = "https://testmagnet.explorer.onegate.space/api"
)

// Native contract hashes and their decimals.
const (
	NEOContract = "0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5"
	GASContract = "0xd2a4cff31913016155e38e474a2c06d08be276cf"
	neoDecimals = 0
	gasDecimals = 8
)

// URLFor returns the explorer endpoint for network. Unknown networks fall
// back to testnet.
func URLFor(network string) string {
	if network == "mainnet" {
		return MainnetURL
	}
	return TestnetURL
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// page is the paginated envelope most list methods return.
type page[T any] struct {
	Result     []T   `json:"result"`
	TotalCount int64 `json:"totalCount"`
}

type heldAsset struct {
	Asset   string `json:"asset"`
	Balance string `json:"balance"`
}

type addressInfo struct {
	Address          string `json:"address"`
	FirstUseTime     int64  `json:"firstusetime"`
	TransactionsSent int64  `json:"transactionssent"`
}

type blockInfo struct {
	Hash             string `json:"hash"`
	Index            int64  `json:"index"`
	Timestamp        int64  `json:"timestamp"`
	TransactionCount int64  `json:"transactioncount"`
}

type committeeMember struct {
	PublicKey string `json:"publickey"`
	Candidate string `json:"candidate"`
}

type nep11Token struct {
	Asset    string `json:"asset"`
	Contract string `json:"contract"`
	TokenID  string `json:"tokenid"`
}

type nep17Transfer struct {
	TxID      string `json:"txid"`
	From      string `json:"from"`
	To        string `json:"to"`
	Contract  string `json:"contract"`
	Value     string `json:"value"`
	Decimals  *int   `json:"decimals"`
	Timestamp int64  `json:"timestamp"`
}

type applicationLog struct {
	TxID        string      `json:"txid"`
	VMState     string      `json:"vmstate"`
	GasConsumed string      `json:"gasconsumed"`
	BlockIndex  int64       `json:"blockindex"`
	Timestamp   int64       `json:"timestamp"`
	Executions  []execution `json:"executions"`
}

type execution struct {
	VMState     string `json:"vmstate"`
	GasConsumed string `json:"gasconsumed"`
}

type contractInfo struct {
	Hash string `json:"hash"`
	Name string `json:"name"`
}

type countResult struct {
	Total int64 `json:"total counts"`
}
