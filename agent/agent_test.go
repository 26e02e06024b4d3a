package agent_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/agent"
	"github.com/fwojciec/neoxbridge/alert"
	"github.com/fwojciec/neoxbridge/format"
	"github.com/fwojciec/neoxbridge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wallet    = "NiEtVMWVYgpXrWkRTMwRaMJtJ41gD3912N"
	recipient = "NhGomKyZgSuYUGqrXHcpv1bNH9ntwvfm4c"
	wif       = "KxcgHRTc8SUcvwkG7V8HLoFrPHkUMskeV9nx5fvuTbsEU3z3kAS2"
)

// clock is a settable time source safe for use from handler goroutines.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func keyDecoder() *mock.KeyDecoder {
	return &mock.KeyDecoder{
		DecodeFn: func(key string) (neoxbridge.Account, error) {
			if key != wif {
				return neoxbridge.Account{}, neoxbridge.ErrInvalidKey
			}
			return neoxbridge.Account{Address: wallet, PublicKey: "02abc"}, nil
		},
		ValidateAddressFn: func(string) error { return nil },
	}
}

func funded() *mock.Explorer {
	return &mock.Explorer{
		BalanceFn: func(_ context.Context, address string) neoxbridge.Balance {
			return neoxbridge.Balance{Address: address, NEO: "150", GAS: "85.42"}
		},
	}
}

func safeChecker() *mock.SecurityChecker {
	return &mock.SecurityChecker{
		CheckFn: func(_ context.Context, target string, tt neoxbridge.TargetType) neoxbridge.SecurityResult {
			return neoxbridge.NewSecurityResult(target, tt, map[string]neoxbridge.CheckDetail{
				"address_security": {Passed: true, Message: "No malicious indicators"},
			}, "test", time.Time{})
		},
	}
}

func newAgent(c *clock, explorer neoxbridge.Explorer, opts ...agent.Option) *agent.Agent {
	base := []agent.Option{
		agent.WithClock(c.Now),
		agent.WithIDs(func() string { return "id-1" }),
		agent.WithKeyDecoder(keyDecoder()),
	}
	return agent.New(explorer, append(base, opts...)...)
}

// withWallet returns a session with the test wallet loaded.
func withWallet(t *testing.T, ctx context.Context, a *agent.Agent) *neoxbridge.Session {
	t.Helper()
	s := a.NewSession()
	resp := a.Handle(ctx, s, "load wallet "+wif)
	require.True(t, resp.Success, resp.Message)
	require.Equal(t, neoxbridge.ActionWalletLoaded, resp.Action)
	return s
}

func TestAgent_Handle_RecordsHistory(t *testing.T) {
	t.Parallel()
	a := newAgent(newClock(), &mock.Explorer{})
	s := a.NewSession()

	resp := a.Handle(context.Background(), s, "help")

	assert.True(t, resp.Success)
	assert.Equal(t, neoxbridge.ActionHelp, resp.Action)
	msgs := s.History.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, neoxbridge.RoleUser, msgs[0].Role)
	assert.Equal(t, "help", msgs[0].Text)
	assert.Equal(t, neoxbridge.RoleAssistant, msgs[1].Role)
	assert.Equal(t, resp.Message, msgs[1].Text)
}

func TestAgent_Handle_RedactsPrivateKey(t *testing.T) {
	t.Parallel()
	a := newAgent(newClock(), &mock.Explorer{})
	s := a.NewSession()

	a.Handle(context.Background(), s, "load wallet "+wif)

	msgs := s.History.Messages()
	require.NotEmpty(t, msgs)
	assert.NotContains(t, msgs[0].Text, wif)
	assert.Equal(t, "load wallet [private key]", msgs[0].Text)
	require.NotNil(t, s.Account)
	assert.Equal(t, wallet, s.Account.Address)
}

func TestAgent_Handle_RedactsKeysInAnyMessage(t *testing.T) {
	t.Parallel()
	var prompts []string
	llm := &mock.Completer{
		CompleteFn: func(_ context.Context, req neoxbridge.CompletionRequest) (string, error) {
			prompts = append(prompts, req.Prompt)
			return "I cannot help with that.", nil
		},
	}
	a := newAgent(newClock(), &mock.Explorer{}, agent.WithCompleter(llm, "test"))
	s := a.NewSession()
	hexKey := strings.Repeat("ab", 32)

	a.Handle(context.Background(), s, "is "+wif+" something I should keep secret?")
	a.Handle(context.Background(), s, "remember "+hexKey+" for me")

	for _, m := range s.History.Messages() {
		assert.NotContains(t, m.Text, wif)
		assert.NotContains(t, m.Text, hexKey)
	}
	assert.Equal(t, "is [private key] something I should keep secret?", s.History.Messages()[0].Text)
	require.NotEmpty(t, prompts)
	for _, p := range prompts {
		assert.NotContains(t, p, wif)
		assert.NotContains(t, p, hexKey)
	}
}

func TestAgent_Handle_KeepsTransactionHash(t *testing.T) {
	t.Parallel()
	hash := "0x" + strings.Repeat("cd", 32)
	explorer := &mock.Explorer{
		TransactionStatusFn: func(_ context.Context, txHash string) neoxbridge.TxStatus {
			return neoxbridge.TxStatus{TxHash: txHash, Found: true}
		},
	}
	a := newAgent(newClock(), explorer)
	s := a.NewSession()

	a.Handle(context.Background(), s, "check transaction "+hash)

	assert.Equal(t, "check transaction "+hash, s.History.Messages()[0].Text)
}

func TestAgent_Handle_RecoversFromPanic(t *testing.T) {
	t.Parallel()
	explorer := &mock.Explorer{
		BalanceFn: func(context.Context, string) neoxbridge.Balance { panic("boom") },
	}
	a := newAgent(newClock(), explorer)
	s := a.NewSession()

	resp := a.Handle(context.Background(), s, "balance for "+wallet)

	assert.False(t, resp.Success)
	assert.Equal(t, neoxbridge.ActionError, resp.Action)
	assert.Contains(t, resp.Message, "I encountered an error: boom")
	assert.Equal(t, 2, s.History.Len())
}

func TestAgent_Handle_TracksLastAddress(t *testing.T) {
	t.Parallel()
	var asked string
	explorer := &mock.Explorer{
		BalanceFn: func(_ context.Context, address string) neoxbridge.Balance {
			asked = address
			return neoxbridge.Balance{Address: address, NEO: "1", GAS: "0"}
		},
	}
	a := newAgent(newClock(), explorer)
	s := a.NewSession()
	ctx := context.Background()

	a.Handle(ctx, s, "tell me about "+recipient)
	assert.Equal(t, recipient, s.LastAddress)

	resp := a.Handle(ctx, s, "what is the balance")
	assert.True(t, resp.Success)
	assert.Equal(t, recipient, asked)
}

func TestAgent_Validate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("found on chain", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{
			AddressInfoFn: func(_ context.Context, address string) neoxbridge.AddressInfo {
				return neoxbridge.AddressInfo{Address: address, Found: true}
			},
		}
		a := newAgent(newClock(), explorer)
		resp := a.Handle(ctx, a.NewSession(), "validate "+wallet)
		assert.True(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionAddressValidation, resp.Action)
		assert.Equal(t, format.AddressValid(wallet), resp.Message)
	})

	t.Run("well formed but unknown", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{
			AddressInfoFn: func(_ context.Context, address string) neoxbridge.AddressInfo {
				return neoxbridge.AddressInfo{Address: address}
			},
		}
		a := newAgent(newClock(), explorer)
		resp := a.Handle(ctx, a.NewSession(), "is this valid "+wallet)
		assert.True(t, resp.Success)
		assert.Equal(t, format.AddressNotFound(wallet), resp.Message)
	})

	t.Run("bad checksum", func(t *testing.T) {
		t.Parallel()
		keys := keyDecoder()
		keys.ValidateAddressFn = func(string) error { return neoxbridge.ErrInvalidAddress }
		a := newAgent(newClock(), &mock.Explorer{}, agent.WithKeyDecoder(keys))
		resp := a.Handle(ctx, a.NewSession(), "validate "+wallet)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "Checksum verification failed")
	})

	t.Run("wrong prefix", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{})
		bad := "n" + wallet[1:]
		resp := a.Handle(ctx, a.NewSession(), "validate "+bad)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "Address must start with 'N'")
	})
}

func TestAgent_Balance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("needs an address", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{})
		resp := a.Handle(ctx, a.NewSession(), "check my balance")
		assert.False(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionBalanceError, resp.Action)
		assert.Equal(t, format.BalanceNeedsAddress(), resp.Message)
	})

	t.Run("uses the wallet address", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded())
		s := withWallet(t, ctx, a)
		resp := a.Handle(ctx, s, "check my balance")
		assert.True(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionBalanceCheck, resp.Action)
		assert.Contains(t, resp.Message, "NEO: 150")
		assert.Contains(t, resp.Message, "blockchain_data")
	})

	t.Run("explorer failure", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{
			BalanceFn: func(_ context.Context, address string) neoxbridge.Balance {
				return neoxbridge.Balance{Address: address, NEO: "0", GAS: "0", Error: "connection refused"}
			},
		}
		a := newAgent(newClock(), explorer)
		resp := a.Handle(ctx, a.NewSession(), "balance for "+wallet)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "Balance Check Failed")
	})

	t.Run("miscased address is rejected, not replaced", func(t *testing.T) {
		t.Parallel()
		var queried []string
		explorer := &mock.Explorer{
			BalanceFn: func(_ context.Context, address string) neoxbridge.Balance {
				queried = append(queried, address)
				return neoxbridge.Balance{Address: address, NEO: "150", GAS: "85.42"}
			},
		}
		a := newAgent(newClock(), explorer)
		s := withWallet(t, ctx, a)
		lower := "n" + recipient[1:]

		resp := a.Handle(ctx, s, "balance of "+lower)

		assert.False(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionBalanceError, resp.Action)
		assert.Equal(t, format.AddressInvalid(lower, "Address must start with 'N'"), resp.Message)
		assert.Empty(t, queried)
	})

	t.Run("demo balance replaces an empty result", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{
			BalanceFn: func(_ context.Context, address string) neoxbridge.Balance {
				return neoxbridge.Balance{Address: address, NEO: "0", GAS: "0"}
			},
		}
		a := newAgent(newClock(), explorer, agent.WithDemoMode(true))
		resp := a.Handle(ctx, a.NewSession(), "balance for "+wallet)
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "NEO: 150.0")
		assert.Contains(t, resp.Message, "demo_data")
	})
}

func TestAgent_Send(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires a wallet", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded())
		resp := a.Handle(ctx, a.NewSession(), "send 5 NEO to "+recipient)
		assert.False(t, resp.Success)
		assert.Equal(t, format.WalletRequired(), resp.Message)
	})

	rejected := []struct {
		name string
		msg  string
		want string
	}{
		{"over the limit", "send 2000 GAS to " + recipient, "at most 1000 GAS"},
		{"fractional NEO", "send 1.5 NEO to " + recipient, "NEO is indivisible"},
		{"GAS fee not covered", "send 85.2 GAS to " + recipient, "Insufficient Balance"},
		{"NEO above balance", "send 151 NEO to " + recipient, "Insufficient Balance"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := newAgent(newClock(), funded())
			s := withWallet(t, ctx, a)
			resp := a.Handle(ctx, s, tt.msg)
			assert.False(t, resp.Success)
			assert.Equal(t, neoxbridge.ActionTransactionError, resp.Action)
			assert.Contains(t, resp.Message, tt.want)
			assert.Nil(t, s.Pending)
		})
	}

	t.Run("bad recipient checksum", func(t *testing.T) {
		t.Parallel()
		keys := keyDecoder()
		keys.ValidateAddressFn = func(string) error { return neoxbridge.ErrInvalidAddress }
		a := newAgent(newClock(), funded(), agent.WithKeyDecoder(keys))
		s := withWallet(t, ctx, a)
		resp := a.Handle(ctx, s, "send 5 NEO to "+recipient)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "checksum verification failed")
	})

	t.Run("unsafe recipient is blocked", func(t *testing.T) {
		t.Parallel()
		checker := &mock.SecurityChecker{
			CheckFn: func(_ context.Context, target string, tt neoxbridge.TargetType) neoxbridge.SecurityResult {
				assert.Equal(t, recipient, target)
				assert.Equal(t, neoxbridge.TargetAddress, tt)
				return neoxbridge.NewSecurityResult(target, tt, map[string]neoxbridge.CheckDetail{
					"address_security": {Passed: false, Message: "Malicious indicators found", Flags: []string{"phishing_activities"}},
				}, "test", time.Time{})
			},
		}
		a := newAgent(newClock(), funded(), agent.WithSecurity(checker))
		s := withWallet(t, ctx, a)

		resp := a.Handle(ctx, s, "send 5 NEO to "+recipient)

		assert.False(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionTransactionBlocked, resp.Action)
		assert.Contains(t, resp.Message, "SECURITY ALERT")
		blocked, ok := resp.Data.(agent.Blocked)
		require.True(t, ok)
		assert.True(t, blocked.SecurityBlocked)
		assert.Nil(t, s.Pending)
	})

	t.Run("preview then confirm", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded(), agent.WithSecurity(safeChecker()))
		s := withWallet(t, ctx, a)

		resp := a.Handle(ctx, s, "send 5 NEO to "+recipient)
		require.True(t, resp.Success, resp.Message)
		assert.Equal(t, neoxbridge.ActionTransactionPreview, resp.Action)
		require.NotNil(t, s.Pending)
		assert.Equal(t, "id-1", s.Pending.Token)
		assert.True(t, s.Pending.SecuritySafe)
		assert.True(t, strings.HasSuffix(resp.Message, "`confirm send 5 NEO to "+recipient+"`"))

		resp = a.Handle(ctx, s, "confirm send 5 NEO to "+recipient)
		assert.True(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionTransactionSent, resp.Action)
		assert.Contains(t, resp.Message, "Transaction Confirmed")
		assert.Nil(t, s.Pending)
	})

	t.Run("without a checker the preview is not checked", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded())
		s := withWallet(t, ctx, a)

		resp := a.Handle(ctx, s, "send 5 NEO to "+recipient)
		require.True(t, resp.Success, resp.Message)
		assert.Equal(t, neoxbridge.ActionTransactionPreview, resp.Action)
		assert.Contains(t, resp.Message, "NOT CHECKED")
		require.NotNil(t, s.Pending)
		assert.False(t, s.Pending.SecuritySafe)
	})

	t.Run("mismatched confirmation keeps the transfer", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded())
		s := withWallet(t, ctx, a)
		a.Handle(ctx, s, "send 5 NEO to "+recipient)
		require.NotNil(t, s.Pending)
		assert.False(t, s.Pending.SecuritySafe)

		resp := a.Handle(ctx, s, "confirm send 6 NEO to "+recipient)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "Does Not Match")
		assert.NotNil(t, s.Pending)
	})

	t.Run("expired confirmation clears the transfer", func(t *testing.T) {
		t.Parallel()
		c := newClock()
		a := newAgent(c, funded(), agent.WithConfirmTTL(time.Minute))
		s := withWallet(t, ctx, a)
		a.Handle(ctx, s, "send 5 NEO to "+recipient)
		require.NotNil(t, s.Pending)

		c.Advance(time.Minute)
		resp := a.Handle(ctx, s, "confirm send 5 NEO to "+recipient)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "Confirmation Expired")
		assert.Nil(t, s.Pending)
	})

	t.Run("nothing to confirm", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded())
		resp := a.Handle(ctx, a.NewSession(), "confirm send 5 NEO to "+recipient)
		assert.False(t, resp.Success)
		assert.Equal(t, format.NothingToConfirm(), resp.Message)
	})

	t.Run("cancel", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded())
		s := withWallet(t, ctx, a)
		a.Handle(ctx, s, "send 5 NEO to "+recipient)
		require.NotNil(t, s.Pending)

		resp := a.Handle(ctx, s, "cancel send")
		assert.Equal(t, neoxbridge.ActionTransactionCancel, resp.Action)
		assert.Equal(t, format.Cancelled(true), resp.Message)
		assert.Nil(t, s.Pending)
	})

	t.Run("without confirmation the preview is accepted", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded(), agent.WithRequireConfirmation(false))
		s := withWallet(t, ctx, a)
		resp := a.Handle(ctx, s, "send 10 GAS to "+recipient)
		assert.True(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionTransactionSent, resp.Action)
		assert.Nil(t, s.Pending)
	})

	t.Run("loose phrasing gets help", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded())
		resp := a.Handle(ctx, a.NewSession(), "send some tokens to my friend")
		assert.Equal(t, neoxbridge.ActionTransactionHelp, resp.Action)
	})

	t.Run("bulk requires a wallet", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), funded())
		resp := a.Handle(ctx, a.NewSession(), "bulk send NEO")
		assert.False(t, resp.Success)
		assert.Equal(t, format.BulkWalletRequired(), resp.Message)

		s := withWallet(t, ctx, a)
		resp = a.Handle(ctx, s, "send to multiple people")
		assert.Equal(t, neoxbridge.ActionFeaturePreview, resp.Action)
	})
}

func TestAgent_Security(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{})
		resp := a.Handle(ctx, a.NewSession(), "is "+wallet+" safe?")
		assert.False(t, resp.Success)
		assert.Equal(t, format.SecurityDisabled(), resp.Message)
	})

	t.Run("checks a url", func(t *testing.T) {
		t.Parallel()
		var gotType neoxbridge.TargetType
		checker := &mock.SecurityChecker{
			CheckFn: func(_ context.Context, target string, tt neoxbridge.TargetType) neoxbridge.SecurityResult {
				gotType = tt
				return neoxbridge.UnknownSecurityResult(target, tt, "timeout", "test", time.Time{})
			},
		}
		a := newAgent(newClock(), &mock.Explorer{}, agent.WithSecurity(checker))
		resp := a.Handle(ctx, a.NewSession(), "security check https://example.com")
		assert.True(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionSecurityAnalysis, resp.Action)
		assert.Equal(t, neoxbridge.TargetURL, gotType)
		r, ok := resp.Data.(neoxbridge.SecurityResult)
		require.True(t, ok)
		assert.Equal(t, neoxbridge.RiskUnknown, r.Risk)
	})

	t.Run("no target", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{}, agent.WithSecurity(safeChecker()))
		resp := a.Handle(ctx, a.NewSession(), "run a security check")
		assert.Equal(t, neoxbridge.ActionSecurityHelp, resp.Action)
	})
}

func TestAgent_Blockchain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("overview fetches height and assets", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		explorer := &mock.Explorer{
			BlockCountFn: func(context.Context) int64 { calls.Add(1); return 1234567 },
			AssetCountFn: func(context.Context) int64 { calls.Add(1); return 890 },
		}
		a := newAgent(newClock(), explorer, agent.WithNetwork("mainnet", "https://node"))
		resp := a.Handle(ctx, a.NewSession(), "show blockchain info")
		assert.True(t, resp.Success)
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, format.Overview(1234567, 890, "mainnet"), resp.Message)
	})

	t.Run("overview with explorer down", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{
			BlockCountFn: func(context.Context) int64 { return 0 },
			AssetCountFn: func(context.Context) int64 { return 0 },
		}
		a := newAgent(newClock(), explorer)
		resp := a.Handle(ctx, a.NewSession(), "show blockchain info")
		assert.False(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionBlockchainError, resp.Action)
	})

	t.Run("height", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{BlockCountFn: func(context.Context) int64 { return 42 }}
		a := newAgent(newClock(), explorer, agent.WithNetwork("testnet", "https://node"))
		resp := a.Handle(ctx, a.NewSession(), "block height")
		assert.Equal(t, format.Height(42, "testnet", "https://node"), resp.Message)
	})

	t.Run("recent blocks", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{
			RecentBlocksFn: func(_ context.Context, limit int) neoxbridge.BlockList {
				assert.Equal(t, 5, limit)
				return neoxbridge.BlockList{Blocks: []neoxbridge.Block{{Index: 10, TransactionCount: 3}}}
			},
		}
		a := newAgent(newClock(), explorer)
		resp := a.Handle(ctx, a.NewSession(), "recent blocks")
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "Block #10: 3 transactions")
	})

	t.Run("contract", func(t *testing.T) {
		t.Parallel()
		hash := "0x" + strings.Repeat("ab", 20)
		explorer := &mock.Explorer{
			ContractFn: func(_ context.Context, h string) neoxbridge.Contract {
				return neoxbridge.Contract{Hash: h, Name: "Flamingo"}
			},
		}
		a := newAgent(newClock(), explorer)
		resp := a.Handle(ctx, a.NewSession(), "contract "+hash)
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "Flamingo")
	})

	t.Run("transaction status", func(t *testing.T) {
		t.Parallel()
		hash := "0x" + strings.Repeat("1f", 32)
		explorer := &mock.Explorer{
			TransactionStatusFn: func(_ context.Context, h string) neoxbridge.TxStatus {
				return neoxbridge.TxStatus{TxHash: h, Found: true, VMState: "HALT", BlockHeight: 7}
			},
		}
		a := newAgent(newClock(), explorer)
		resp := a.Handle(ctx, a.NewSession(), "check tx "+hash)
		assert.True(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionTransactionStatus, resp.Action)
	})

	t.Run("history needs a wallet", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{})
		resp := a.Handle(ctx, a.NewSession(), "transaction history")
		assert.Equal(t, format.HistoryNeedsWallet(), resp.Message)
	})

	t.Run("history for the wallet", func(t *testing.T) {
		t.Parallel()
		explorer := funded()
		explorer.NEP17TransfersFn = func(_ context.Context, address string, limit int) neoxbridge.TransferHistory {
			assert.Equal(t, wallet, address)
			return neoxbridge.TransferHistory{Address: address, Total: 1, Transfers: []neoxbridge.Transfer{
				{TxHash: "0xabc", From: address, To: recipient, Amount: "1"},
			}}
		}
		a := newAgent(newClock(), explorer)
		s := withWallet(t, ctx, a)
		resp := a.Handle(ctx, s, "show my transaction history")
		assert.True(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionTransactionHistory, resp.Action)
	})
}

func TestAgent_NFTs(t *testing.T) {
	t.Parallel()
	explorer := &mock.Explorer{
		NEP11OwnedFn: func(_ context.Context, address string) neoxbridge.NFTHoldings {
			return neoxbridge.NFTHoldings{Address: address, Tokens: []neoxbridge.NFT{
				{Contract: "0xaa", TokenID: "1"}, {Contract: "0xaa", TokenID: "2"},
			}}
		},
	}
	a := newAgent(newClock(), explorer)
	ctx := context.Background()

	resp := a.Handle(ctx, a.NewSession(), "my nfts")
	assert.False(t, resp.Success)
	assert.Equal(t, format.NFTNeedsAddress(), resp.Message)

	resp = a.Handle(ctx, a.NewSession(), "nfts for "+wallet)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "0xaa: 2 NFT(s)")
}

func TestAgent_Governance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("info", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{
			CommitteeFn:      func(context.Context) neoxbridge.Committee { return neoxbridge.Committee{Members: make([]string, 21)} },
			CandidateCountFn: func(context.Context) int64 { return 1500 },
		}
		a := newAgent(newClock(), explorer, agent.WithNetwork("mainnet", ""))
		resp := a.Handle(ctx, a.NewSession(), "committee info")
		assert.True(t, resp.Success)
		assert.Equal(t, format.Governance(21, 1500, "mainnet"), resp.Message)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		explorer := &mock.Explorer{
			CommitteeFn:      func(context.Context) neoxbridge.Committee { return neoxbridge.Committee{Error: "timeout"} },
			CandidateCountFn: func(context.Context) int64 { return 0 },
		}
		a := newAgent(newClock(), explorer)
		resp := a.Handle(ctx, a.NewSession(), "governance")
		assert.False(t, resp.Success)
		assert.Equal(t, format.GovernanceError(), resp.Message)
	})
}

func TestAgent_Price(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	prices := &mock.PriceSource{
		PriceFn: func(_ context.Context, symbol string) (float64, error) {
			if symbol == "NEO" {
				return 55, nil
			}
			return 0, neoxbridge.ErrUnknownSymbol
		},
	}

	t.Run("current price", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{}, agent.WithPrices(prices))
		resp := a.Handle(ctx, a.NewSession(), "neo price")
		assert.True(t, resp.Success)
		assert.Equal(t, format.Price("NEO", 55), resp.Message)
	})

	t.Run("alerts fire on check", func(t *testing.T) {
		t.Parallel()
		c := newClock()
		a := newAgent(c, &mock.Explorer{}, agent.WithPrices(prices), agent.WithAlerts(alert.New(alert.WithClock(c.Now))))
		s := a.NewSession()

		resp := a.Handle(ctx, s, "create price alert NEO above 50")
		require.True(t, resp.Success, resp.Message)
		assert.Equal(t, neoxbridge.ActionPriceAlertCreated, resp.Action)

		resp = a.Handle(ctx, s, "check my alerts")
		assert.Equal(t, neoxbridge.ActionPriceAlerts, resp.Action)
		assert.Contains(t, resp.Message, "Triggered Alerts")
		assert.Contains(t, resp.Message, "No active alerts found")
	})

	t.Run("capacity", func(t *testing.T) {
		t.Parallel()
		c := newClock()
		book := alert.New(alert.WithCapacity(1), alert.WithClock(c.Now))
		a := newAgent(c, &mock.Explorer{}, agent.WithAlerts(book))
		s := a.NewSession()

		a.Handle(ctx, s, "create price alert GAS below 10")
		resp := a.Handle(ctx, s, "create price alert GAS below 9")
		assert.False(t, resp.Success)
		assert.Equal(t, format.AlertCapacity(1), resp.Message)
	})

	t.Run("malformed alert", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{})
		resp := a.Handle(ctx, a.NewSession(), "create price alert for doge")
		assert.Equal(t, format.AlertUsage(), resp.Message)
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{})
		resp := a.Handle(ctx, a.NewSession(), "monitor the market")
		assert.Equal(t, format.PriceHelp(), resp.Message)
	})
}

func TestAgent_Wallet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := newAgent(newClock(), &mock.Explorer{})
	s := a.NewSession()

	resp := a.Handle(ctx, s, "wallet status")
	assert.Equal(t, format.WalletStatus(nil, "testnet"), resp.Message)

	resp = a.Handle(ctx, s, "load wallet L"+strings.Repeat("1", 51))
	assert.False(t, resp.Success)
	assert.Equal(t, neoxbridge.ActionWalletError, resp.Action)
	assert.Nil(t, s.Account)
}

func TestAgent_Status(t *testing.T) {
	t.Parallel()
	c := newClock()
	a := newAgent(c, &mock.Explorer{}, agent.WithSecurity(safeChecker()))
	s := a.NewSession()
	c.Advance(90 * time.Second)

	resp := a.Handle(context.Background(), s, "STATUS")

	assert.Equal(t, neoxbridge.ActionStatus, resp.Action)
	info, ok := resp.Data.(format.StatusInfo)
	require.True(t, ok)
	assert.Equal(t, "id-1", info.SessionID)
	assert.True(t, info.Security)
	assert.Equal(t, 1, info.Messages)
	assert.Equal(t, 90*time.Second, info.Uptime)
}

func TestAgent_LanguageModel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no model gives the welcome", func(t *testing.T) {
		t.Parallel()
		a := newAgent(newClock(), &mock.Explorer{})
		resp := a.Handle(ctx, a.NewSession(), "hello there")
		assert.Equal(t, neoxbridge.ActionWelcome, resp.Action)
		assert.Equal(t, format.Welcome(), resp.Message)
	})

	t.Run("classification routes to a handler", func(t *testing.T) {
		t.Parallel()
		llm := &mock.Completer{
			CompleteFn: func(_ context.Context, req neoxbridge.CompletionRequest) (string, error) {
				assert.Equal(t, 200, req.MaxTokens)
				return "```json\n{\"intent\":\"check_balance\",\"parameters\":{\"address\":\"" + wallet + "\"}}\n```", nil
			},
		}
		a := newAgent(newClock(), funded(), agent.WithCompleter(llm, "test"))
		resp := a.Handle(ctx, a.NewSession(), "how much do I hold")
		assert.Equal(t, neoxbridge.ActionBalanceCheck, resp.Action)
		assert.Contains(t, resp.Message, wallet)
	})

	t.Run("general conversation", func(t *testing.T) {
		t.Parallel()
		var chat neoxbridge.CompletionRequest
		llm := &mock.Completer{
			CompleteFn: func(_ context.Context, req neoxbridge.CompletionRequest) (string, error) {
				if req.SystemPrompt == "" {
					return `{"intent":"general"}`, nil
				}
				chat = req
				return "  NEO is a smart contract platform.  ", nil
			},
		}
		a := newAgent(newClock(), &mock.Explorer{}, agent.WithCompleter(llm, "test"))
		resp := a.Handle(ctx, a.NewSession(), "what is neo")
		assert.Equal(t, neoxbridge.ActionConversation, resp.Action)
		assert.Equal(t, "NEO is a smart contract platform.", resp.Message)
		assert.Equal(t, agent.SystemPrompt, chat.SystemPrompt)
		assert.Equal(t, 300, chat.MaxTokens)
		assert.Contains(t, chat.Prompt, "what is neo")
		assert.Contains(t, chat.Prompt, neoxbridge.NoRecentConversation)
	})

	t.Run("model failure falls back to the welcome", func(t *testing.T) {
		t.Parallel()
		llm := &mock.Completer{
			CompleteFn: func(context.Context, neoxbridge.CompletionRequest) (string, error) {
				return "", errors.New("rate limited")
			},
		}
		a := newAgent(newClock(), &mock.Explorer{}, agent.WithCompleter(llm, "test"))
		resp := a.Handle(ctx, a.NewSession(), "what is neo")
		assert.True(t, resp.Success)
		assert.Equal(t, neoxbridge.ActionWelcome, resp.Action)
	})
}

func TestParseClassification(t *testing.T) {
	t.Parallel()

	t.Run("send with string amount", func(t *testing.T) {
		t.Parallel()
		in, ok := agent.ParseClassification(`{"intent":"send_transaction","parameters":{"amount":"2.5","asset":"gas","recipient":"`+recipient+`"}}`, "q")
		require.True(t, ok)
		assert.Equal(t, neoxbridge.IntentSendTransaction, in.Kind)
		assert.InDelta(t, 2.5, in.Params.Amount, 1e-9)
		assert.Equal(t, "GAS", in.Params.Asset)
		assert.Equal(t, recipient, in.Params.Recipient)
		assert.Equal(t, "q", in.Params.Query)
	})

	t.Run("security alias", func(t *testing.T) {
		t.Parallel()
		in, ok := agent.ParseClassification(`Sure! {"intent":"security_check","parameters":{"address":"`+wallet+`"}}`, "")
		require.True(t, ok)
		assert.Equal(t, neoxbridge.IntentSecurityAnalysis, in.Kind)
		assert.Equal(t, wallet, in.Params.Target)
		assert.Equal(t, neoxbridge.TargetAddress, in.Params.TargetType)
	})

	t.Run("drops malformed addresses", func(t *testing.T) {
		t.Parallel()
		in, ok := agent.ParseClassification(`{"intent":"check_balance","parameters":{"address":"extracted_address_if_any"}}`, "")
		require.True(t, ok)
		assert.Empty(t, in.Params.Address)
	})

	for _, raw := range []string{
		`{"intent":"general_help"}`,
		`{"intent":"governance_info"}`,
		`not json`,
		`{"intent":`,
	} {
		t.Run("rejects "+raw, func(t *testing.T) {
			t.Parallel()
			_, ok := agent.ParseClassification(raw, "")
			assert.False(t, ok)
		})
	}
}
