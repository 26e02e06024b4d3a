package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/neoxbridge"
)

// TxStatus renders a transaction lookup.
func TxStatus(s neoxbridge.TxStatus) string {
	if s.Error != "" || !s.Found {
		reason := s.Error
		if reason == "" {
			reason = "transaction not found"
		}
		return fmt.Sprintf(`❌ **Transaction Status Check Failed**

🔍 Hash: `+"`%s`"+`
📊 Error: %s

Please verify the transaction hash is correct. Transaction hashes should:
• Start with '0x'
• Be exactly 66 characters long
• Contain only hexadecimal characters (0-9, a-f)`, s.TxHash, reason)
	}
	ok := "✅"
	if s.VMState != "HALT" {
		ok = "❌"
	}
	return fmt.Sprintf(`📊 **Transaction Status**

🔍 Hash: `+"`%s`"+`
📈 Status: %s %s
🏗️ Block Height: %s
⛽ GAS Consumed: %s
🕐 Timestamp: %s`,
		s.TxHash, ok, strings.ToUpper(s.VMState), comma(s.BlockHeight),
		s.GasConsumed, timestamp(s.Timestamp))
}

// TxHashMissing asks for a transaction hash.
func TxHashMissing() string {
	return "Please include the transaction hash.\nExample: `check tx 0x` followed by 64 hex characters"
}

// Overview summarizes chain height and asset count.
func Overview(height, assets int64, network string) string {
	return fmt.Sprintf(`📊 **Neo Blockchain Overview**

🔸 **Current Height:** %s
🔸 **Total Assets:** %s
🔸 **Network:** %s
📡 **Status:** Online

**Available queries:**
• `+"`recent blocks`"+` - Show recent block info
• `+"`asset count`"+` - Total number of assets
• `+"`block height`"+` - Current blockchain height`, comma(height), comma(assets), network)
}

// Height reports the current block height.
func Height(height int64, network, node string) string {
	return fmt.Sprintf(`📊 **Neo Blockchain Data**

🔸 **Current Block Height:** %s
🔸 **Network:** %s
📡 **Node:** %s`, comma(height), network, node)
}

// RecentBlocks lists a page of blocks.
func RecentBlocks(blocks []neoxbridge.Block, network string) string {
	lines := make([]string, len(blocks))
	for i, b := range blocks {
		lines[i] = fmt.Sprintf("Block #%s: %d transactions", comma(b.Index), b.TransactionCount)
	}
	return fmt.Sprintf("📊 **Recent Blocks**\n\n%s\n\n🔸 **Network:** %s", bullets(lines), network)
}

// AssetCount reports the number of registered assets.
func AssetCount(n int64, network string) string {
	return fmt.Sprintf(`📊 **Neo Asset Statistics**

🔸 **Total Assets:** %s
🔸 **Network:** %s
💼 **Includes:** NEP-17 tokens, NEP-11 NFTs`, comma(n), network)
}

// ContractInfo describes a deployed contract.
func ContractInfo(c neoxbridge.Contract, network string) string {
	name := c.Name
	if name == "" {
		name = "Unnamed"
	}
	return fmt.Sprintf(`📜 **Contract Information**

🔸 **Hash:** `+"`%s`"+`
🔸 **Name:** %s
🔸 **Network:** %s`, c.Hash, name, network)
}

// ChainError is the reply when blockchain data could not be fetched.
func ChainError(reason string) string {
	return "❌ Failed to get blockchain data: " + reason
}

// NFTs renders an address's NEP-11 holdings grouped by contract.
func NFTs(h neoxbridge.NFTHoldings, network string) string {
	if len(h.Tokens) == 0 {
		return fmt.Sprintf(`🎨 **NFT Collection for %s**

🔸 **Total NFTs:** 0
📦 **Collections:** None found

🌐 **Network:** %s`, h.Address, network)
	}
	groups := h.ByContract()
	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = fmt.Sprintf("%s: %d NFT(s)", g.Contract, g.Count)
	}
	return fmt.Sprintf(`🎨 **NFT Collection for %s**

🔸 **Total NFTs:** %d
📦 **Collections:**

%s

🌐 **Network:** %s`, h.Address, len(h.Tokens), bullets(lines), network)
}

// NFTNeedsAddress asks for an address when no wallet is loaded.
func NFTNeedsAddress() string {
	return "Please provide an address or load your wallet first.\nExample: `my nfts` or `nfts for Nxxx...`"
}

// NFTError is the reply when holdings could not be fetched.
func NFTError(reason string) string {
	return "❌ Failed to get NFT data: " + reason
}

// Governance summarizes the committee and candidate set.
func Governance(committee int, candidates int64, network string) string {
	return fmt.Sprintf(`🏛️ **Neo Governance Information**

🔸 **Committee Members:** %d
🔸 **Total Candidates:** %s
🔸 **Network:** %s

**Governance Features:**
• Committee member voting
• Candidate registration
• Voting power delegation
• Network parameter changes`, committee, comma(candidates), network)
}

// GovernanceError is the reply when governance data is unavailable.
func GovernanceError() string {
	return "❌ Could not retrieve governance information"
}

// History lists recent NEP-17 transfers for an address.
func History(h neoxbridge.TransferHistory, network string) string {
	if h.Error != "" {
		return "❌ Transaction analysis error: " + h.Error
	}
	if len(h.Transfers) == 0 {
		return fmt.Sprintf(`📊 **Transaction History for %s**

🔸 **NEP-17 Transfers:** none found
🔸 **Network:** %s`, h.Address, network)
	}
	lines := make([]string, len(h.Transfers))
	for i, t := range h.Transfers {
		dir := "⬇️ in"
		if t.From == h.Address {
			dir = "⬆️ out"
		}
		lines[i] = fmt.Sprintf("%s %s (%s) `%s`", dir, t.Amount, shortHash(t.Contract), shortHash(t.TxHash))
	}
	return fmt.Sprintf(`📊 **Transaction History for %s**

🔸 **NEP-17 Transfers:** %s total, showing %d
🔸 **Network:** %s

%s`, h.Address, comma(h.Total), len(h.Transfers), network, bullets(lines))
}

// HistoryNeedsWallet asks for a wallet or address before listing history.
func HistoryNeedsWallet() string {
	return "Please load your wallet first to analyze transactions.\nUse: `load wallet YOUR_PRIVATE_KEY`"
}

func shortHash(h string) string {
	if len(h) <= 14 {
		return h
	}
	return h[:8] + "…" + h[len(h)-4:]
}

// timestamp renders an explorer timestamp in milliseconds.
func timestamp(ms int64) string {
	if ms == 0 {
		return "unknown"
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05 UTC")
}
