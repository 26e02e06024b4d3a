package neoxbridge_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/neoxbridge"
	"github.com/stretchr/testify/assert"
)

const (
	testAddress = "NiEtVMWVYgpXrWkRTMwRaMJtJ41gD3912N"
	testTxHash  = "0x8a9a1a1b6e8f77e7bf1c1eb5d3d1a1f3ef1a7b8c9d0e1f2a3b4c5d6e7f8a9b0c"
)

func TestExtractAddress(t *testing.T) {
	t.Parallel()

	t.Run("finds address in sentence", func(t *testing.T) {
		t.Parallel()
		got := neoxbridge.ExtractAddress("check balance for " + testAddress + " please")
		assert.Equal(t, testAddress, got)
	})

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()
		other := "NhGomKyZgSuYUGqrXHcpv1bNH9ntwvfm4c"
		got := neoxbridge.ExtractAddress(testAddress + " and " + other)
		assert.Equal(t, testAddress, got)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, neoxbridge.ExtractAddress("N"+strings.Repeat("a", 32)))
		assert.Empty(t, neoxbridge.ExtractAddress("N"+strings.Repeat("a", 34)))
	})

	t.Run("requires uppercase prefix", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, neoxbridge.ExtractAddress(strings.ToLower(testAddress)))
	})
}

func TestExtractHashes(t *testing.T) {
	t.Parallel()

	t.Run("contract hash", func(t *testing.T) {
		t.Parallel()
		hash := "0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5"
		assert.Equal(t, hash, neoxbridge.ExtractContractHash("analyze token "+hash))
	})

	t.Run("tx hash is not a contract hash", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, neoxbridge.ExtractContractHash("tx "+testTxHash))
	})

	t.Run("tx hash", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, testTxHash, neoxbridge.ExtractTxHash("status of "+testTxHash))
	})
}

func TestExtractURL(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "https://example.com/path?q=1", neoxbridge.ExtractURL("is https://example.com/path?q=1 safe"))
	assert.Empty(t, neoxbridge.ExtractURL("example.com"))
}

func TestExtractPrivateKey(t *testing.T) {
	t.Parallel()

	wif := "KxcgHRTc8SUcvwkG7V8HLoFrPHkUMskeV9nx5fvuTbsEU3z3kAS2"
	hex := strings.Repeat("ab", 32)

	assert.Equal(t, wif, neoxbridge.ExtractPrivateKey("load wallet "+wif))
	assert.Equal(t, "0x"+hex, neoxbridge.ExtractPrivateKey("load wallet 0x"+hex))
	assert.Equal(t, hex, neoxbridge.ExtractPrivateKey("load wallet "+hex))
	assert.Empty(t, neoxbridge.ExtractPrivateKey("load wallet"))
}

func TestExtract(t *testing.T) {
	t.Parallel()
	got := neoxbridge.Extract("send to " + testAddress + " see https://x.io")
	assert.Equal(t, testAddress, got.Address)
	assert.Equal(t, "https://x.io", got.URL)
	assert.Empty(t, got.TxHash)
	assert.Empty(t, got.ContractHash)
}

func TestIsAddress(t *testing.T) {
	t.Parallel()
	assert.True(t, neoxbridge.IsAddress(testAddress))
	assert.False(t, neoxbridge.IsAddress(" "+testAddress))
	assert.False(t, neoxbridge.IsAddress("hello"))
}

func TestRedactKeys(t *testing.T) {
	t.Parallel()
	wif := "KxcgHRTc8SUcvwkG7V8HLoFrPHkUMskeV9nx5fvuTbsEU3z3kAS2"
	hexKey := strings.Repeat("ab", 32)
	txHash := "0x" + strings.Repeat("cd", 32)

	assert.Equal(t, "keep [k] safe", neoxbridge.RedactKeys("keep "+wif+" safe", "[k]"))
	assert.Equal(t, "[k] and [k]", neoxbridge.RedactKeys(hexKey+" and "+wif, "[k]"))
	assert.Equal(t, "status of "+txHash, neoxbridge.RedactKeys("status of "+txHash, "[k]"))
}
