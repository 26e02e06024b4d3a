package neoxbridge

import "regexp"

var (
	addressPattern      = regexp.MustCompile(`\bN[A-Za-z0-9]{33}\b`)
	addressExact        = regexp.MustCompile(`^N[A-Za-z0-9]{33}$`)
	contractHashPattern = regexp.MustCompile(`\b0x[a-fA-F0-9]{40}\b`)
	txHashPattern       = regexp.MustCompile(`0x[a-fA-F0-9]{64}`)
	urlPattern          = regexp.MustCompile(`https?://[^\s]+`)

	// Private key shapes in the order they are tried.
	keyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[KL][1-9A-HJ-NP-Za-km-z]{51}`), // WIF
		regexp.MustCompile(`0x[a-fA-F0-9]{64}`),
		regexp.MustCompile(`\b[a-fA-F0-9]{64}\b`),
	}
)

// Extraction holds the first match of each value pattern found in a message.
// Empty fields mean no match.
type Extraction struct {
	Address      string
	ContractHash string
	TxHash       string
	URL          string
}

// Extract scans text for every value pattern. It validates shape only;
// checksums and network existence are checked by the clients.
func Extract(text string) Extraction {
	return Extraction{
		Address:      ExtractAddress(text),
		ContractHash: ExtractContractHash(text),
		TxHash:       ExtractTxHash(text),
		URL:          ExtractURL(text),
	}
}

// ExtractAddress returns the first Neo-address-shaped token in text.
func ExtractAddress(text string) string {
	return addressPattern.FindString(text)
}

// ExtractContractHash returns the first 0x-prefixed 40-hex-digit hash in text.
func ExtractContractHash(text string) string {
	return contractHashPattern.FindString(text)
}

// ExtractTxHash returns the first 0x-prefixed 64-hex-digit hash in text.
func ExtractTxHash(text string) string {
	return txHashPattern.FindString(text)
}

// ExtractURL returns the first http(s) URL in text.
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}

// ExtractPrivateKey returns the first private-key-shaped token in text,
// trying WIF, then 0x-prefixed hex, then bare hex.
func ExtractPrivateKey(text string) string {
	for _, p := range keyPatterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// RedactKeys replaces every WIF and bare 64-hex token in text with mask.
// The 0x-prefixed hex form is left alone because it is also the shape of a
// transaction hash.
func RedactKeys(text, mask string) string {
	text = keyPatterns[0].ReplaceAllString(text, mask)
	return keyPatterns[2].ReplaceAllString(text, mask)
}

// IsAddress reports whether s, in full, has the shape of a Neo address.
func IsAddress(s string) bool {
	return addressExact.MatchString(s)
}
