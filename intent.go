package neoxbridge

// IntentKind classifies a user message. The set is closed.
type IntentKind string

const (
	IntentValidateAddress    IntentKind = "validate_address"
	IntentCheckBalance       IntentKind = "check_balance"
	IntentSendTransaction    IntentKind = "send_transaction"
	IntentBulkTransaction    IntentKind = "bulk_transaction"
	IntentCheckTransaction   IntentKind = "check_transaction"
	IntentSecurityAnalysis   IntentKind = "security_analysis"
	IntentBlockchainData     IntentKind = "blockchain_data"
	IntentNFTOperations      IntentKind = "nft_operations"
	IntentPriceMonitoring    IntentKind = "price_monitoring"
	IntentGovernanceInfo     IntentKind = "governance_info"
	IntentHelp               IntentKind = "help"
	IntentGeneral            IntentKind = "general"
	IntentWalletOperations   IntentKind = "wallet_operations"
	IntentTransactionHelp    IntentKind = "transaction_help"
	IntentTransactionHistory IntentKind = "transaction_history"
	IntentConfirmTransaction IntentKind = "confirm_transaction"
	IntentCancelTransaction  IntentKind = "cancel_transaction"
)

var intentKinds = map[IntentKind]bool{
	IntentValidateAddress:    true,
	IntentCheckBalance:       true,
	IntentSendTransaction:    true,
	IntentBulkTransaction:    true,
	IntentCheckTransaction:   true,
	IntentSecurityAnalysis:   true,
	IntentBlockchainData:     true,
	IntentNFTOperations:      true,
	IntentPriceMonitoring:    true,
	IntentGovernanceInfo:     true,
	IntentHelp:               true,
	IntentGeneral:            true,
	IntentWalletOperations:   true,
	IntentTransactionHelp:    true,
	IntentTransactionHistory: true,
	IntentConfirmTransaction: true,
	IntentCancelTransaction:  true,
}

// Valid reports whether k is one of the defined kinds.
func (k IntentKind) Valid() bool { return intentKinds[k] }

// Asset names accepted by transfers.
const (
	AssetNEO = "NEO"
	AssetGAS = "GAS"
)

// Params carries values extracted from a message. Zero values mean the
// value was not present.
type Params struct {
	Address    string
	Amount     float64
	Asset      string
	Recipient  string
	Target     string
	TargetType TargetType
	PrivateKey string
	TxHash     string
	// Query is the lowercased message, used by handlers that branch on
	// sub-phrases.
	Query string
}

// Intent is the classification of one message. It is produced fresh per
// message and never stored.
type Intent struct {
	Kind   IntentKind
	Params Params
}
