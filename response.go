package neoxbridge

import "time"

// ActionType tags what a Response did, for callers and tests that need more
// than the rendered text.
type ActionType string

const (
	ActionAddressValidation  ActionType = "address_validation"
	ActionBalanceCheck       ActionType = "balance_check"
	ActionBalanceError       ActionType = "balance_error"
	ActionSecurityAnalysis   ActionType = "security_analysis"
	ActionSecurityHelp       ActionType = "security_help"
	ActionSecurityError      ActionType = "security_error"
	ActionBlockchainInfo     ActionType = "blockchain_info"
	ActionBlockchainError    ActionType = "blockchain_error"
	ActionNFTInfo            ActionType = "nft_info"
	ActionNFTError           ActionType = "nft_error"
	ActionPriceAlertCreated  ActionType = "price_alert_created"
	ActionPriceAlerts        ActionType = "price_alerts"
	ActionPriceInfo          ActionType = "price_info"
	ActionPriceHelp          ActionType = "price_help"
	ActionPriceError         ActionType = "price_error"
	ActionTransactionPreview ActionType = "transaction_preview"
	ActionTransactionSent    ActionType = "transaction_confirmed"
	ActionTransactionBlocked ActionType = "transaction_blocked"
	ActionTransactionError   ActionType = "transaction_error"
	ActionTransactionCancel  ActionType = "transaction_cancelled"
	ActionTransactionHelp    ActionType = "transaction_help"
	ActionTransactionStatus  ActionType = "transaction_status"
	ActionTransactionHistory ActionType = "transaction_history"
	ActionFeaturePreview     ActionType = "feature_preview"
	ActionGovernanceInfo     ActionType = "governance_info"
	ActionGovernanceError    ActionType = "governance_error"
	ActionWalletLoaded       ActionType = "wallet_loaded"
	ActionWalletStatus       ActionType = "wallet_status"
	ActionWalletError        ActionType = "wallet_error"
	ActionHelp               ActionType = "help"
	ActionWelcome            ActionType = "welcome"
	ActionConversation       ActionType = "conversation"
	ActionStatus             ActionType = "status"
	ActionExamples           ActionType = "examples"
	ActionError              ActionType = "error"
)

// Response is the uniform result of handling one message.
type Response struct {
	Success   bool
	Message   string
	Data      any
	Action    ActionType
	Timestamp time.Time
}

// NewResponse builds a Response with every field set.
func NewResponse(success bool, message string, data any, action ActionType, now time.Time) Response {
	return Response{
		Success:   success,
		Message:   message,
		Data:      data,
		Action:    action,
		Timestamp: now,
	}
}
