package format

import "fmt"

// AddressValid is the reply for an address that is well formed and known to
// the network.
func AddressValid(address string) string {
	return fmt.Sprintf(`✅ **Address Validation Successful**

🔍 Address: `+"`%s`"+`
📍 Status: Valid and found on NeoX network
🛡️ Security: Verified format and network presence

This address is ready to use for transactions! Would you like me to:
• Check the balance for this address
• Send tokens to this address
• Run a security check`, address)
}

// AddressNotFound is the reply for a well-formed address the network has
// never seen.
func AddressNotFound(address string) string {
	return fmt.Sprintf(`⚠️ **Address Format Valid but Not Found**

🔍 Address: `+"`%s`"+`
📍 Status: Valid format but not found on network
🛡️ Security: Format verified

The address format is correct, but it wasn't found on the NeoX network. This could mean:
• It's a new address that hasn't been used yet
• There might be a typo in the address
• It could be from a different blockchain network

Double-check the address before using it for transactions.`, address)
}

// AddressInvalid is the reply for text that is not a Neo address.
func AddressInvalid(address, reason string) string {
	return fmt.Sprintf(`❌ **Invalid Address Format**

🔍 Address: `+"`%s`"+`
📍 Status: Invalid format
🛡️ Security: Format validation failed

**Issue:** %s

💡 **Neo Address Requirements:**
• Must be exactly 34 characters long
• Must start with the letter 'N'
• Contains only alphanumeric characters
• Example: `+"`%s`"+`

Please check the address and try again.`, address, reason, exampleAddress)
}

// AddressMissing asks for an address to validate.
func AddressMissing() string {
	return "Please include the address to validate.\nExample: `validate " + exampleAddress + "`"
}
