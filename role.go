package neoxbridge

// Role represents the role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Label returns the speaker label used when history is rendered as prompt
// context.
func (r Role) Label() string {
	if r == RoleUser {
		return "User"
	}
	return "Assistant"
}
