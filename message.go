package neoxbridge

import "time"

// Message is one turn of the conversation. It is never modified after it is
// appended to a History.
type Message struct {
	Role      Role
	Text      string
	Timestamp time.Time
}

// UserMessage creates a user Message stamped with now.
func UserMessage(text string, now time.Time) Message {
	return Message{Role: RoleUser, Text: text, Timestamp: now}
}

// AssistantMessage creates an assistant Message stamped with now.
func AssistantMessage(text string, now time.Time) Message {
	return Message{Role: RoleAssistant, Text: text, Timestamp: now}
}
