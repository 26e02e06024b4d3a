package neoxbridge

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultHistoryCapacity bounds a session's rolling history.
const DefaultHistoryCapacity = 200

// NoRecentConversation is rendered by History.Context when there is not
// enough history to be worth including.
const NoRecentConversation = "No recent conversation."

// History is a rolling buffer of messages. Appending past capacity drops
// the oldest message.
type History struct {
	capacity int
	messages []Message
}

// NewHistory returns an empty History with the given capacity. A
// non-positive capacity uses DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Append adds m to the end of the history.
func (h *History) Append(m Message) {
	if h.capacity <= 0 {
		h.capacity = DefaultHistoryCapacity
	}
	if len(h.messages) == h.capacity {
		copy(h.messages, h.messages[1:])
		h.messages = h.messages[:len(h.messages)-1]
	}
	h.messages = append(h.messages, m)
}

// Len returns the number of messages held.
func (h *History) Len() int { return len(h.messages) }

// Messages returns a copy of all held messages, oldest first.
func (h *History) Messages() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Recent returns a copy of the last n messages, oldest first.
func (h *History) Recent(n int) []Message {
	if n > len(h.messages) {
		n = len(h.messages)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Message, n)
	copy(out, h.messages[len(h.messages)-n:])
	return out
}

// Context renders the last n messages as "User: ..." / "Assistant: ..."
// lines for an LLM prompt. Each message is cut to width grapheme clusters.
// With n or fewer messages held it returns NoRecentConversation.
func (h *History) Context(n, width int) string {
	if len(h.messages) <= n {
		return NoRecentConversation
	}
	lines := make([]string, 0, n)
	for _, m := range h.Recent(n) {
		lines = append(lines, m.Role.Label()+": "+truncate(m.Text, width))
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to at most width grapheme clusters, appending "..." when
// anything was cut.
func truncate(s string, width int) string {
	if uniseg.GraphemeClusterCount(s) <= width {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < width && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	b.WriteString("...")
	return b.String()
}
