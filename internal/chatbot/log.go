package chatbot

import "time"

// Role distinguishes the two sides of the conversation.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one chat entry.
type Message struct {
	Role    Role
	Content string
	Time    time.Time
}

// Log is the ordered, append-only conversation. Prior entries are never
// removed or reordered. The simulated reply latency is driven by the caller:
// Post records the user's text and marks a reply pending, CompleteReply
// appends the bot response once the delay elapses.
type Log struct {
	msgs    []Message
	pending bool
	epoch   int
}

// NewLog starts a conversation seeded with the bot greeting.
func NewLog(now time.Time) *Log {
	return &Log{msgs: []Message{{Role: RoleBot, Content: Greeting, Time: now}}}
}

// Messages returns the conversation, oldest first.
func (l *Log) Messages() []Message {
	out := make([]Message, len(l.msgs))
	copy(out, l.msgs)
	return out
}

// Pending reports whether a bot reply is in its simulated delay: the typing
// indicator is shown and input is disabled while true.
func (l *Log) Pending() bool { return l.pending }

// Post appends the user's text and marks a reply pending. It returns the
// epoch to pass to CompleteReply, and false when a reply is already pending
// or the text is blank.
func (l *Log) Post(text string, now time.Time) (int, bool) {
	if l.pending || text == "" {
		return 0, false
	}
	l.msgs = append(l.msgs, Message{Role: RoleUser, Content: text, Time: now})
	l.pending = true
	return l.epoch, true
}

// CompleteReply appends the canned response for the most recent user message.
// Stale epochs are ignored.
func (l *Log) CompleteReply(epoch int, now time.Time) bool {
	if epoch != l.epoch || !l.pending {
		return false
	}
	last := l.msgs[len(l.msgs)-1]
	l.msgs = append(l.msgs, Message{Role: RoleBot, Content: Respond(last.Content), Time: now})
	l.pending = false
	l.epoch++
	return true
}
