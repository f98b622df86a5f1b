// Package eventlog provides the narrative message sink a game session
// reports to.
package eventlog

// Sink receives narrative events.
type Sink interface {
	LogMessage(text string)
	ClearLogs()
}

// DefaultMaxMessages is the retention of a MessageLog built with New(0).
const DefaultMaxMessages = 100

// MessageLog is an append-only, bounded in-memory Sink.
// When full, the oldest messages are dropped.
type MessageLog struct {
	messages    []string
	maxMessages int
	total       int
}

// New creates a log retaining at most maxMessages entries.
// A non-positive maxMessages selects DefaultMaxMessages.
func New(maxMessages int) *MessageLog {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &MessageLog{maxMessages: maxMessages}
}

// LogMessage appends a message.
func (l *MessageLog) LogMessage(text string) {
	l.messages = append(l.messages, text)
	l.total++

	if len(l.messages) > l.maxMessages {
		l.messages = l.messages[len(l.messages)-l.maxMessages:]
	}
}

// ClearLogs drops every retained message.
func (l *MessageLog) ClearLogs() {
	l.messages = nil
}

// Messages returns the retained messages, oldest first.
func (l *MessageLog) Messages() []string {
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}

// Recent returns up to n most recent messages, newest first.
func (l *MessageLog) Recent(n int) []string {
	if n > len(l.messages) {
		n = len(l.messages)
	}
	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = l.messages[len(l.messages)-1-i]
	}
	return result
}

// Len returns the number of retained messages.
func (l *MessageLog) Len() int { return len(l.messages) }

// Total returns how many messages were ever logged, including dropped and
// cleared ones.
func (l *MessageLog) Total() int { return l.total }
