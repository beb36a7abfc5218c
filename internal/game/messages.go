package game

import (
	"fmt"
	"strings"
)

// MsgPriority controls the color of a message in the log panel.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // cyan
	MsgWarning                     // yellow
	MsgCritical                    // red
	MsgSocial                      // white
)

// logWidth is the width of the log panel in cells.
const logWidth = 44

// Message is a single entry in the log.
type Message struct {
	Text     string
	Priority MsgPriority
	Repeat   int // times the same text arrived back to back, at least 1
}

// Line returns the message as shown in the panel.
func (m Message) Line() string {
	if m.Repeat > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Repeat)
	}
	return m.Text
}

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
	last     string
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a message, evicting the oldest lines if full. Long messages are
// wrapped at the panel width. A message identical to the previous one bumps
// its repeat counter instead of adding lines.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	if text == "" {
		return
	}
	if text == l.last && len(l.Messages) > 0 {
		l.Messages[len(l.Messages)-1].Repeat++
		return
	}
	l.last = text
	for _, line := range wrapText(text, logWidth) {
		msg := Message{Text: line, Priority: priority, Repeat: 1}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

func wrapText(s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	n = min(n, len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}
