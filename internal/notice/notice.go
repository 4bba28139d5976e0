// Package notice collects user facing messages for the browse view status line.
package notice

import (
	"sync"
	"time"
)

// Kind classifies a message.
type Kind int

const (
	KindError Kind = iota
	KindWarning
	KindInfo
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindSuccess:
		return "success"
	default:
		return "info"
	}
}

// Message is one status line entry.
type Message struct {
	Text      string
	Kind      Kind
	Timestamp time.Time
}

// Handler receives messages.
type Handler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

const defaultHistory = 50

// Board keeps the most recent messages and reports each one to a callback.
type Board struct {
	mu        sync.RWMutex
	messages  []Message
	limit     int
	onMessage func(Message)
	now       func() time.Time
}

var _ Handler = (*Board)(nil)

// NewBoard creates a board. onMessage may be nil.
func NewBoard(onMessage func(Message)) *Board {
	return &Board{limit: defaultHistory, onMessage: onMessage, now: time.Now}
}

func (b *Board) Error(msg string)   { b.add(msg, KindError) }
func (b *Board) Warning(msg string) { b.add(msg, KindWarning) }
func (b *Board) Info(msg string)    { b.add(msg, KindInfo) }
func (b *Board) Success(msg string) { b.add(msg, KindSuccess) }

func (b *Board) add(text string, kind Kind) {
	b.mu.Lock()
	msg := Message{Text: text, Kind: kind, Timestamp: b.now()}
	b.messages = append(b.messages, msg)
	if over := len(b.messages) - b.limit; over > 0 {
		b.messages = append(b.messages[:0:0], b.messages[over:]...)
	}
	onMessage := b.onMessage
	b.mu.Unlock()

	if onMessage != nil {
		onMessage(msg)
	}
}

// Latest returns the newest message.
func (b *Board) Latest() (Message, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.messages) == 0 {
		return Message{}, false
	}
	return b.messages[len(b.messages)-1], true
}

// History returns a copy of the kept messages, oldest first.
func (b *Board) History() []Message {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Message, len(b.messages))
	copy(out, b.messages)
	return out
}

// Clear drops all messages.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = nil
}
