// Package convo holds the single conversation context record shared
// between the mailbox watcher and the chat controller.
package convo

import "sync"

// Mode identifies which pending flow the next chat turn belongs to.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAwaitingReplyDraft
	ModeAwaitingTicketConfirmation
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeAwaitingReplyDraft:
		return "awaiting_reply_draft"
	case ModeAwaitingTicketConfirmation:
		return "awaiting_ticket_confirmation"
	default:
		return "idle"
	}
}

// Context is the shared mutable record between the watcher and the
// controller. The watcher sets the pending sender/subject on new mail;
// the controller reads them and drives the mode transitions. All access
// goes through one mutex, so individual reads and writes are consistent.
//
// Known race, accepted for the single-operator setup: a chat turn
// snapshots the pending fields at its start, so if the watcher records a
// newer mail while a reply is being drafted, the reply still goes to the
// sender snapshotted when the turn began.
type Context struct {
	mu             sync.Mutex
	pendingSender  string
	pendingSubject string
	mode           Mode
}

// NewContext returns an idle context with no pending mail.
func NewContext() *Context {
	return &Context{}
}

// SetPending records the sender and subject of the most recent new mail.
// Last new mail wins when several arrive in one poll cycle.
func (c *Context) SetPending(sender, subject string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pendingSender = sender
	c.pendingSubject = subject
}

// Pending returns a snapshot of the pending sender and subject.
// ok is false when no mail has been recorded yet.
func (c *Context) Pending() (sender, subject string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pendingSender, c.pendingSubject, c.pendingSender != ""
}

// Mode returns the current conversation mode.
func (c *Context) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mode
}

// SetMode sets the conversation mode.
func (c *Context) SetMode(m Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = m
}

// ConsumeMode returns the current mode and resets it to idle in one
// critical section. A turn that entered a non-idle mode always brings the
// machine back to idle; the handler may then arm the next mode explicitly.
func (c *Context) ConsumeMode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.mode
	c.mode = ModeIdle
	return m
}
