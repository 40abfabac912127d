// Package entity holds the account and conversation types shared by the
// registry, the store adapters and the search task.
package entity

import (
	"errors"
	"fmt"
	"sync"

	"go.mau.fi/whatsmeow/types"
)

// ErrInvalidAddress is returned when a stored contact address cannot be parsed.
var ErrInvalidAddress = errors.New("invalid address")

// Mode is the conversation mode as persisted by the store.
type Mode int

const (
	ModeSingle Mode = 0
	ModeMulti  Mode = 1
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Kind tags which variant sits behind a Conversational.
type Kind int

const (
	KindLive Kind = iota
	KindStub
)

func (k Kind) String() string {
	if k == KindStub {
		return "stub"
	}
	return "live"
}

// Conversational is implemented by live conversations and by stubs.
type Conversational interface {
	UUID() string
	Account() *Account
	Address() types.JID
	Mode() Mode
	Kind() Kind
}

var (
	_ Conversational = (*Conversation)(nil)
	_ Conversational = (*Stub)(nil)
)

// Account is a local messaging identity.
type Account struct {
	UUID        string
	JID         types.JID
	DisplayName string
}

// Conversation is a live conversation owned by the registry.
type Conversation struct {
	mu      sync.RWMutex
	uuid    string
	account *Account
	contact types.JID
	mode    Mode
	name    string
}

// NewConversation creates a live conversation.
func NewConversation(uuid string, account *Account, contact types.JID, mode Mode, name string) *Conversation {
	return &Conversation{
		uuid:    uuid,
		account: account,
		contact: contact,
		mode:    mode,
		name:    name,
	}
}

func (c *Conversation) UUID() string       { return c.uuid }
func (c *Conversation) Account() *Account  { return c.account }
func (c *Conversation) Address() types.JID { return c.contact }
func (c *Conversation) Kind() Kind         { return KindLive }

func (c *Conversation) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Name returns the display name, falling back to the contact address.
func (c *Conversation) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.name == "" {
		return c.contact.String()
	}
	return c.name
}

// SetName updates the display name. Empty names are ignored.
func (c *Conversation) SetName(name string) {
	if name == "" {
		return
	}
	c.mu.Lock()
	c.name = name
	c.mu.Unlock()
}

// SetMode updates the conversation mode.
func (c *Conversation) SetMode(m Mode) {
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()
}

// Stub stands in for a conversation that is no longer live. It is never
// persisted and lives only as long as the search task that built it.
type Stub struct {
	uuid    string
	account *Account
	contact types.JID
	mode    Mode
}

// NewStub builds a stub for the given account and bare contact address.
func NewStub(account *Account, uuid string, contact types.JID, mode Mode) *Stub {
	return &Stub{
		uuid:    uuid,
		account: account,
		contact: contact.ToNonAD(),
		mode:    mode,
	}
}

func (s *Stub) UUID() string       { return s.uuid }
func (s *Stub) Account() *Account  { return s.account }
func (s *Stub) Address() types.JID { return s.contact }
func (s *Stub) Mode() Mode         { return s.mode }
func (s *Stub) Kind() Kind         { return KindStub }

// ParseAddress parses a stored JID string. Empty or serverless addresses are
// rejected with ErrInvalidAddress.
func ParseAddress(s string) (types.JID, error) {
	if s == "" {
		return types.EmptyJID, fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	jid, err := types.ParseJID(s)
	if err != nil {
		return types.EmptyJID, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	if jid.IsEmpty() {
		return types.EmptyJID, fmt.Errorf("%w: %q has no server", ErrInvalidAddress, s)
	}
	return jid, nil
}
