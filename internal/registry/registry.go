// Package registry keeps the live accounts and open conversations in memory.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/matheus3301/wppsearch/internal/entity"
	"github.com/matheus3301/wppsearch/internal/store"
	"go.mau.fi/whatsmeow/types"
	"go.uber.org/zap"
)

// Source is the persisted state the registry is loaded from.
type Source interface {
	ListAccounts() ([]store.Account, error)
	ListConversations(status store.ConversationStatus) ([]store.Conversation, error)
}

// Registry resolves live accounts and conversations by UUID. It is safe for
// concurrent use.
type Registry struct {
	logger *zap.Logger

	mu            sync.RWMutex
	accounts      map[string]*entity.Account
	conversations map[string]*entity.Conversation
	byAddress     map[string]*entity.Conversation // account uuid + "/" + bare contact
}

// New creates an empty registry.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger:        logger,
		accounts:      make(map[string]*entity.Account),
		conversations: make(map[string]*entity.Conversation),
		byAddress:     make(map[string]*entity.Conversation),
	}
}

// Load adds every account and open conversation of src. Rows with an
// unparseable address are skipped.
func (r *Registry) Load(ctx context.Context, src Source) error {
	accounts, err := src.ListAccounts()
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	for _, a := range accounts {
		if _, err := r.AccountFromStore(a); err != nil {
			r.logger.Warn("skipping account", zap.String("account", a.UUID), zap.Error(err))
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	convs, err := src.ListConversations(store.ConversationOpen)
	if err != nil {
		return fmt.Errorf("list conversations: %w", err)
	}
	for _, c := range convs {
		if _, err := r.ConversationFromStore(c); err != nil {
			r.logger.Warn("skipping conversation", zap.String("conversation", c.UUID), zap.Error(err))
		}
	}

	nAcc, nConv := r.Counts()
	r.logger.Info("registry loaded", zap.Int("accounts", nAcc), zap.Int("conversations", nConv))
	return nil
}

// AccountFromStore registers a persisted account. An already known account
// is returned as is.
func (r *Registry) AccountFromStore(a store.Account) (*entity.Account, error) {
	if acc := r.FindAccount(a.UUID); acc != nil {
		return acc, nil
	}
	jid, err := entity.ParseAddress(a.JID)
	if err != nil {
		return nil, err
	}
	acc := &entity.Account{UUID: a.UUID, JID: jid.ToNonAD(), DisplayName: a.DisplayName}
	r.AddAccount(acc)
	return acc, nil
}

// ConversationFromStore registers a persisted conversation. The owning
// account must already be registered. A known conversation gets its name
// and mode refreshed.
func (r *Registry) ConversationFromStore(c store.Conversation) (*entity.Conversation, error) {
	if conv := r.FindConversation(c.UUID); conv != nil {
		conv.SetName(c.Name)
		conv.SetMode(entity.Mode(c.Mode))
		return conv, nil
	}
	acc := r.FindAccount(c.AccountUUID)
	if acc == nil {
		return nil, fmt.Errorf("conversation %s: account %s not registered", c.UUID, c.AccountUUID)
	}
	contact, err := entity.ParseAddress(c.ContactJID)
	if err != nil {
		return nil, err
	}
	conv := entity.NewConversation(c.UUID, acc, contact.ToNonAD(), entity.Mode(c.Mode), c.Name)
	r.AddConversation(conv)
	return conv, nil
}

// FindAccount returns the account with uuid, or nil.
func (r *Registry) FindAccount(uuid string) *entity.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.accounts[uuid]
}

// FindConversation returns the live conversation with uuid, or nil.
func (r *Registry) FindConversation(uuid string) *entity.Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.conversations[uuid]
}

// findByAddress returns the live conversation of account with contact, or nil.
func (r *Registry) findByAddress(accountUUID string, contact types.JID) *entity.Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byAddress[addressKey(accountUUID, contact)]
}

// AddAccount registers acc, replacing any account with the same UUID.
func (r *Registry) AddAccount(acc *entity.Account) {
	r.mu.Lock()
	r.accounts[acc.UUID] = acc
	r.mu.Unlock()
}

// AddConversation registers c, replacing any conversation with the same UUID.
func (r *Registry) AddConversation(c *entity.Conversation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.conversations[c.UUID()]; ok {
		delete(r.byAddress, addressKey(old.Account().UUID, old.Address()))
	}
	r.conversations[c.UUID()] = c
	r.byAddress[addressKey(c.Account().UUID, c.Address())] = c
}

// RemoveConversation drops a conversation. It reports whether it was present.
func (r *Registry) RemoveConversation(uuid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conversations[uuid]
	if !ok {
		return false
	}
	delete(r.conversations, uuid)
	delete(r.byAddress, addressKey(c.Account().UUID, c.Address()))
	return true
}

// Counts returns the number of accounts and live conversations.
func (r *Registry) Counts() (accounts, conversations int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts), len(r.conversations)
}

func addressKey(accountUUID string, contact types.JID) string {
	return accountUUID + "/" + contact.ToNonAD().String()
}
