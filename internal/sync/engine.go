package sync

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matheus3301/wppsearch/internal/bus"
	"github.com/matheus3301/wppsearch/internal/registry"
	"github.com/matheus3301/wppsearch/internal/store"
	"github.com/matheus3301/wppsearch/internal/wa"
	"go.uber.org/zap"
)

// historyCheckpointKey prefixes the sync_state key holding the newest
// history timestamp ingested for an account.
const historyCheckpointKey = "history_last_ts:"

// Engine handles idempotent ingestion of messages into the store and keeps
// the registry in step with new conversations.
// It subscribes to "wa.*" events on the bus and processes them.
type Engine struct {
	db       *store.DB
	registry *registry.Registry
	bus      *bus.Bus
	logger   *zap.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewEngine creates a new sync engine.
func NewEngine(db *store.DB, reg *registry.Registry, b *bus.Bus, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		db:       db,
		registry: reg,
		bus:      b,
		logger:   logger,
	}
}

// Start subscribes to inbound WhatsApp events on the bus.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	ch, unsub := e.bus.Subscribe("wa.", 256)
	e.done = make(chan struct{})

	go func() {
		defer close(e.done)
		defer unsub()
		for {
			select {
			case evt, ok := <-ch:
				if !ok {
					return
				}
				e.handleEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the engine and waits for the event loop to exit.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
		<-e.done
	}
}

func (e *Engine) handleEvent(evt bus.Event) {
	switch evt.Kind {
	case bus.KindConnected:
		c, ok := evt.Payload.(*wa.Connected)
		if !ok {
			return
		}
		if err := e.EnsureAccount(c.AccountJID, c.PushName); err != nil {
			e.logger.Error("failed to register account", zap.Error(err), zap.String("account", c.AccountJID))
		}
	case bus.KindMessage:
		in, ok := evt.Payload.(*store.Incoming)
		if !ok {
			return
		}
		if err := e.IngestMessage(in); err != nil {
			e.logger.Error("failed to ingest message", zap.Error(err), zap.String("msg_id", in.Message.RemoteMsgID))
		}
	case bus.KindHistoryBatch:
		batch, ok := evt.Payload.([]*store.Incoming)
		if !ok {
			return
		}
		if err := e.IngestHistoryBatch(batch); err != nil {
			e.logger.Error("failed to ingest history batch", zap.Error(err), zap.Int("count", len(batch)))
		} else {
			e.logger.Info("history batch ingested", zap.Int("messages", len(batch)))
		}
	case bus.KindReceipt:
		r, ok := evt.Payload.(*wa.Receipt)
		if !ok {
			return
		}
		if err := e.ApplyReceipt(r); err != nil {
			e.logger.Warn("failed to apply receipt", zap.Error(err), zap.String("chat", r.ChatJID))
		}
	}
}

// EnsureAccount persists the account and registers it.
func (e *Engine) EnsureAccount(jid, displayName string) error {
	acc, err := e.db.UpsertAccount(jid, displayName)
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	if _, err := e.registry.AccountFromStore(*acc); err != nil {
		return fmt.Errorf("register account: %w", err)
	}
	return nil
}

// IngestMessage processes a single message into the store (idempotent).
func (e *Engine) IngestMessage(in *store.Incoming) error {
	acc, err := e.db.UpsertAccount(in.AccountJID, "")
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	conv, err := e.db.EnsureConversation(acc.UUID, in.ChatJID, in.ChatName, in.Mode)
	if err != nil {
		return fmt.Errorf("ensure conversation: %w", err)
	}
	msg := in.Message
	msg.ConversationUUID = conv.UUID
	if err := e.db.UpsertMessage(&msg); err != nil {
		return fmt.Errorf("upsert message: %w", err)
	}

	e.register(*acc, *conv)
	return nil
}

// IngestHistoryBatch processes a batch of history messages in a transaction
// and advances the account's history checkpoint.
func (e *Engine) IngestHistoryBatch(batch []*store.Incoming) error {
	if len(batch) == 0 {
		return nil
	}

	accounts := make(map[string]store.Account)
	convs := make(map[string]store.Conversation)
	newest := make(map[string]int64)

	err := e.db.WithTx(func(tx *store.Tx) error {
		for _, in := range batch {
			acc, ok := accounts[in.AccountJID]
			if !ok {
				a, err := tx.UpsertAccount(in.AccountJID, "")
				if err != nil {
					return fmt.Errorf("upsert account in batch: %w", err)
				}
				acc = *a
				accounts[in.AccountJID] = acc
			}

			conv, err := tx.EnsureConversation(acc.UUID, in.ChatJID, in.ChatName, in.Mode)
			if err != nil {
				return fmt.Errorf("ensure conversation in batch: %w", err)
			}
			convs[conv.UUID] = *conv

			msg := in.Message
			msg.ConversationUUID = conv.UUID
			if err := tx.UpsertMessage(&msg); err != nil {
				return fmt.Errorf("upsert message in batch: %w", err)
			}
			if msg.TimeSent > newest[in.AccountJID] {
				newest[in.AccountJID] = msg.TimeSent
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	byUUID := make(map[string]store.Account, len(accounts))
	for _, a := range accounts {
		byUUID[a.UUID] = a
	}
	for _, c := range convs {
		e.register(byUUID[c.AccountUUID], c)
	}

	for jid, ts := range newest {
		if err := e.advanceCheckpoint(jid, ts); err != nil {
			e.logger.Warn("failed to store history checkpoint", zap.Error(err), zap.String("account", jid))
		}
	}
	return nil
}

// HistoryCheckpoint returns the newest history timestamp (unix ms) ingested
// for the account, or 0.
func (e *Engine) HistoryCheckpoint(accountJID string) (int64, error) {
	v, err := e.db.GetSyncState(historyCheckpointKey + accountJID)
	if err != nil || v == "" {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func (e *Engine) advanceCheckpoint(accountJID string, ts int64) error {
	cur, err := e.HistoryCheckpoint(accountJID)
	if err != nil {
		return err
	}
	if ts <= cur {
		return nil
	}
	return e.db.SetSyncState(historyCheckpointKey+accountJID, strconv.FormatInt(ts, 10))
}

// ApplyReceipt upgrades the delivery status of the acknowledged messages.
func (e *Engine) ApplyReceipt(r *wa.Receipt) error {
	acc, err := e.db.GetAccountByJID(r.AccountJID)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if acc == nil {
		return nil
	}
	n, err := e.db.UpdateMessageStatus(acc.UUID, r.ChatJID, r.MessageIDs, r.Status)
	if err != nil {
		return err
	}
	e.logger.Debug("receipt applied", zap.String("status", r.Status), zap.Int64("updated", n))
	return nil
}

// ArchiveConversation marks the conversation archived and drops it from the
// registry. Search results for it resolve to stubs afterwards.
func (e *Engine) ArchiveConversation(conversationUUID string) error {
	if err := e.db.SetConversationStatus(conversationUUID, store.ConversationArchived); err != nil {
		return fmt.Errorf("archive conversation: %w", err)
	}
	e.registry.RemoveConversation(conversationUUID)
	e.bus.Emit(bus.KindConversationArchived, conversationUUID)
	e.logger.Info("conversation archived", zap.String("conversation", conversationUUID))
	return nil
}

// register mirrors persisted rows into the registry. Archived conversations
// stay out of it.
func (e *Engine) register(acc store.Account, conv store.Conversation) {
	if _, err := e.registry.AccountFromStore(acc); err != nil {
		e.logger.Warn("skipping account", zap.String("account", acc.UUID), zap.Error(err))
		return
	}
	if conv.Status == store.ConversationArchived {
		return
	}
	if _, err := e.registry.ConversationFromStore(conv); err != nil {
		e.logger.Warn("skipping conversation", zap.String("conversation", conv.UUID), zap.Error(err))
	}
}
