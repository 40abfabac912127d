package wa

import (
	"context"
	"sync/atomic"

	"github.com/matheus3301/wppsearch/internal/bus"
	"github.com/matheus3301/wppsearch/internal/store"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"
)

// ConnState is the connection state reported by GetStatus.
type ConnState int32

const (
	StateDisconnected ConnState = iota
	StateConnected
	StateLoggedOut
)

func (s ConnState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateLoggedOut:
		return "logged_out"
	default:
		return "disconnected"
	}
}

// Identity reports the logged-in account.
type Identity interface {
	OwnJID() types.JID
	PushName() string
}

// LIDResolver maps hidden-user JIDs to phone-number JIDs.
type LIDResolver interface {
	ResolveLID(ctx context.Context, jid types.JID) types.JID
}

// Connected is the payload of bus.KindConnected.
type Connected struct {
	AccountJID string
	PushName   string
}

// Receipt is the payload of bus.KindReceipt.
type Receipt struct {
	AccountJID string
	ChatJID    string
	MessageIDs []string
	Status     string
}

// EventHandler turns whatsmeow events into bus events. It does NOT call the
// sync engine directly; the engine subscribes to the bus independently.
type EventHandler struct {
	bus      *bus.Bus
	self     Identity
	resolver LIDResolver
	logger   *zap.Logger
	state    atomic.Int32
}

// NewEventHandler creates a new event handler. resolver may be nil.
func NewEventHandler(b *bus.Bus, self Identity, resolver LIDResolver, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		bus:      b,
		self:     self,
		resolver: resolver,
		logger:   logger,
	}
}

// State returns the last observed connection state.
func (h *EventHandler) State() ConnState {
	return ConnState(h.state.Load())
}

// Handle is the main whatsmeow event handler function.
func (h *EventHandler) Handle(rawEvt any) {
	switch evt := rawEvt.(type) {
	case *events.Message:
		h.handleMessage(evt)
	case *events.HistorySync:
		h.handleHistorySync(evt)
	case *events.Receipt:
		h.handleReceipt(evt)
	case *events.Connected:
		h.logger.Info("WhatsApp connected")
		h.state.Store(int32(StateConnected))
		own := h.self.OwnJID()
		if own.IsEmpty() {
			return
		}
		h.bus.Emit(bus.KindConnected, &Connected{
			AccountJID: own.ToNonAD().String(),
			PushName:   h.self.PushName(),
		})
	case *events.Disconnected:
		h.logger.Warn("WhatsApp disconnected")
		h.state.Store(int32(StateDisconnected))
		h.bus.Emit(bus.KindDisconnected, nil)
	case *events.LoggedOut:
		h.logger.Warn("WhatsApp logged out", zap.String("reason", evt.Reason.String()))
		h.state.Store(int32(StateLoggedOut))
		h.bus.Emit(bus.KindLoggedOut, evt.Reason.String())
	}
}

func (h *EventHandler) account() (types.JID, bool) {
	own := h.self.OwnJID()
	if own.IsEmpty() {
		h.logger.Warn("dropping event received before login")
		return own, false
	}
	return own, true
}

func (h *EventHandler) handleMessage(evt *events.Message) {
	own, ok := h.account()
	if !ok {
		return
	}
	evt.Info.Chat = h.resolveJID(evt.Info.Chat)
	evt.Info.Sender = h.resolveJID(evt.Info.Sender)
	h.bus.Emit(bus.KindMessage, ParseLiveMessage(own, evt))
}

func (h *EventHandler) handleHistorySync(evt *events.HistorySync) {
	data := evt.Data
	if data == nil {
		return
	}
	own, ok := h.account()
	if !ok {
		return
	}

	var batch []*store.Incoming
	for _, conv := range data.GetConversations() {
		chat, err := types.ParseJID(conv.GetID())
		if err != nil {
			h.logger.Warn("skipping history conversation", zap.String("id", conv.GetID()), zap.Error(err))
			continue
		}
		chat = h.resolveJID(chat)
		name := conv.GetName()
		if name == "" {
			name = conv.GetDisplayName()
		}
		for _, hm := range conv.GetMessages() {
			if in := ParseHistoryMessage(own, chat, name, hm.GetMessage()); in != nil {
				batch = append(batch, in)
			}
		}
	}

	if len(batch) > 0 {
		h.bus.Emit(bus.KindHistoryBatch, batch)
	}
}

func (h *EventHandler) handleReceipt(evt *events.Receipt) {
	var st string
	switch evt.Type {
	case types.ReceiptTypeDelivered:
		st = "delivered"
	case types.ReceiptTypeRead:
		st = "read"
	case types.ReceiptTypePlayed:
		st = "played"
	default:
		return
	}
	own, ok := h.account()
	if !ok {
		return
	}
	ids := make([]string, 0, len(evt.MessageIDs))
	for _, id := range evt.MessageIDs {
		ids = append(ids, string(id))
	}
	h.bus.Emit(bus.KindReceipt, &Receipt{
		AccountJID: own.ToNonAD().String(),
		ChatJID:    h.resolveJID(evt.Chat).ToNonAD().String(),
		MessageIDs: ids,
		Status:     st,
	})
}

// resolveJID strips the device suffix and maps LIDs to phone numbers when a
// resolver is available.
func (h *EventHandler) resolveJID(jid types.JID) types.JID {
	jid = jid.ToNonAD()
	if h.resolver != nil {
		jid = h.resolver.ResolveLID(context.Background(), jid)
	}
	return jid
}
