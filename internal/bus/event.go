package bus

import "time"

// Event kinds. Subscribers filter on the namespace prefix ("search.", "wa.").
const (
	KindSearchResults = "search.results"

	KindConnected    = "wa.connected"
	KindDisconnected = "wa.disconnected"
	KindLoggedOut    = "wa.logged_out"
	KindMessage      = "wa.message"
	KindHistoryBatch = "wa.history_batch"
	KindReceipt      = "wa.receipt"
	KindPairing      = "wa.pairing"

	KindConversationArchived = "registry.conversation_archived"
)

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
