package store

// ConversationStatus is the persisted open/archived flag of a conversation.
type ConversationStatus int

const (
	ConversationOpen     ConversationStatus = 0
	ConversationArchived ConversationStatus = 1
)

// Account represents a persisted local account.
type Account struct {
	UUID        string
	JID         string
	DisplayName string
}

// Conversation represents a persisted conversation row. Archived
// conversations stay in the store after they leave the live registry.
type Conversation struct {
	UUID        string
	AccountUUID string
	ContactJID  string
	Name        string
	Mode        int // 0 single, 1 multi
	Status      ConversationStatus
	UpdatedAt   int64
}

// Message represents a persisted message.
type Message struct {
	ID               int64
	UUID             string
	ConversationUUID string
	RemoteMsgID      string
	Counterpart      string
	Body             string
	OOB              bool   // body references out-of-band content
	FileRef          string // remote file reference, if any
	Type             string
	Status           string // received, sending, sent, delivered, read, failed
	TimeSent         int64  // unix ms
}

// Incoming is a message received from the network, not yet tied to
// persisted account and conversation rows.
type Incoming struct {
	AccountJID string
	ChatJID    string
	ChatName   string
	Mode       int
	Message    Message
}

// SearchRow is one message matched by SearchMessages, joined with the
// identifiers of its conversation.
type SearchRow struct {
	UUID             string
	ConversationUUID string
	AccountUUID      string
	ContactJID       string
	Mode             int
	Body             string
	OOB              bool
	FileRef          string
	Counterpart      string
	Status           string
	TimeSent         int64
}
