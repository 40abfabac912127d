package wa

import (
	"github.com/matheus3301/wppsearch/internal/store"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/proto/waWeb"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

// Conversation modes as persisted by the store.
const (
	modeSingle = 0
	modeMulti  = 1
)

// ParseLiveMessage normalizes a live whatsmeow message received by account.
func ParseLiveMessage(account types.JID, evt *events.Message) *store.Incoming {
	info := evt.Info
	in := &store.Incoming{
		AccountJID: account.ToNonAD().String(),
		ChatJID:    info.Chat.ToNonAD().String(),
		Mode:       chatMode(info.Chat),
		Message: store.Message{
			RemoteMsgID: info.ID,
			Counterpart: info.Sender.ToNonAD().String(),
			Type:        detectMessageType(evt.Message),
			Status:      directionStatus(info.IsFromMe),
			TimeSent:    info.Timestamp.UnixMilli(),
		},
	}
	if !info.IsGroup && !info.IsFromMe {
		in.ChatName = info.PushName
	}
	setContent(&in.Message, evt.Message)
	return in
}

// ParseHistoryMessage normalizes one message of a history sync conversation.
// It returns nil for entries without message content.
func ParseHistoryMessage(account, chat types.JID, chatName string, wm *waWeb.WebMessageInfo) *store.Incoming {
	if wm == nil || wm.GetMessage() == nil {
		return nil
	}
	key := wm.GetKey()
	counterpart := chat
	if p := key.GetParticipant(); p != "" {
		if jid, err := types.ParseJID(p); err == nil {
			counterpart = jid
		}
	}
	if key.GetFromMe() {
		counterpart = account
	}
	in := &store.Incoming{
		AccountJID: account.ToNonAD().String(),
		ChatJID:    chat.ToNonAD().String(),
		ChatName:   chatName,
		Mode:       chatMode(chat),
		Message: store.Message{
			RemoteMsgID: key.GetID(),
			Counterpart: counterpart.ToNonAD().String(),
			Type:        detectMessageType(wm.GetMessage()),
			Status:      directionStatus(key.GetFromMe()),
			TimeSent:    int64(wm.GetMessageTimestamp()) * 1000,
		},
	}
	setContent(&in.Message, wm.GetMessage())
	return in
}

func chatMode(chat types.JID) int {
	if chat.Server == types.GroupServer {
		return modeMulti
	}
	return modeSingle
}

func directionStatus(fromMe bool) string {
	if fromMe {
		return "sent"
	}
	return "received"
}

type remoteFile interface {
	GetURL() string
	GetDirectPath() string
}

// setContent fills body, oob and file reference. Media without a caption
// stores its remote URL as the body so it reads as a download placeholder.
func setContent(m *store.Message, msg *waE2E.Message) {
	if body := extractTextBody(msg); body != "" {
		m.Body = body
		return
	}
	var (
		file    remoteFile
		caption string
	)
	switch {
	case msg.GetImageMessage() != nil:
		file, caption = msg.GetImageMessage(), msg.GetImageMessage().GetCaption()
	case msg.GetVideoMessage() != nil:
		file, caption = msg.GetVideoMessage(), msg.GetVideoMessage().GetCaption()
	case msg.GetDocumentMessage() != nil:
		file, caption = msg.GetDocumentMessage(), msg.GetDocumentMessage().GetCaption()
	case msg.GetAudioMessage() != nil:
		file = msg.GetAudioMessage()
	case msg.GetStickerMessage() != nil:
		file = msg.GetStickerMessage()
	default:
		return
	}
	m.FileRef = file.GetDirectPath()
	if caption != "" {
		m.Body = caption
		return
	}
	m.Body = file.GetURL()
	m.OOB = m.Body != ""
}

func extractTextBody(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	if c := msg.GetConversation(); c != "" {
		return c
	}
	if ext := msg.GetExtendedTextMessage(); ext != nil {
		return ext.GetText()
	}
	return ""
}

func detectMessageType(msg *waE2E.Message) string {
	if msg == nil {
		return "unknown"
	}
	switch {
	case msg.GetConversation() != "" || msg.GetExtendedTextMessage() != nil:
		return "text"
	case msg.GetImageMessage() != nil:
		return "image"
	case msg.GetVideoMessage() != nil:
		return "video"
	case msg.GetAudioMessage() != nil:
		return "audio"
	case msg.GetDocumentMessage() != nil:
		return "document"
	case msg.GetStickerMessage() != nil:
		return "sticker"
	case msg.GetContactMessage() != nil:
		return "contact"
	case msg.GetLocationMessage() != nil:
		return "location"
	default:
		return "unknown"
	}
}
