package wa

import (
	"testing"
	"time"

	"go.mau.fi/whatsmeow/proto/waCommon"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/proto/waWeb"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"
)

var me = types.JID{User: "100", Server: types.DefaultUserServer}

func TestExtractTextBody(t *testing.T) {
	tests := []struct {
		name string
		msg  *waE2E.Message
		want string
	}{
		{"nil message", nil, ""},
		{"conversation", &waE2E.Message{Conversation: proto.String("hello")}, "hello"},
		{"extended text", &waE2E.Message{ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("extended")}}, "extended"},
		{"image (no text)", &waE2E.Message{ImageMessage: &waE2E.ImageMessage{}}, ""},
		{"empty conversation", &waE2E.Message{Conversation: proto.String("")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTextBody(tt.msg)
			if got != tt.want {
				t.Errorf("extractTextBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectMessageType(t *testing.T) {
	tests := []struct {
		name string
		msg  *waE2E.Message
		want string
	}{
		{"nil", nil, "unknown"},
		{"text conversation", &waE2E.Message{Conversation: proto.String("hi")}, "text"},
		{"image", &waE2E.Message{ImageMessage: &waE2E.ImageMessage{}}, "image"},
		{"audio", &waE2E.Message{AudioMessage: &waE2E.AudioMessage{}}, "audio"},
		{"document", &waE2E.Message{DocumentMessage: &waE2E.DocumentMessage{}}, "document"},
		{"location", &waE2E.Message{LocationMessage: &waE2E.LocationMessage{}}, "location"},
		{"empty message", &waE2E.Message{}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectMessageType(tt.msg)
			if got != tt.want {
				t.Errorf("detectMessageType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLiveMessage(t *testing.T) {
	ts := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	evt := &events.Message{
		Info: types.MessageInfo{
			PushName:  "Alice",
			Timestamp: ts,
			MessageSource: types.MessageSource{
				Chat:   types.JID{User: "200", Server: types.DefaultUserServer, Device: 1},
				Sender: types.JID{User: "200", Server: types.DefaultUserServer, Device: 3},
			},
			ID: "MSG123",
		},
		Message: &waE2E.Message{Conversation: proto.String("hello world")},
	}

	in := ParseLiveMessage(types.JID{User: "100", Server: types.DefaultUserServer, Device: 7}, evt)

	if in.AccountJID != "100@s.whatsapp.net" {
		t.Errorf("AccountJID = %q, want 100@s.whatsapp.net", in.AccountJID)
	}
	if in.ChatJID != "200@s.whatsapp.net" {
		t.Errorf("ChatJID = %q, want 200@s.whatsapp.net (device suffix not stripped)", in.ChatJID)
	}
	if in.ChatName != "Alice" {
		t.Errorf("ChatName = %q, want Alice", in.ChatName)
	}
	if in.Mode != modeSingle {
		t.Errorf("Mode = %d, want single", in.Mode)
	}
	m := in.Message
	if m.RemoteMsgID != "MSG123" || m.Body != "hello world" || m.Type != "text" {
		t.Errorf("message = %+v", m)
	}
	if m.Counterpart != "200@s.whatsapp.net" {
		t.Errorf("Counterpart = %q, want 200@s.whatsapp.net", m.Counterpart)
	}
	if m.Status != "received" {
		t.Errorf("Status = %q, want received", m.Status)
	}
	if m.OOB {
		t.Error("OOB = true for a text message")
	}
	if m.TimeSent != ts.UnixMilli() {
		t.Errorf("TimeSent = %d, want %d", m.TimeSent, ts.UnixMilli())
	}
}

func TestParseLiveMessageGroupFromMe(t *testing.T) {
	evt := &events.Message{
		Info: types.MessageInfo{
			PushName:  "Me",
			Timestamp: time.Now(),
			MessageSource: types.MessageSource{
				Chat:     types.JID{User: "120363", Server: types.GroupServer},
				Sender:   me,
				IsFromMe: true,
				IsGroup:  true,
			},
			ID: "G1",
		},
		Message: &waE2E.Message{Conversation: proto.String("hi all")},
	}

	in := ParseLiveMessage(me, evt)

	if in.Mode != modeMulti {
		t.Errorf("Mode = %d, want multi", in.Mode)
	}
	if in.ChatName != "" {
		t.Errorf("ChatName = %q, want empty for groups", in.ChatName)
	}
	if in.Message.Status != "sent" {
		t.Errorf("Status = %q, want sent", in.Message.Status)
	}
}

func TestParseMediaContent(t *testing.T) {
	tests := []struct {
		name     string
		msg      *waE2E.Message
		body     string
		oob      bool
		fileRef  string
		wantType string
	}{
		{
			name: "image without caption",
			msg: &waE2E.Message{ImageMessage: &waE2E.ImageMessage{
				URL:        proto.String("https://mmg.whatsapp.net/v/photo.enc"),
				DirectPath: proto.String("/v/photo.enc"),
			}},
			body: "https://mmg.whatsapp.net/v/photo.enc", oob: true, fileRef: "/v/photo.enc", wantType: "image",
		},
		{
			name: "video with caption",
			msg: &waE2E.Message{VideoMessage: &waE2E.VideoMessage{
				URL:        proto.String("https://mmg.whatsapp.net/v/clip.enc"),
				DirectPath: proto.String("/v/clip.enc"),
				Caption:    proto.String("holiday clip"),
			}},
			body: "holiday clip", oob: false, fileRef: "/v/clip.enc", wantType: "video",
		},
		{name: "sticker without url", msg: &waE2E.Message{StickerMessage: &waE2E.StickerMessage{}}, wantType: "sticker"},
		{name: "location", msg: &waE2E.Message{LocationMessage: &waE2E.LocationMessage{}}, wantType: "location"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ParseLiveMessage(me, &events.Message{
				Info:    types.MessageInfo{ID: "x", Timestamp: time.Now(), MessageSource: types.MessageSource{Chat: me, Sender: me}},
				Message: tt.msg,
			})
			m := in.Message
			if m.Body != tt.body || m.OOB != tt.oob || m.FileRef != tt.fileRef || m.Type != tt.wantType {
				t.Errorf("got body=%q oob=%v ref=%q type=%q, want %q %v %q %q",
					m.Body, m.OOB, m.FileRef, m.Type, tt.body, tt.oob, tt.fileRef, tt.wantType)
			}
		})
	}
}

func TestParseHistoryMessage(t *testing.T) {
	chat := types.JID{User: "120363", Server: types.GroupServer}
	ts := uint64(1700000000)
	wm := &waWeb.WebMessageInfo{
		Key: &waCommon.MessageKey{
			ID:          proto.String("hm1"),
			FromMe:      proto.Bool(false),
			RemoteJID:   proto.String(chat.String()),
			Participant: proto.String("300:2@s.whatsapp.net"),
		},
		MessageTimestamp: &ts,
		Message:          &waE2E.Message{Conversation: proto.String("history msg")},
	}

	in := ParseHistoryMessage(me, chat, "Family", wm)
	if in == nil {
		t.Fatal("got nil")
	}
	if in.ChatName != "Family" || in.Mode != modeMulti {
		t.Errorf("chat = %q mode %d, want Family multi", in.ChatName, in.Mode)
	}
	if in.Message.Counterpart != "300@s.whatsapp.net" {
		t.Errorf("Counterpart = %q, want 300@s.whatsapp.net", in.Message.Counterpart)
	}
	if in.Message.TimeSent != int64(ts)*1000 {
		t.Errorf("TimeSent = %d, want %d", in.Message.TimeSent, int64(ts)*1000)
	}

	if ParseHistoryMessage(me, chat, "", &waWeb.WebMessageInfo{}) != nil {
		t.Error("expected nil for an entry without content")
	}
	if ParseHistoryMessage(me, chat, "", nil) != nil {
		t.Error("expected nil for a nil entry")
	}
}

func TestParseHistoryMessageFromMe(t *testing.T) {
	chat := types.JID{User: "200", Server: types.DefaultUserServer}
	wm := &waWeb.WebMessageInfo{
		Key:     &waCommon.MessageKey{ID: proto.String("o1"), FromMe: proto.Bool(true)},
		Message: &waE2E.Message{Conversation: proto.String("mine")},
	}

	in := ParseHistoryMessage(me, chat, "", wm)
	if in.Message.Counterpart != me.String() {
		t.Errorf("Counterpart = %q, want %s", in.Message.Counterpart, me)
	}
	if in.Message.Status != "sent" {
		t.Errorf("Status = %q, want sent", in.Message.Status)
	}
}
