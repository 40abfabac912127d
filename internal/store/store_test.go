package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedConversation creates an account and a conversation and returns the conversation.
func seedConversation(t *testing.T, db *DB, accountJID, contactJID string) *Conversation {
	t.Helper()
	acc, err := db.UpsertAccount(accountJID, "")
	if err != nil {
		t.Fatal(err)
	}
	conv, err := db.EnsureConversation(acc.UUID, contactJID, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	return conv
}

func addMessage(t *testing.T, db *DB, convUUID, remoteID, body string, ts int64) *Message {
	t.Helper()
	m := &Message{ConversationUUID: convUUID, RemoteMsgID: remoteID, Body: body, TimeSent: ts}
	if err := db.UpsertMessage(m); err != nil {
		t.Fatal(err)
	}
	return m
}

func collectNewestFirst(t *testing.T, c *Cursor) []string {
	t.Helper()
	var bodies []string
	if !c.MoveToLast() {
		return bodies
	}
	for {
		bodies = append(bodies, c.Row().Body)
		if !c.MoveToPrevious() {
			break
		}
	}
	return bodies
}

func TestMigrateAppliesOnFreshDB(t *testing.T) {
	db := testDB(t)

	// testDB already ran Migrate, so a second run must be a no-op.
	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 2 {
		t.Errorf("version = %d, want 2 (init + index)", result.Version)
	}
	if result.From != 2 {
		t.Errorf("from = %d, want 2", result.From)
	}
}

func TestUpsertAccountKeepsUUID(t *testing.T) {
	db := testDB(t)

	first, err := db.UpsertAccount("me@s.whatsapp.net", "Me")
	if err != nil {
		t.Fatal(err)
	}
	second, err := db.UpsertAccount("me@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}
	if first.UUID != second.UUID {
		t.Errorf("uuid changed: %q -> %q", first.UUID, second.UUID)
	}
	if second.DisplayName != "Me" {
		t.Errorf("display name = %q, want Me", second.DisplayName)
	}

	got, err := db.GetAccountByJID("missing@s.whatsapp.net")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil for missing account, got %+v", got)
	}
}

func TestEnsureConversation(t *testing.T) {
	db := testDB(t)

	acc, err := db.UpsertAccount("me@s", "")
	if err != nil {
		t.Fatal(err)
	}
	c1, err := db.EnsureConversation(acc.UUID, "alice@s", "Alice", 0)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := db.EnsureConversation(acc.UUID, "alice@s", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if c1.UUID != c2.UUID {
		t.Errorf("uuid changed: %q -> %q", c1.UUID, c2.UUID)
	}
	if c2.Name != "Alice" {
		t.Errorf("name = %q, want Alice", c2.Name)
	}

	got, err := db.GetConversation(c1.UUID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ContactJID != "alice@s" {
		t.Errorf("got %+v, want alice@s", got)
	}

	n, err := db.ConversationCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestArchiveConversation(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "bob@s")

	if err := db.SetConversationStatus(conv.UUID, ConversationArchived); err != nil {
		t.Fatal(err)
	}
	open, err := db.ListConversations(ConversationOpen)
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 0 {
		t.Errorf("got %d open conversations, want 0", len(open))
	}
	archived, err := db.ListConversations(ConversationArchived)
	if err != nil {
		t.Fatal(err)
	}
	if len(archived) != 1 || archived[0].UUID != conv.UUID {
		t.Errorf("archived = %+v, want %s", archived, conv.UUID)
	}

	// Re-ensuring from new traffic must not reopen it.
	again, err := db.EnsureConversation(conv.AccountUUID, "bob@s", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if again.Status != ConversationArchived {
		t.Errorf("status = %d, want archived", again.Status)
	}

	if err := db.SetConversationStatus("missing", ConversationArchived); err == nil {
		t.Error("expected error for missing conversation")
	}
}

func TestMessageUpsertIdempotent(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "chat@s")

	msg := addMessage(t, db, conv.UUID, "msg1", "hello", 1000)
	firstUUID := msg.UUID

	msg.Body = "hello updated"
	msg.UUID = ""
	if err := db.UpsertMessage(msg); err != nil {
		t.Fatal(err)
	}
	if msg.UUID != firstUUID {
		t.Errorf("uuid = %q, want original %q", msg.UUID, firstUUID)
	}

	msgs, err := db.ListMessages(conv.UUID, 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1 (idempotent upsert failed)", len(msgs))
	}
	if msgs[0].Body != "hello updated" {
		t.Errorf("body = %q, want hello updated", msgs[0].Body)
	}
	if msgs[0].Type != "text" || msgs[0].Status != "received" {
		t.Errorf("defaults = %q/%q, want text/received", msgs[0].Type, msgs[0].Status)
	}
}

func TestSearchMessagesNewestFirst(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "chat@s")

	addMessage(t, db, conv.UUID, "m1", "hello world", 1000)
	addMessage(t, db, conv.UUID, "m2", "goodbye world", 2000)
	addMessage(t, db, conv.UUID, "m3", "hello again", 3000)

	c, err := db.SearchMessages([]string{"hello"})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()

	if c.Count() != 2 {
		t.Fatalf("count = %d, want 2", c.Count())
	}
	if diff := cmp.Diff([]string{"hello again", "hello world"}, collectNewestFirst(t, c)); diff != "" {
		t.Errorf("bodies mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchMessagesPrefix(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "chat@s")
	addMessage(t, db, conv.UUID, "m1", "wonderful weather", 1000)

	c, err := db.SearchMessages([]string{"wonder"})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()
	if c.Count() != 1 {
		t.Fatalf("count = %d, want 1", c.Count())
	}
	c.MoveToLast()
	row := c.Row()
	if row.ConversationUUID != conv.UUID || row.ContactJID != "chat@s" || row.AccountUUID != conv.AccountUUID {
		t.Errorf("row = %+v, want conversation fields of %s", row, conv.UUID)
	}
}

func TestSearchMessagesLimitKeepsNewest(t *testing.T) {
	db := testDB(t)
	db.SetSearchLimit(2)
	conv := seedConversation(t, db, "me@s", "chat@s")

	addMessage(t, db, conv.UUID, "m1", "note one", 1000)
	addMessage(t, db, conv.UUID, "m2", "note two", 2000)
	addMessage(t, db, conv.UUID, "m3", "note three", 3000)

	c, err := db.SearchMessages([]string{"note"})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()
	if diff := cmp.Diff([]string{"note three", "note two"}, collectNewestFirst(t, c)); diff != "" {
		t.Errorf("bodies mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchMessagesIncludesArchived(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "old@s")
	addMessage(t, db, conv.UUID, "m1", "archived hello", 1000)
	if err := db.SetConversationStatus(conv.UUID, ConversationArchived); err != nil {
		t.Fatal(err)
	}

	c, err := db.SearchMessages([]string{"hello"})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()
	if c.Count() != 1 {
		t.Errorf("count = %d, want 1", c.Count())
	}
}

func TestSearchMessagesEmpty(t *testing.T) {
	db := testDB(t)

	c, err := db.SearchMessages(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Count() != 0 || c.MoveToLast() {
		t.Error("expected an empty cursor")
	}

	c, err = db.SearchMessages([]string{"nothing"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Count() != 0 {
		t.Errorf("count = %d, want 0", c.Count())
	}
}

func TestSearchReflectsEdits(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "chat@s")
	msg := addMessage(t, db, conv.UUID, "m1", "first draft", 1000)

	msg.Body = "final version"
	if err := db.UpsertMessage(msg); err != nil {
		t.Fatal(err)
	}

	c, err := db.SearchMessages([]string{"draft"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Count() != 0 {
		t.Errorf("stale index: count = %d, want 0", c.Count())
	}
	c, err = db.SearchMessages([]string{"final"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Count() != 1 {
		t.Errorf("count = %d, want 1", c.Count())
	}
	if err := db.OptimizeIndex(); err != nil {
		t.Fatalf("optimize: %v", err)
	}
}

func TestCursorClosed(t *testing.T) {
	c := &Cursor{rows: []SearchRow{{Body: "a"}}, pos: -1}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if c.MoveToLast() {
		t.Error("MoveToLast on closed cursor should fail")
	}
}

func TestSyncState(t *testing.T) {
	db := testDB(t)

	v, err := db.GetSyncState("history")
	if err != nil {
		t.Fatal(err)
	}
	if v != "" {
		t.Errorf("value = %q, want empty", v)
	}
	if err := db.SetSyncState("history", "done"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetSyncState("history", "again"); err != nil {
		t.Fatal(err)
	}
	v, err = db.GetSyncState("history")
	if err != nil {
		t.Fatal(err)
	}
	if v != "again" {
		t.Errorf("value = %q, want again", v)
	}
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"hello", []string{"hello"}},
		{`"hello world"`, []string{"hello", "world"}},
		{"*hello*", []string{"hello"}},
		{"foo OR bar", []string{"foo", "OR", "bar"}},
		{"*and*", []string{"and"}},
		{"hello -world", []string{"hello", "-world"}},
		{"hello NOT world", []string{"hello", "NOT", "world"}},
		{"he*lo", []string{"he*lo"}},
		{"***", []string{}},
		{"  spaced   out  ", []string{"spaced", "out"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseTerms(tt.in)); diff != "" {
				t.Errorf("ParseTerms(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		terms []string
		want  string
	}{
		{nil, ""},
		{[]string{"hello"}, "hello*"},
		{[]string{"foo", "or", "bar"}, "foo* OR bar*"},
		{[]string{"he*lo"}, "he*lo"},
		{[]string{"hello", "-world"}, "hello* NOT world*"},
		{[]string{"hello", "NOT", "world"}, "hello* NOT world*"},
		{[]string{"-spam", "eggs"}, "eggs* NOT spam*"},
		{[]string{"-spam"}, ""},
		{[]string{"NOT", "spam"}, ""},
		{[]string{"foo", "or", "NOT", "bar"}, "foo* NOT bar*"},
		{[]string{"foo", "or"}, "foo*"},
		{[]string{"and", "foo"}, "foo*"},
		{[]string{"hello", "-"}, "hello*"},
		{[]string{"do", "not", "disturb"}, "do* not* disturb*"},
		{[]string{"", "x"}, "x*"},
	}
	for _, tt := range tests {
		if got := MatchString(tt.terms); got != tt.want {
			t.Errorf("MatchString(%q) = %q, want %q", tt.terms, got, tt.want)
		}
	}
}

func TestSearchMessagesExcludesNegatedTerms(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "chat@s")
	addMessage(t, db, conv.UUID, "m1", "hello world", 1000)
	addMessage(t, db, conv.UUID, "m2", "hello there", 2000)
	addMessage(t, db, conv.UUID, "m3", "goodbye world", 3000)

	for _, query := range []string{"hello -world", "hello NOT world", "-world hello"} {
		t.Run(query, func(t *testing.T) {
			c, err := db.SearchMessages(ParseTerms(query))
			if err != nil {
				t.Fatal(err)
			}
			defer func() { _ = c.Close() }()
			if diff := cmp.Diff([]string{"hello there"}, collectNewestFirst(t, c)); diff != "" {
				t.Errorf("bodies mismatch (-want +got):\n%s", diff)
			}
		})
	}

	c, err := db.SearchMessages(ParseTerms("-world"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()
	if c.Count() != 0 {
		t.Errorf("count for exclusion only = %d, want 0", c.Count())
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "chat@s")

	errStop := errors.New("stop")
	err := db.WithTx(func(tx *Tx) error {
		if err := tx.UpsertMessage(&Message{ConversationUUID: conv.UUID, RemoteMsgID: "m1", Body: "lost"}); err != nil {
			return err
		}
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("err = %v, want errStop", err)
	}
	n, err := db.MessageCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0 after rollback", n)
	}

	err = db.WithTx(func(tx *Tx) error {
		acc, err := tx.UpsertAccount("other@s", "")
		if err != nil {
			return err
		}
		c, err := tx.EnsureConversation(acc.UUID, "x@s", "", 0)
		if err != nil {
			return err
		}
		return tx.UpsertMessage(&Message{ConversationUUID: c.UUID, RemoteMsgID: "m2", Body: "kept"})
	})
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := db.MessageCount(); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestUpdateMessageStatus(t *testing.T) {
	db := testDB(t)
	conv := seedConversation(t, db, "me@s", "chat@s")
	m := &Message{ConversationUUID: conv.UUID, RemoteMsgID: "out1", Body: "ping", Status: "sent", TimeSent: 1}
	if err := db.UpsertMessage(m); err != nil {
		t.Fatal(err)
	}

	n, err := db.UpdateMessageStatus(conv.AccountUUID, "chat@s", []string{"out1", "unknown"}, "read")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("changed = %d, want 1", n)
	}
	msgs, err := db.ListMessages(conv.UUID, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if msgs[0].Status != "read" {
		t.Errorf("status = %q, want read", msgs[0].Status)
	}

	n, err = db.UpdateMessageStatus(conv.AccountUUID, "other@s", []string{"out1"}, "delivered")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("changed = %d for another contact, want 0", n)
	}

	// No downgrade.
	n, err = db.UpdateMessageStatus(conv.AccountUUID, "chat@s", []string{"out1"}, "delivered")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("changed = %d on downgrade, want 0", n)
	}

	// A re-delivered copy of the message keeps the newer status.
	again := &Message{ConversationUUID: conv.UUID, RemoteMsgID: "out1", Body: "ping", Status: "sent", TimeSent: 1}
	if err := db.UpsertMessage(again); err != nil {
		t.Fatal(err)
	}
	msgs, err = db.ListMessages(conv.UUID, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if msgs[0].Status != "read" {
		t.Errorf("status after re-upsert = %q, want read", msgs[0].Status)
	}

	in := addMessage(t, db, conv.UUID, "in1", "hi", 2)
	n, err = db.UpdateMessageStatus(conv.AccountUUID, "chat@s", []string{in.RemoteMsgID}, "read")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("received message changed, want untouched")
	}

	if _, err := db.UpdateMessageStatus(conv.AccountUUID, "chat@s", []string{"out1"}, "bogus"); err == nil {
		t.Error("expected error for unknown status")
	}
}
