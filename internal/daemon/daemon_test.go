package daemon

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/matheus3301/wppsearch/internal/api"
	"github.com/matheus3301/wppsearch/internal/bus"
	"github.com/matheus3301/wppsearch/internal/registry"
	"github.com/matheus3301/wppsearch/internal/search"
	"github.com/matheus3301/wppsearch/internal/store"
	intsync "github.com/matheus3301/wppsearch/internal/sync"
	"github.com/matheus3301/wppsearch/internal/tui/client"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"
)

const (
	accountJID = "100@s.whatsapp.net"
	aliceJID   = "200@s.whatsapp.net"
)

type harness struct {
	db     *store.DB
	engine *intsync.Engine
	client *client.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	// Use a short path to avoid macOS 104-char Unix socket limit.
	tmpDir, err := os.MkdirTemp("/tmp", "wpp-test-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	db, err := store.Open(filepath.Join(tmpDir, "wpp.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	logger := zap.NewNop()
	b := bus.New()
	reg := registry.New(logger)
	engine := intsync.NewEngine(db, reg, b, logger)
	searcher := search.New(search.DBStore(db), reg, logger)
	t.Cleanup(searcher.Close)

	srv, err := NewServer(
		Params{SessionName: "test", SocketPath: filepath.Join(tmpDir, "d.sock")},
		logger,
		api.NewSearchService(searcher, b, logger),
		api.NewSessionService("test", api.SessionDeps{
			DB:       db,
			Registry: reg,
			Archiver: engine,
			Searcher: searcher,
			Events:   b,
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	go func() { _ = srv.Start() }()
	t.Cleanup(func() { srv.Stop(context.Background()) })

	c, err := client.New(filepath.Join(tmpDir, "d.sock"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })

	return &harness{db: db, engine: engine, client: c}
}

func (h *harness) ingest(t *testing.T, chat, remoteID, body string, ts int64) {
	t.Helper()
	err := h.engine.IngestMessage(&store.Incoming{
		AccountJID: accountJID,
		ChatJID:    chat,
		ChatName:   "Alice",
		Message:    store.Message{RemoteMsgID: remoteID, Counterpart: chat, Body: body, TimeSent: ts},
	})
	if err != nil {
		t.Fatal(err)
	}
}

// searchAndWait submits query and returns the results delivered for it.
func (h *harness) searchAndWait(t *testing.T, query string) *wppsearchv1.SearchEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := h.client.WatchResults(ctx)
	if err != nil {
		t.Fatal(err)
	}
	first, err := stream.Recv()
	if err != nil {
		t.Fatal(err)
	}
	if first.Kind != api.EventSubscribed {
		t.Fatalf("first event kind = %q, want %q", first.Kind, api.EventSubscribed)
	}

	resp, err := h.client.Search(ctx, &wppsearchv1.SearchRequest{Query: query})
	if err != nil {
		t.Fatalf("Search error = %v", err)
	}
	if !resp.Accepted || resp.RequestId == "" {
		t.Fatalf("Search response = %v", resp)
	}

	evt, err := stream.WaitResults(resp.RequestId)
	if err != nil {
		t.Fatalf("waiting for results: %v", err)
	}
	return evt
}

func bodies(msgs []*wppsearchv1.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Body)
	}
	return out
}

func TestSearchOverSocket(t *testing.T) {
	h := newHarness(t)
	h.ingest(t, aliceJID, "m1", "hello there", 1000)
	h.ingest(t, aliceJID, "m2", "unrelated", 2000)
	h.ingest(t, aliceJID, "m3", "hello again", 3000)

	evt := h.searchAndWait(t, "hel")

	if diff := cmp.Diff([]string{"hello again", "hello there"}, bodies(evt.Results)); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	for _, m := range evt.Results {
		if m.ConversationKind != "live" || m.ConversationName != "Alice" || m.AccountJid != accountJID {
			t.Errorf("result = %v, want live conversation Alice", m)
		}
	}
	if diff := cmp.Diff([]string{"hel"}, evt.Terms); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestArchivedConversationResolvesToStub(t *testing.T) {
	h := newHarness(t)
	h.ingest(t, aliceJID, "m1", "hello there", 1000)

	ctx := context.Background()
	list, err := h.client.ListConversations(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Conversations) != 1 {
		t.Fatalf("got %d conversations, want 1", len(list.Conversations))
	}
	conv := list.Conversations[0]
	if conv.Contact != aliceJID || conv.Mode != "single" || conv.Archived {
		t.Errorf("conversation = %v", conv)
	}

	if _, err := h.client.ArchiveConversation(ctx, conv.Uuid); err != nil {
		t.Fatalf("ArchiveConversation error = %v", err)
	}

	archived, err := h.client.ListConversations(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(archived.Conversations) != 1 || !archived.Conversations[0].Archived {
		t.Errorf("archived list = %v", archived.Conversations)
	}

	evt := h.searchAndWait(t, "hello")
	if len(evt.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(evt.Results))
	}
	got := evt.Results[0]
	if got.ConversationKind != api.ConversationStub || got.ConversationUuid != conv.Uuid || got.Contact != aliceJID {
		t.Errorf("result = %v, want stub for %s", got, conv.Uuid)
	}
}

func TestGetStatus(t *testing.T) {
	h := newHarness(t)
	h.ingest(t, aliceJID, "m1", "hello", 1000)
	h.ingest(t, "300@s.whatsapp.net", "m2", "hi", 2000)

	resp, err := h.client.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus error = %v", err)
	}
	want := &wppsearchv1.GetStatusResponse{
		Session:             "test",
		Connection:          "disconnected",
		Accounts:            1,
		LiveConversations:   2,
		StoredConversations: 2,
		Messages:            2,
		UptimeMs:            resp.UptimeMs,
	}
	if diff := cmp.Diff(want, resp, protocmp.Transform()); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestRPCErrors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.client.Search(ctx, &wppsearchv1.SearchRequest{Query: `  "" `})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("empty search code = %v, want InvalidArgument", status.Code(err))
	}

	_, err = h.client.ArchiveConversation(ctx, "missing")
	if status.Code(err) != codes.NotFound {
		t.Errorf("archive missing code = %v, want NotFound", status.Code(err))
	}

	_, err = h.client.ArchiveConversation(ctx, "")
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("archive empty code = %v, want InvalidArgument", status.Code(err))
	}

	resp, err := h.client.CancelSearches(ctx)
	if err != nil {
		t.Fatalf("CancelSearches error = %v", err)
	}
	if resp.WasBusy {
		t.Error("idle searcher reported busy")
	}
}

// TestFxModuleWiring verifies the fx dependency graph resolves without errors.
func TestFxModuleWiring(t *testing.T) {
	if err := fx.ValidateApp(Module(Params{SessionName: "fxtest", SocketPath: "/tmp/unused.sock"})); err != nil {
		t.Fatalf("fx graph does not resolve: %v", err)
	}
}

func TestNewServerCreatesSocket(t *testing.T) {
	tmpDir, err := os.MkdirTemp("/tmp", "wpp-fx-*")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	socketPath := filepath.Join(tmpDir, "d.sock")
	srv, err := NewServer(
		Params{SessionName: "fxtest", SocketPath: socketPath},
		zap.NewNop(),
		api.NewSearchService(nil, bus.New(), nil),
		api.NewSessionService("fxtest", api.SessionDeps{}),
	)
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}

	info, err := os.Stat(socketPath)
	if err != nil {
		t.Fatalf("socket not created at %s: %v", socketPath, err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("socket permission = %o, want 0600", perm)
	}

	srv.Stop(context.Background())
	if _, err := os.Stat(socketPath); !os.IsNotExist(err) {
		t.Errorf("socket not removed on Stop: %v", err)
	}
}

func TestRenderQR(t *testing.T) {
	out, err := renderQR("2@pairing-ref,key,identity,adv")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Errorf("rendered QR has no block characters:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < 10 {
		t.Errorf("rendered QR has %d lines, want a full code", lines)
	}
}

func TestAwaitDone(t *testing.T) {
	searcher := search.New(search.DBStore(nil), registry.New(nil), nil)
	searcher.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if !awaitDone(ctx, searcher.Done()) {
		t.Error("closed searcher did not report done")
	}

	expired, cancelExpired := context.WithCancel(context.Background())
	cancelExpired()
	if awaitDone(expired, make(chan struct{})) {
		t.Error("awaitDone returned true for a worker that never exits")
	}
}
