package api

import (
	"context"
	"database/sql"
	"errors"
	"time"

	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/matheus3301/wppsearch/internal/entity"
	"github.com/matheus3301/wppsearch/internal/registry"
	"github.com/matheus3301/wppsearch/internal/store"
	"github.com/matheus3301/wppsearch/internal/wa"
	"go.mau.fi/whatsmeow/types"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ConnStater reports the WhatsApp connection state.
type ConnStater interface {
	State() wa.ConnState
}

// Identity reports whether an account is paired and which one.
type Identity interface {
	IsLoggedIn() bool
	OwnJID() types.JID
}

// Archiver archives conversations.
type Archiver interface {
	ArchiveConversation(conversationUUID string) error
}

// DropCounter reports bus deliveries lost to full subscribers.
type DropCounter interface {
	Dropped() int64
}

// LastRunner reports when a maintenance job last started.
type LastRunner interface {
	LastRun() (time.Time, error)
}

// SessionDeps are what SessionService reports on. Any of them may be nil.
type SessionDeps struct {
	Conn        ConnStater
	Self        Identity
	DB          *store.DB
	Registry    *registry.Registry
	Archiver    Archiver
	Searcher    Searcher
	Events      DropCounter
	Maintenance LastRunner
}

// SessionService implements the SessionService gRPC service.
type SessionService struct {
	wppsearchv1.UnimplementedSessionServiceServer

	sessionName string
	startedAt   time.Time
	deps        SessionDeps
}

// NewSessionService creates a new session service.
func NewSessionService(sessionName string, deps SessionDeps) *SessionService {
	return &SessionService{
		sessionName: sessionName,
		startedAt:   time.Now(),
		deps:        deps,
	}
}

func (s *SessionService) GetStatus(_ context.Context, _ *wppsearchv1.GetStatusRequest) (*wppsearchv1.GetStatusResponse, error) {
	d := s.deps
	resp := &wppsearchv1.GetStatusResponse{
		Session:    s.sessionName,
		Connection: wa.StateDisconnected.String(),
		UptimeMs:   time.Since(s.startedAt).Milliseconds(),
	}
	if d.Conn != nil {
		resp.Connection = d.Conn.State().String()
	}
	if d.Self != nil && d.Self.IsLoggedIn() {
		resp.LoggedIn = true
		resp.AccountJid = d.Self.OwnJID().String()
	}
	if d.Registry != nil {
		accounts, convs := d.Registry.Counts()
		resp.Accounts, resp.LiveConversations = int32(accounts), int32(convs)
	}
	if d.DB != nil {
		if n, err := d.DB.ConversationCount(); err == nil {
			resp.StoredConversations = n
		}
		if n, err := d.DB.MessageCount(); err == nil {
			resp.Messages = n
		}
	}
	if d.Searcher != nil {
		resp.SearchBusy = d.Searcher.Busy()
	}
	if d.Events != nil {
		resp.EventsDropped = d.Events.Dropped()
	}
	if d.Maintenance != nil {
		if last, _ := d.Maintenance.LastRun(); !last.IsZero() {
			resp.LastOptimizeUnixMs = last.UnixMilli()
		}
	}
	return resp, nil
}

func (s *SessionService) ListConversations(_ context.Context, req *wppsearchv1.ListConversationsRequest) (*wppsearchv1.ListConversationsResponse, error) {
	if s.deps.DB == nil {
		return nil, grpcstatus.Error(codes.Unavailable, "store not initialized")
	}
	st := store.ConversationOpen
	if req.GetArchived() {
		st = store.ConversationArchived
	}
	convs, err := s.deps.DB.ListConversations(st)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list conversations: %v", err)
	}

	out := make([]*wppsearchv1.Conversation, 0, len(convs))
	for _, c := range convs {
		out = append(out, &wppsearchv1.Conversation{
			Uuid:            c.UUID,
			AccountUuid:     c.AccountUUID,
			Contact:         c.ContactJID,
			Name:            c.Name,
			Mode:            entity.Mode(c.Mode).String(),
			Archived:        c.Status == store.ConversationArchived,
			UpdatedAtUnixMs: c.UpdatedAt,
		})
	}
	return &wppsearchv1.ListConversationsResponse{Conversations: out}, nil
}

func (s *SessionService) ArchiveConversation(_ context.Context, req *wppsearchv1.ArchiveConversationRequest) (*wppsearchv1.ArchiveConversationResponse, error) {
	id := req.GetUuid()
	if id == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "conversation uuid is required")
	}
	if s.deps.Archiver == nil {
		return nil, grpcstatus.Error(codes.Unavailable, "ingestion not initialized")
	}
	if err := s.deps.Archiver.ArchiveConversation(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, grpcstatus.Errorf(codes.NotFound, "conversation %s not found", id)
		}
		return nil, grpcstatus.Errorf(codes.Internal, "archive conversation: %v", err)
	}
	return &wppsearchv1.ArchiveConversationResponse{Archived: true}, nil
}
