package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/matheus3301/wppsearch/internal/bus"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"
)

type lastRun struct {
	at  time.Time
	err error
}

func (l lastRun) LastRun() (time.Time, error) { return l.at, l.err }

func TestGetStatusReportsDropsAndMaintenance(t *testing.T) {
	b := bus.New()
	_, unsub := b.Subscribe("search.", 1)
	defer unsub()
	for range 3 {
		b.Emit(bus.KindSearchResults, nil)
	}

	ran := time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC)
	svc := NewSessionService("work", SessionDeps{
		Events:      b,
		Maintenance: lastRun{at: ran, err: errors.New("disk full")},
	})

	resp, err := svc.GetStatus(context.Background(), &wppsearchv1.GetStatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	want := &wppsearchv1.GetStatusResponse{
		Session:            "work",
		Connection:         "disconnected",
		UptimeMs:           resp.UptimeMs,
		EventsDropped:      2,
		LastOptimizeUnixMs: ran.UnixMilli(),
	}
	if diff := cmp.Diff(want, resp, protocmp.Transform()); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestGetStatusBeforeFirstMaintenance(t *testing.T) {
	svc := NewSessionService("main", SessionDeps{Maintenance: lastRun{}})
	resp, err := svc.GetStatus(context.Background(), &wppsearchv1.GetStatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.LastOptimizeUnixMs != 0 || resp.EventsDropped != 0 {
		t.Errorf("status = %v, want no maintenance and no drops", resp)
	}
}

func TestSessionServiceWithoutStore(t *testing.T) {
	svc := NewSessionService("main", SessionDeps{})
	_, err := svc.ListConversations(context.Background(), &wppsearchv1.ListConversationsRequest{})
	if grpcstatus.Code(err) != codes.Unavailable {
		t.Errorf("ListConversations code = %v, want Unavailable", grpcstatus.Code(err))
	}
	_, err = svc.ArchiveConversation(context.Background(), &wppsearchv1.ArchiveConversationRequest{Uuid: "c1"})
	if grpcstatus.Code(err) != codes.Unavailable {
		t.Errorf("ArchiveConversation code = %v, want Unavailable", grpcstatus.Code(err))
	}
}
