package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/matheus3301/wppsearch/internal/bus"
	"github.com/matheus3301/wppsearch/internal/entity"
	"github.com/matheus3301/wppsearch/internal/search"
	"github.com/matheus3301/wppsearch/internal/store"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// Search event kinds sent on WatchResults.
const (
	EventSubscribed = "subscribed"
	EventResults    = "results"
)

// ConversationStub is the conversation_kind of results whose conversation
// is no longer live.
const ConversationStub = "stub"

// Searcher is the part of search.Searcher the service drives.
type Searcher interface {
	Search(terms []string, onResults search.ResultsFunc) *search.Task
	CancelRunningTasks()
	Busy() bool
}

// ResultsEvent is the payload of bus.KindSearchResults.
type ResultsEvent struct {
	RequestID string
	Terms     []string
	Results   []search.Result
}

// SearchService implements the SearchService gRPC service. Completed
// searches are published on the bus and fanned out to every WatchResults
// stream.
type SearchService struct {
	wppsearchv1.UnimplementedSearchServiceServer

	searcher Searcher
	bus      *bus.Bus
	logger   *zap.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(s Searcher, b *bus.Bus, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{searcher: s, bus: b, logger: logger}
}

func (s *SearchService) Search(_ context.Context, req *wppsearchv1.SearchRequest) (*wppsearchv1.SearchResponse, error) {
	terms := req.GetTerms()
	if len(terms) == 0 {
		terms = store.ParseTerms(req.GetQuery())
	}
	if len(terms) == 0 {
		return nil, grpcstatus.Error(codes.InvalidArgument, "query has no search terms")
	}

	requestID := uuid.NewString()
	s.searcher.Search(terms, func(terms []string, results []search.Result) {
		s.bus.Emit(bus.KindSearchResults, &ResultsEvent{
			RequestID: requestID,
			Terms:     terms,
			Results:   results,
		})
	})
	s.logger.Debug("search submitted", zap.String("request_id", requestID), zap.Strings("terms", terms))

	return &wppsearchv1.SearchResponse{Accepted: true, RequestId: requestID, Terms: terms}, nil
}

func (s *SearchService) CancelSearches(_ context.Context, _ *wppsearchv1.CancelSearchesRequest) (*wppsearchv1.CancelSearchesResponse, error) {
	busy := s.searcher.Busy()
	s.searcher.CancelRunningTasks()
	return &wppsearchv1.CancelSearchesResponse{WasBusy: busy}, nil
}

func (s *SearchService) WatchResults(_ *wppsearchv1.WatchResultsRequest, stream wppsearchv1.SearchService_WatchResultsServer) error {
	ch, unsub := s.bus.Subscribe("search.", 64)
	defer unsub()

	if err := stream.Send(&wppsearchv1.SearchEvent{
		EventId:          uuid.NewString(),
		Kind:             EventSubscribed,
		OccurredAtUnixMs: time.Now().UnixMilli(),
	}); err != nil {
		return err
	}

	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return nil
			}
			re, ok := evt.Payload.(*ResultsEvent)
			if !ok {
				continue
			}
			if err := stream.Send(&wppsearchv1.SearchEvent{
				EventId:          uuid.NewString(),
				Kind:             EventResults,
				RequestId:        re.RequestID,
				Terms:            re.Terms,
				Results:          messagesFromResults(re.Results),
				OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

func messagesFromResults(results []search.Result) []*wppsearchv1.Message {
	out := make([]*wppsearchv1.Message, 0, len(results))
	for _, r := range results {
		out = append(out, messageFromResult(r))
	}
	return out
}

func messageFromResult(r search.Result) *wppsearchv1.Message {
	m := &wppsearchv1.Message{
		Uuid:             r.UUID,
		ConversationUuid: r.ConversationUUID,
		Body:             r.Body,
		Status:           r.Status.String(),
		FileRef:          r.FileRef,
		TimeSentUnixMs:   r.TimeSent.UnixMilli(),
	}
	if !r.Counterpart.IsEmpty() {
		m.Counterpart = r.Counterpart.String()
	}
	if c := r.Conversation; c != nil {
		m.ConversationKind = c.Kind().String()
		m.Contact = c.Address().String()
		m.Mode = c.Mode().String()
		if acc := c.Account(); acc != nil {
			m.AccountJid = acc.JID.String()
		}
		if live, ok := c.(*entity.Conversation); ok {
			m.ConversationName = live.Name()
		}
	}
	return m
}
