package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/matheus3301/wppsearch/internal/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps the gRPC connection to the daemon.
type Client struct {
	conn    *grpc.ClientConn
	search  wppsearchv1.SearchServiceClient
	session wppsearchv1.SessionServiceClient
}

// New dials the daemon's Unix domain socket.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	return &Client{
		conn:    conn,
		search:  wppsearchv1.NewSearchServiceClient(conn),
		session: wppsearchv1.NewSessionServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Search(ctx context.Context, req *wppsearchv1.SearchRequest) (*wppsearchv1.SearchResponse, error) {
	return c.search.Search(ctx, req)
}

func (c *Client) CancelSearches(ctx context.Context) (*wppsearchv1.CancelSearchesResponse, error) {
	return c.search.CancelSearches(ctx, &wppsearchv1.CancelSearchesRequest{})
}

func (c *Client) GetStatus(ctx context.Context) (*wppsearchv1.GetStatusResponse, error) {
	return c.session.GetStatus(ctx, &wppsearchv1.GetStatusRequest{})
}

func (c *Client) ListConversations(ctx context.Context, archived bool) (*wppsearchv1.ListConversationsResponse, error) {
	return c.session.ListConversations(ctx, &wppsearchv1.ListConversationsRequest{Archived: archived})
}

func (c *Client) ArchiveConversation(ctx context.Context, uuid string) (*wppsearchv1.ArchiveConversationResponse, error) {
	return c.session.ArchiveConversation(ctx, &wppsearchv1.ArchiveConversationRequest{Uuid: uuid})
}

// ResultStream receives WatchResults events.
type ResultStream struct {
	stream wppsearchv1.SearchService_WatchResultsClient
}

// Recv returns the next event, or io.EOF once the daemon closes the stream.
func (s *ResultStream) Recv() (*wppsearchv1.SearchEvent, error) {
	return s.stream.Recv()
}

// WatchResults opens the result stream. The first event is always
// api.EventSubscribed. Cancel ctx to close it.
func (c *Client) WatchResults(ctx context.Context) (*ResultStream, error) {
	stream, err := c.search.WatchResults(ctx, &wppsearchv1.WatchResultsRequest{})
	if err != nil {
		return nil, err
	}
	return &ResultStream{stream: stream}, nil
}

// WaitResults reads the stream until the results of requestID arrive.
func (s *ResultStream) WaitResults(requestID string) (*wppsearchv1.SearchEvent, error) {
	for {
		evt, err := s.Recv()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("result stream closed before %s completed", requestID)
		}
		if err != nil {
			return nil, err
		}
		if evt.GetKind() == api.EventResults && evt.GetRequestId() == requestID {
			return evt, nil
		}
	}
}
