// Package search runs message searches in the background, one at a time.
//
// Searcher.Search builds a Task and hands it to a debouncing executor, so a
// burst of searches (one per keystroke, for instance) only pays for the last
// one. Results are delivered through a callback, at most once per search.
package search

import (
	"slices"
	"time"

	"github.com/matheus3301/wppsearch/internal/entity"
	"github.com/matheus3301/wppsearch/internal/executor"
	"github.com/matheus3301/wppsearch/internal/store"
	"go.mau.fi/whatsmeow/types"
	"go.uber.org/zap"
)

// Cursor is a sequential view over matched rows that can be walked from the
// last row to the first.
type Cursor interface {
	Count() int
	MoveToLast() bool
	MoveToPrevious() bool
	Row() store.SearchRow
	Close() error
}

// Store yields the rows matching a set of terms.
type Store interface {
	SearchMessages(terms []string) (Cursor, error)
}

// Registry resolves live conversations and accounts.
type Registry interface {
	FindConversation(uuid string) *entity.Conversation
	FindAccount(uuid string) *entity.Account
}

// Result is one matched message paired with the conversation it belongs to.
type Result struct {
	UUID             string
	ConversationUUID string
	Body             string
	Counterpart      types.JID
	TimeSent         time.Time
	Status           entity.Status
	FileRef          string
	Conversation     entity.Conversational
}

// ResultsFunc receives the terms of a completed search and its results,
// newest first.
type ResultsFunc func(terms []string, results []Result)

// DBStore adapts a *store.DB to Store.
func DBStore(db *store.DB) Store {
	return dbStore{db: db}
}

type dbStore struct {
	db *store.DB
}

func (s dbStore) SearchMessages(terms []string) (Cursor, error) {
	c, err := s.db.SearchMessages(terms)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Searcher owns the search executor.
type Searcher struct {
	store    Store
	registry Registry
	logger   *zap.Logger
	exec     *executor.Executor
}

// New creates a Searcher and starts its worker.
func New(st Store, reg Registry, logger *zap.Logger) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{
		store:    st,
		registry: reg,
		logger:   logger,
		exec:     executor.New("search", logger),
	}
}

// Search starts a background search for terms and returns immediately.
// A running search is asked to stop and a queued one is dropped.
// onResults fires at most once, and only if the search completes.
func (s *Searcher) Search(terms []string, onResults ResultsFunc) *Task {
	t := NewTask(s.store, s.registry, slices.Clone(terms), onResults, s.logger)
	s.exec.Submit(t)
	return t
}

// CancelRunningTasks stops the running search, if any, and drops the queued one.
func (s *Searcher) CancelRunningTasks() {
	s.exec.CancelAll()
}

// Busy reports whether a search is running.
func (s *Searcher) Busy() bool {
	return s.exec.Busy()
}

// Close cancels outstanding work and stops the worker.
func (s *Searcher) Close() {
	s.exec.Close()
}

// Done is closed once the worker has exited after Close.
func (s *Searcher) Done() <-chan struct{} {
	return s.exec.Done()
}
