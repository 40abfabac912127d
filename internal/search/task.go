package search

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/matheus3301/wppsearch/internal/entity"
	"github.com/matheus3301/wppsearch/internal/status"
	"github.com/matheus3301/wppsearch/internal/store"
	"go.mau.fi/whatsmeow/types"
	"go.uber.org/zap"
)

// ErrAccountNotFound is wrapped by ResolveError when the owning account of a
// row is gone.
var ErrAccountNotFound = errors.New("account not found")

// ResolveError reports a row whose conversation could not be rebuilt.
type ResolveError struct {
	ConversationUUID string
	AccountUUID      string
	Contact          string
	Err              error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve conversation %s (account %s, contact %q): %v",
		e.ConversationUUID, e.AccountUUID, e.Contact, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Task is a single search execution. It is built by Searcher.Search and run
// by the search executor; the zero value is not usable.
type Task struct {
	store     Store
	registry  Registry
	logger    *zap.Logger
	terms     []string
	onResults ResultsFunc

	cancelled atomic.Bool
	state     *status.Machine

	// conversation UUID -> resolved conversation, local to one Run
	cache map[string]entity.Conversational
}

// NewTask creates a queued task.
func NewTask(st Store, reg Registry, terms []string, onResults ResultsFunc, logger *zap.Logger) *Task {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Task{
		store:     st,
		registry:  reg,
		logger:    logger,
		terms:     terms,
		onResults: onResults,
		state:     status.NewMachine(),
	}
}

// Cancel asks the task to stop at its next checkpoint.
func (t *Task) Cancel() {
	t.cancelled.Store(true)
}

// State returns the lifecycle state. A task dropped before it started stays Queued.
func (t *Task) State() status.State {
	return t.state.Current()
}

// Terms returns the terms the task searches for.
func (t *Task) Terms() []string {
	return t.terms
}

// Run executes the search and delivers results unless it is cancelled or fails.
func (t *Task) Run() {
	if err := t.state.Transition(status.Running); err != nil {
		t.logger.Warn("search task not runnable", zap.Error(err))
		return
	}
	defer func() {
		// a panic escaping below leaves the task Running
		if t.state.Current() == status.Running {
			_ = t.state.Transition(status.Failed)
		}
	}()

	log := t.logger.With(zap.String("terms", strings.Join(t.terms, " ")))
	if t.cancelled.Load() {
		t.finishCancelled(log)
		return
	}

	start := time.Now()
	cursor, err := t.store.SearchMessages(t.terms)
	dbTime := time.Since(start)
	if err != nil {
		log.Error("search query failed", zap.Error(err))
		_ = t.state.Transition(status.Failed)
		return
	}
	defer func() { _ = cursor.Close() }()

	if t.cancelled.Load() {
		t.finishCancelled(log)
		return
	}

	t.cache = make(map[string]entity.Conversational)
	results := make([]Result, 0, cursor.Count())
	if cursor.Count() > 0 && cursor.MoveToLast() {
		for {
			if t.cancelled.Load() {
				t.finishCancelled(log)
				return
			}
			row := cursor.Row()
			if !IsDownloadablePlaceholder(row.Body, row.OOB) {
				conv, err := t.resolve(row)
				if err != nil {
					log.Error("search aborted, unresolvable row",
						zap.String("message", row.UUID), zap.Error(err))
					_ = t.state.Transition(status.Failed)
					return
				}
				results = append(results, newResult(row, conv))
			}
			if !cursor.MoveToPrevious() {
				break
			}
		}
	}

	log.Debug("search completed",
		zap.Int("results", len(results)),
		zap.Duration("total", time.Since(start)),
		zap.Duration("db", dbTime))
	_ = t.state.Transition(status.Completed)
	if t.onResults != nil {
		t.onResults(t.terms, results)
	}
}

func (t *Task) finishCancelled(log *zap.Logger) {
	log.Debug("search task cancelled")
	_ = t.state.Transition(status.Cancelled)
}

// resolve finds the conversation for row: the per-task cache first, then the
// live registry, then a stub built from the owning account.
func (t *Task) resolve(row store.SearchRow) (entity.Conversational, error) {
	if c, ok := t.cache[row.ConversationUUID]; ok {
		return c, nil
	}
	var conv entity.Conversational
	if live := t.registry.FindConversation(row.ConversationUUID); live != nil {
		conv = live
	} else {
		stub, err := t.stub(row)
		if err != nil {
			return nil, err
		}
		conv = stub
	}
	t.cache[row.ConversationUUID] = conv
	return conv, nil
}

func (t *Task) stub(row store.SearchRow) (*entity.Stub, error) {
	fail := func(err error) error {
		return &ResolveError{
			ConversationUUID: row.ConversationUUID,
			AccountUUID:      row.AccountUUID,
			Contact:          row.ContactJID,
			Err:              err,
		}
	}
	account := t.registry.FindAccount(row.AccountUUID)
	if account == nil {
		return nil, fail(ErrAccountNotFound)
	}
	contact, err := entity.ParseAddress(row.ContactJID)
	if err != nil {
		return nil, fail(err)
	}
	return entity.NewStub(account, row.ConversationUUID, contact, entity.Mode(row.Mode)), nil
}

func newResult(row store.SearchRow, conv entity.Conversational) Result {
	counterpart, err := types.ParseJID(row.Counterpart)
	if err != nil {
		counterpart = types.EmptyJID
	}
	return Result{
		UUID:             row.UUID,
		ConversationUUID: row.ConversationUUID,
		Body:             row.Body,
		Counterpart:      counterpart,
		TimeSent:         time.UnixMilli(row.TimeSent),
		Status:           entity.ParseStatus(row.Status),
		FileRef:          row.FileRef,
		Conversation:     conv,
	}
}
