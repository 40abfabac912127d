package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/matheus3301/wppsearch/internal/tui/client"
	"github.com/matheus3301/wppsearch/internal/tui/views"
	"github.com/rivo/tview"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	rpcTimeout     = 5 * time.Second
	refreshEvery   = 5 * time.Second
	reconnectDelay = time.Second
	flashFor       = 5 * time.Second
)

// App is the incremental search screen.
type App struct {
	app       *tview.Application
	pages     *tview.Pages
	grpc      *client.Client
	statusBar *views.StatusBar
	searchV   *views.SearchView
	msgView   *views.MessageView
	helpV     *views.HelpView
	track     tracker
	queries   chan string
	ctx       context.Context
	cancel    context.CancelFunc

	flashMu    sync.Mutex
	flashUntil time.Time
}

// NewApp creates the TUI application.
func NewApp(c *client.Client, sessionName string) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		grpc:      c,
		statusBar: views.NewStatusBar(),
		searchV:   views.NewSearchView(),
		msgView:   views.NewMessageView(),
		helpV:     views.NewHelpView(),
		queries:   make(chan string, 1),
		ctx:       ctx,
		cancel:    cancel,
	}

	a.statusBar.SetSession(sessionName)
	a.setupCallbacks()
	a.setupLayout()

	return a
}

func (a *App) setupCallbacks() {
	a.searchV.SetOnQuery(a.enqueue)
	a.searchV.SetOnSelect(func(m *wppsearchv1.Message) {
		a.msgView.Show(m)
	})
	a.searchV.Results().SetSelectedFunc(func(row, _ int) {
		a.msgView.Show(a.searchV.SelectedResult())
		a.app.SetFocus(a.msgView)
	})
}

func (a *App) setupLayout() {
	body := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.searchV, 0, 3, true).
		AddItem(a.msgView, 0, 1, false)

	a.pages.AddPage("search", body, true, true)
	a.pages.AddPage("help", a.helpV, true, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(root, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		currentPage, _ := a.pages.GetFrontPage()
		focused := a.app.GetFocus()

		switch event.Key() {
		case tcell.KeyEscape:
			switch {
			case currentPage == "help":
				a.pages.SwitchToPage("search")
				a.app.SetFocus(a.searchV.Input())
			case focused == a.msgView:
				a.app.SetFocus(a.searchV.Results())
			default:
				a.searchV.Input().SetText("")
				a.enqueue("")
				a.app.SetFocus(a.searchV.Input())
			}
			return nil
		case tcell.KeyTab:
			if focused == a.searchV.Input() {
				a.app.SetFocus(a.searchV.Results())
			} else {
				a.app.SetFocus(a.searchV.Input())
			}
			return nil
		case tcell.KeyCtrlX:
			go a.cancelSearch()
			return nil
		}

		if _, ok := focused.(*tview.InputField); ok {
			return event
		}
		if event.Key() == tcell.KeyRune && event.Rune() == '?' {
			a.pages.SwitchToPage("help")
			a.app.SetFocus(a.helpV)
			return nil
		}
		return event
	})
}

// enqueue replaces any query not yet picked up by the submit loop. It is
// called from the event loop only.
func (a *App) enqueue(query string) {
	select {
	case <-a.queries:
	default:
	}
	select {
	case a.queries <- query:
	default:
	}
}

// submitLoop sends queries to the daemon one at a time so they arrive in
// typing order. The daemon keeps only the newest pending search, so every
// keystroke can be submitted.
func (a *App) submitLoop() {
	for {
		select {
		case q := <-a.queries:
			a.submit(q)
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) submit(query string) {
	if strings.TrimSpace(query) == "" {
		a.clear()
		a.cancelSearch()
		return
	}
	seq := a.track.next()

	ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
	defer cancel()
	resp, err := a.grpc.Search(ctx, &wppsearchv1.SearchRequest{Query: query})
	if status.Code(err) == codes.InvalidArgument {
		// Only quotes or separators so far.
		return
	}
	if err != nil {
		a.flash("Search failed: " + err.Error())
		return
	}

	a.app.QueueUpdateDraw(func() { a.statusBar.SetSearching(true) })
	if evt := a.track.expect(seq, resp.GetRequestId()); evt != nil {
		a.render(evt)
	}
}

func (a *App) clear() {
	a.track.reset()
	a.app.QueueUpdateDraw(func() {
		a.searchV.Reset()
		a.msgView.Show(nil)
		a.statusBar.SetSearching(false)
	})
}

func (a *App) cancelSearch() {
	ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
	defer cancel()
	resp, err := a.grpc.CancelSearches(ctx)
	if err != nil {
		a.flash("Cancel failed: " + err.Error())
		return
	}
	if resp.GetWasBusy() {
		a.flash("Search cancelled")
		a.app.QueueUpdateDraw(func() { a.statusBar.SetSearching(false) })
	}
}

func (a *App) render(evt *wppsearchv1.SearchEvent) {
	a.app.QueueUpdateDraw(func() {
		a.searchV.Update(evt.GetResults())
		a.msgView.Show(a.searchV.SelectedResult())
		a.statusBar.SetSearching(false)
	})
}

// watch keeps a result stream open for the lifetime of the app.
func (a *App) watch() {
	for a.ctx.Err() == nil {
		err := a.consume()
		if a.ctx.Err() != nil {
			return
		}
		if err != nil && !errors.Is(err, io.EOF) {
			a.flash("Result stream lost: " + err.Error())
		}
		select {
		case <-time.After(reconnectDelay):
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) consume() error {
	stream, err := a.grpc.WatchResults(a.ctx)
	if err != nil {
		return err
	}
	for {
		evt, err := stream.Recv()
		if err != nil {
			return err
		}
		if a.track.deliver(evt) {
			a.render(evt)
		}
	}
}

func (a *App) refreshStatus() {
	ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
	defer cancel()
	st, _ := a.grpc.GetStatus(ctx)
	a.app.QueueUpdateDraw(func() {
		a.statusBar.SetStatus(st)
		a.flashMu.Lock()
		expired := !a.flashUntil.IsZero() && time.Now().After(a.flashUntil)
		if expired {
			a.flashUntil = time.Time{}
		}
		a.flashMu.Unlock()
		if expired {
			a.statusBar.SetFlash("")
		}
	})
}

func (a *App) flash(msg string) {
	a.flashMu.Lock()
	a.flashUntil = time.Now().Add(flashFor)
	a.flashMu.Unlock()
	a.app.QueueUpdateDraw(func() { a.statusBar.SetFlash(msg) })
}

func (a *App) startRefreshLoop() {
	ticker := time.NewTicker(refreshEvery)
	go func() {
		for {
			select {
			case <-ticker.C:
				a.refreshStatus()
			case <-a.ctx.Done():
				ticker.Stop()
				return
			}
		}
	}()
}

// Run starts the TUI application.
func (a *App) Run() error {
	go a.watch()
	go a.submitLoop()
	go a.refreshStatus()
	a.startRefreshLoop()

	err := a.app.Run()
	a.cancel()
	return err
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
