package views

import (
	"fmt"
	"time"

	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/rivo/tview"
)

// StatusBar displays persistent session/search status.
type StatusBar struct {
	*tview.TextView
	session   string
	status    string
	searching bool
	flash     string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv}
}

// SetSession updates the session name display.
func (sb *StatusBar) SetSession(name string) {
	sb.session = name
	sb.render()
}

// SetStatus summarizes a daemon status response.
func (sb *StatusBar) SetStatus(st *wppsearchv1.GetStatusResponse) {
	sb.status = statusLine(st)
	sb.render()
}

// SetSearching updates the search indicator.
func (sb *StatusBar) SetSearching(searching bool) {
	sb.searching = searching
	sb.render()
}

// SetFlash sets a temporary message.
func (sb *StatusBar) SetFlash(msg string) {
	sb.flash = msg
	sb.render()
}

func statusLine(st *wppsearchv1.GetStatusResponse) string {
	if st == nil {
		return "[red]daemon unreachable[-]"
	}
	line := st.Connection
	if !st.LoggedIn {
		line += " (not paired)"
	}
	return fmt.Sprintf("%s | %d msgs in %d conversations", line, st.Messages, st.StoredConversations)
}

func (sb *StatusBar) render() {
	sb.Clear()

	icon := " "
	if sb.searching {
		icon = "[green]~[-]"
	}

	clock := time.Now().Format("15:04")

	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s %s | %s", sb.session, sb.status, icon, clock)
	if sb.flash != "" {
		line += fmt.Sprintf(" | [yellow]%s[-]", tview.Escape(sb.flash))
	}

	_, _ = fmt.Fprint(sb, line)
}
