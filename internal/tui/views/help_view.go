package views

import (
	"fmt"

	"github.com/rivo/tview"
)

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
}

// NewHelpView creates a new help view.
func NewHelpView() *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true).SetTitle(" Help ")

	hv := &HelpView{TextView: tv}
	_, _ = fmt.Fprint(hv, helpText)
	return hv
}

const helpText = `
  [::b]Search[-:-:-]

  [yellow]type[-]      Search as you type; older queries are dropped
  [yellow]Tab[-]       Switch between the query and the results
  [yellow]Enter[-]     Show the highlighted message
  [yellow]Ctrl-X[-]    Cancel the running search
  [yellow]Esc[-]       Clear the query / close this help

  [::b]Results[-:-:-]

  Newest messages are listed first.
  Rows marked [yellow]~[-] belong to archived conversations.

  [::b]Global[-:-:-]

  [yellow]?[-]         Help (from the results table)
  [yellow]Ctrl-C[-]    Quit
`
