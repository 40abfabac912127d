package views

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/rivo/tview"
)

// StubMarker prefixes results whose conversation is no longer live.
const StubMarker = "~ "

// SearchView is an input field over a result table. Every edit of the
// input is reported through the query callback.
type SearchView struct {
	*tview.Flex
	input   *tview.InputField
	results *tview.Table
	onQuery func(query string)
	data    []*wppsearchv1.Message
	now     func() time.Time
}

// NewSearchView creates a new search view.
func NewSearchView() *SearchView {
	input := tview.NewInputField().
		SetLabel(" Search: ").
		SetFieldWidth(0)

	results := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	results.SetBorder(true).SetTitle(" Results ")
	results.SetSelectedStyle(tcell.StyleDefault.Reverse(true))

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(input, 1, 0, true).
		AddItem(results, 0, 1, false)

	sv := &SearchView{
		Flex:    flex,
		input:   input,
		results: results,
		now:     time.Now,
	}
	input.SetChangedFunc(func(text string) {
		if sv.onQuery != nil {
			sv.onQuery(text)
		}
	})
	return sv
}

// SetOnQuery sets the callback run on every edit of the query.
func (sv *SearchView) SetOnQuery(fn func(query string)) {
	sv.onQuery = fn
}

// SetOnSelect sets the callback run when the highlighted result changes.
func (sv *SearchView) SetOnSelect(fn func(m *wppsearchv1.Message)) {
	sv.results.SetSelectionChangedFunc(func(row, _ int) {
		fn(sv.messageAt(row))
	})
}

// Update replaces the result rows. Results are shown in the order given,
// which the daemon delivers newest first.
func (sv *SearchView) Update(results []*wppsearchv1.Message) {
	sv.data = results
	sv.results.Clear()

	headers := []string{" CONVERSATION", " FROM", " MESSAGE", " SENT"}
	for col, h := range headers {
		sv.results.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(tview.Styles.SecondaryTextColor).
			SetAttributes(tcell.AttrBold))
	}

	now := sv.now()
	for i, m := range results {
		row := i + 1
		sv.results.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(conversationLabel(m))).SetMaxWidth(25))
		sv.results.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(m.GetCounterpart())).SetMaxWidth(20))
		sv.results.SetCell(row, 2, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(m.GetBody()))).SetExpansion(1))
		sv.results.SetCell(row, 3, tview.NewTableCell(" "+formatTimestamp(m.GetTimeSentUnixMs(), now)).SetMaxWidth(12))
	}
	sv.results.SetTitle(title(len(results)))
	if len(results) > 0 {
		sv.results.Select(1, 0)
	}
}

// Reset drops all rows, leaving the input untouched.
func (sv *SearchView) Reset() {
	sv.Update(nil)
}

// SelectedResult returns the highlighted result, or nil.
func (sv *SearchView) SelectedResult() *wppsearchv1.Message {
	row, _ := sv.results.GetSelection()
	return sv.messageAt(row)
}

func (sv *SearchView) messageAt(row int) *wppsearchv1.Message {
	idx := row - 1
	if idx >= 0 && idx < len(sv.data) {
		return sv.data[idx]
	}
	return nil
}

// Input returns the search input field.
func (sv *SearchView) Input() *tview.InputField {
	return sv.input
}

// Results returns the results table.
func (sv *SearchView) Results() *tview.Table {
	return sv.results
}

func conversationLabel(m *wppsearchv1.Message) string {
	label := m.GetConversationName()
	if label == "" {
		label = m.GetContact()
	}
	if m.GetConversationKind() == "stub" {
		label = StubMarker + label
	}
	return label
}

func title(n int) string {
	switch n {
	case 0:
		return " Results "
	case 1:
		return " 1 result "
	default:
		return fmt.Sprintf(" %d results ", n)
	}
}

func formatTimestamp(ms int64, now time.Time) string {
	if ms == 0 {
		return ""
	}
	t := time.UnixMilli(ms).In(now.Location())
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	if t.Year() == now.Year() {
		return t.Format("01/02")
	}
	return t.Format("2006-01-02")
}
