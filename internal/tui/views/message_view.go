package views

import (
	"fmt"
	"strings"
	"time"

	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/rivo/tview"
)

// MessageView shows the full text of the highlighted search result.
type MessageView struct {
	*tview.TextView
}

// NewMessageView creates a new message view.
func NewMessageView() *MessageView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetBorder(true).SetTitle(" Message ")

	return &MessageView{TextView: tv}
}

// Show renders m, or clears the view when m is nil.
func (mv *MessageView) Show(m *wppsearchv1.Message) {
	mv.Clear()
	if m == nil {
		mv.SetTitle(" Message ")
		return
	}
	mv.SetTitle(fmt.Sprintf(" %s ", tview.Escape(conversationLabel(m))))
	_, _ = fmt.Fprint(mv, renderMessage(m))
	mv.ScrollToBeginning()
}

func renderMessage(m *wppsearchv1.Message) string {
	sender := m.GetCounterpart()
	if st := m.GetStatus(); st != "" && st != "received" {
		sender = "You"
	}
	ts := time.UnixMilli(m.GetTimeSentUnixMs()).Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[::b]%s[-:-:-] [::d]%s  %s[-:-:-]\n%s\n",
		tview.Escape(sender), ts, m.GetStatus(), tview.Escape(sanitizeLines(m.GetBody())))
	if ref := m.GetFileRef(); ref != "" {
		line += fmt.Sprintf("\n[::d]attachment: %s[-:-:-]\n", tview.Escape(ref))
	}
	if m.GetConversationKind() == "stub" {
		line += "\n[::d]conversation archived[-:-:-]\n"
	}
	return line
}

// sanitizeLines is sanitizeForTerminal that keeps line breaks.
func sanitizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = sanitizeForTerminal(l)
	}
	return strings.Join(lines, "\n")
}
