package tui

import "github.com/aalvaropc/recipedeck/internal/ports"

// Notices queues blocking messages for the UI. It is only touched from the
// bubbletea update loop.
type Notices struct {
	queue []string
}

func NewNotices() *Notices { return &Notices{} }

var _ ports.Notifier = (*Notices)(nil)

func (n *Notices) Notify(msg string) {
	n.queue = append(n.queue, msg)
}

// Current returns the notice on screen, if any.
func (n *Notices) Current() (string, bool) {
	if n == nil || len(n.queue) == 0 {
		return "", false
	}
	return n.queue[0], true
}

func (n *Notices) Dismiss() {
	if n != nil && len(n.queue) > 0 {
		n.queue = n.queue[1:]
	}
}
