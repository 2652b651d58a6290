package client

import (
	"sync"

	"github.com/meshdrive/meshdrive/models"
)

// Notification is one user-facing (title, body) pair.
type Notification struct {
	Title string
	Body  string
}

// NotificationQueue is a FIFO of pending notifications. The title can be
// peeked without consuming; popping removes title and body together, so each
// notification is surfaced at most once no matter how often the UI polls.
type NotificationQueue struct {
	mu    sync.Mutex
	items []Notification
}

func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{}
}

func (q *NotificationQueue) Push(title, body string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, Notification{Title: title, Body: body})
}

// PeekTitle returns the front notification's title without consuming it.
func (q *NotificationQueue) PeekTitle() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return "", false
	}
	return q.items[0].Title, true
}

// Pop removes and returns the front notification.
func (q *NotificationQueue) Pop() (Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return Notification{}, false
	}

	n := q.items[0]
	q.items = q.items[1:]
	return n, true
}

func (q *NotificationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// statusObserver derives notifications from state transitions between
// consecutive status snapshots. Repeated identical snapshots never enqueue
// duplicates; the very first observed value is suppressed so a client
// starting against existing state does not re-announce it.
type statusObserver struct {
	prevReceived string
	prevSent     string
	seen         bool
}

func (o *statusObserver) observe(status models.StatusResponse, queue *NotificationQueue) {
	if o.seen {
		if cur := status.LastReceivedFile; cur != "" && cur != o.prevReceived && o.prevReceived != "" {
			queue.Push("File received", cur)
		}

		if sent := status.LastSentFile; sent != nil && sent.Succeeded && !sent.Sending &&
			sent.Name != o.prevSent && o.prevSent != "" {
			queue.Push("File sent", sent.Name)
		}
	}

	o.seen = true
	if status.LastReceivedFile != "" {
		o.prevReceived = status.LastReceivedFile
	}
	if sent := status.LastSentFile; sent != nil && !sent.Sending {
		o.prevSent = sent.Name
	}
}

// reset clears transition state after a reconnect so stale comparisons do
// not fire against a different server's history.
func (o *statusObserver) reset() {
	o.prevReceived = ""
	o.prevSent = ""
	o.seen = false
}
