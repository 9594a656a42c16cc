package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/optimistic"
)

type NotificationsAPI interface {
	List(ctx context.Context, page, limit int) client.Result[[]domain.Notification]
	UnreadCount(ctx context.Context) client.Result[client.UnreadCount]
	MarkRead(ctx context.Context, id string) client.Result[struct{}]
	MarkAllRead(ctx context.Context) client.Result[struct{}]
}

// NotificationCenter backs the header dropdown: a polled unread counter and
// the notification list with mark-read actions.
type NotificationCenter struct {
	api    NotificationsAPI
	poller *optimistic.Poller

	mu     sync.Mutex
	items  []domain.Notification
	unread int
}

func NewNotificationCenter(api NotificationsAPI) *NotificationCenter {
	return &NotificationCenter{api: api}
}

// StartPolling refreshes the unread counter on the given interval until
// Stop or context cancellation.
func (n *NotificationCenter) StartPolling(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	n.poller = optimistic.StartPoller(ctx, interval, func(ctx context.Context) {
		res := n.api.UnreadCount(ctx)
		if res.Success {
			n.mu.Lock()
			n.unread = res.Data.UnreadCount
			n.mu.Unlock()
		}
	})
}

func (n *NotificationCenter) Stop() {
	if n.poller != nil {
		n.poller.Stop()
	}
}

func (n *NotificationCenter) Unread() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.unread
}

func (n *NotificationCenter) Refresh(ctx context.Context) optimistic.Outcome {
	res := n.api.List(ctx, 1, 20)
	if !res.Success {
		return optimistic.Outcome{OK: false, Message: res.Message}
	}

	n.mu.Lock()
	n.items = res.Data
	n.mu.Unlock()
	return optimistic.Outcome{OK: true}
}

func (n *NotificationCenter) Notifications() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.Notification, len(n.items))
	copy(out, n.items)
	return out
}

// MarkRead flips the item and decrements the counter optimistically.
func (n *NotificationCenter) MarkRead(ctx context.Context, id string) optimistic.Outcome {
	n.mu.Lock()
	var wasUnread bool
	for _, item := range n.items {
		if item.ID == id {
			wasUnread = !item.IsRead
			break
		}
	}
	n.mu.Unlock()

	if !wasUnread {
		return optimistic.Outcome{OK: true}
	}

	return optimistic.Do(ctx,
		func() { n.applyRead(id, true) },
		func(ctx context.Context) optimistic.Outcome {
			res := n.api.MarkRead(ctx, id)
			return optimistic.Outcome{OK: res.Success, Message: res.Message}
		},
		func() { n.applyRead(id, false) },
	)
}

func (n *NotificationCenter) applyRead(id string, read bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].IsRead = read
			break
		}
	}
	if read {
		if n.unread > 0 {
			n.unread--
		}
	} else {
		n.unread++
	}
}

func (n *NotificationCenter) MarkAllRead(ctx context.Context) optimistic.Outcome {
	n.mu.Lock()
	prevItems := make([]domain.Notification, len(n.items))
	copy(prevItems, n.items)
	prevUnread := n.unread
	n.mu.Unlock()

	return optimistic.Do(ctx,
		func() {
			n.mu.Lock()
			for i := range n.items {
				n.items[i].IsRead = true
			}
			n.unread = 0
			n.mu.Unlock()
		},
		func(ctx context.Context) optimistic.Outcome {
			res := n.api.MarkAllRead(ctx)
			return optimistic.Outcome{OK: res.Success, Message: res.Message}
		},
		func() {
			n.mu.Lock()
			n.items = prevItems
			n.unread = prevUnread
			n.mu.Unlock()
		},
	)
}
