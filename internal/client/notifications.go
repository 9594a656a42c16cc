package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/usv-events/client-go/internal/domain"
)

type NotificationsClient struct {
	c *Client
}

func (c *Client) Notifications() *NotificationsClient { return &NotificationsClient{c: c} }

func (n *NotificationsClient) List(ctx context.Context, page, limit int) Result[[]domain.Notification] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	path := "/notifications?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	res := call[[]domain.Notification](ctx, n.c, http.MethodGet, path, nil, MsgRequestFailed, reqOptions{})
	res.Data = emptyIfNil(res.Data)
	return res
}

type UnreadCount struct {
	UnreadCount int `json:"unreadCount"`
}

func (n *NotificationsClient) UnreadCount(ctx context.Context) Result[UnreadCount] {
	return call[UnreadCount](ctx, n.c, http.MethodGet, "/notifications/unread-count", nil, MsgRequestFailed, reqOptions{})
}

func (n *NotificationsClient) MarkRead(ctx context.Context, id string) Result[struct{}] {
	return call[struct{}](ctx, n.c, http.MethodPost, "/notifications/"+id+"/read", nil, MsgMarkRead, reqOptions{})
}

func (n *NotificationsClient) MarkAllRead(ctx context.Context) Result[struct{}] {
	return call[struct{}](ctx, n.c, http.MethodPost, "/notifications/read-all", nil, MsgMarkRead, reqOptions{})
}
