package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
)

type FeedbackClient struct {
	c *Client
}

func (c *Client) Feedback() *FeedbackClient { return &FeedbackClient{c: c} }

// Create submits feedback. Eligibility (event ended, attended) is enforced
// by the server.
func (f *FeedbackClient) Create(ctx context.Context, payload request.CreateFeedbackPayload) Result[struct{}] {
	return call[struct{}](ctx, f.c, http.MethodPost, "/feedback", payload, MsgSubmitFeedback, reqOptions{})
}

func (f *FeedbackClient) Mine(ctx context.Context) Result[[]domain.Feedback] {
	res := call[[]domain.Feedback](ctx, f.c, http.MethodGet, "/feedback/my", nil, MsgRequestFailed, reqOptions{})
	res.Data = emptyIfNil(res.Data)
	return res
}

func (f *FeedbackClient) ForEvent(ctx context.Context, eventID string, page int) Result[[]domain.Feedback] {
	if page < 1 {
		page = 1
	}
	path := "/feedback/event/" + eventID + "?page=" + strconv.Itoa(page) + "&limit=20"
	res := call[[]domain.Feedback](ctx, f.c, http.MethodGet, path, nil, MsgRequestFailed, reqOptions{})
	res.Data = emptyIfNil(res.Data)
	return res
}

func (f *FeedbackClient) Stats(ctx context.Context, eventID string) Result[domain.FeedbackStats] {
	return call[domain.FeedbackStats](ctx, f.c, http.MethodGet, "/feedback/event/"+eventID+"/stats", nil, MsgRequestFailed, reqOptions{})
}
