package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
)

type EventsClient struct {
	c *Client
}

func (c *Client) Events() *EventsClient { return &EventsClient{c: c} }

// List fetches events, optionally filtered by status. No-cache headers are
// forced so capacity counters are never served stale.
func (e *EventsClient) List(ctx context.Context, status domain.EventStatus) Result[[]domain.Event] {
	q := url.Values{}
	q.Set("limit", "100")
	if status != "" {
		q.Set("status", string(status))
	}

	res := call[[]domain.Event](ctx, e.c, http.MethodGet, "/events?"+q.Encode(), nil, MsgFetchEvents, reqOptions{noCache: true})
	res.Data = emptyIfNil(res.Data)
	return res
}

func (e *EventsClient) MyEvents(ctx context.Context) Result[[]domain.Event] {
	res := call[[]domain.Event](ctx, e.c, http.MethodGet, "/events/my-events", nil, MsgFetchMyEvents, reqOptions{noCache: true})
	res.Data = emptyIfNil(res.Data)
	return res
}

func (e *EventsClient) Create(ctx context.Context, payload request.CreateEventPayload) Result[domain.Event] {
	return call[domain.Event](ctx, e.c, http.MethodPost, "/events", payload, MsgCreateEvent, reqOptions{})
}

// Update edits an event. The server resets its status to draft, forcing
// re-review; callers display whatever status comes back.
func (e *EventsClient) Update(ctx context.Context, id string, payload request.CreateEventPayload) Result[domain.Event] {
	return call[domain.Event](ctx, e.c, http.MethodPatch, "/events/"+id, payload, MsgUpdateEvent, reqOptions{})
}

func (e *EventsClient) Delete(ctx context.Context, id string) Result[struct{}] {
	return call[struct{}](ctx, e.c, http.MethodDelete, "/events/"+id, nil, MsgDeleteEvent, reqOptions{})
}

// Submit requests the draft/rejected -> pending transition.
func (e *EventsClient) Submit(ctx context.Context, id string) Result[struct{}] {
	return call[struct{}](ctx, e.c, http.MethodPost, "/events/"+id+"/submit", nil, MsgSubmitEvent, reqOptions{})
}

// Review requests the pending -> approved/rejected transition (admin only).
func (e *EventsClient) Review(ctx context.Context, id string, payload request.ReviewEventPayload) Result[struct{}] {
	return call[struct{}](ctx, e.c, http.MethodPost, "/events/"+id+"/review", payload, MsgReviewEvent, reqOptions{})
}

func (e *EventsClient) Participants(ctx context.Context, id string) Result[[]domain.Participant] {
	res := call[[]domain.Participant](ctx, e.c, http.MethodGet, "/events/"+id+"/participants", nil, MsgFetchParticipants, reqOptions{noCache: true})
	res.Data = emptyIfNil(res.Data)
	return res
}

func (e *EventsClient) CheckIn(ctx context.Context, id string, payload request.CheckInPayload) Result[struct{}] {
	return call[struct{}](ctx, e.c, http.MethodPost, "/events/"+id+"/check-in", payload, MsgCheckIn, reqOptions{})
}

func (e *EventsClient) Register(ctx context.Context, id string) Result[struct{}] {
	return call[struct{}](ctx, e.c, http.MethodPost, "/events/"+id+"/register",
		request.RegisterEventPayload{Notes: "Web Registration"}, MsgRegisterEvent, reqOptions{})
}

// CancelRegistration is idempotent from the UI's point of view: a 404 or an
// "already cancelled"/"not registered" message means the desired end state
// already holds and is reported as success. The DELETE carries no body and
// therefore no Content-Type header.
func (e *EventsClient) CancelRegistration(ctx context.Context, id string) Result[struct{}] {
	res := call[struct{}](ctx, e.c, http.MethodDelete, "/events/"+id+"/register", nil, MsgCancelRegistration, reqOptions{okOnNotFound: true})
	if !res.Success && isAlreadyCancelled(res.Message) {
		return Result[struct{}]{Success: true, Status: res.Status}
	}
	return res
}

func isAlreadyCancelled(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "already cancelled") || strings.Contains(m, "not registered")
}

func (e *EventsClient) Favorite(ctx context.Context, id string) Result[struct{}] {
	return call[struct{}](ctx, e.c, http.MethodPost, "/events/"+id+"/favorite", nil, MsgActionFailed, reqOptions{})
}

// Unfavorite tolerates 404 the same way CancelRegistration does.
func (e *EventsClient) Unfavorite(ctx context.Context, id string) Result[struct{}] {
	return call[struct{}](ctx, e.c, http.MethodDelete, "/events/"+id+"/favorite", nil, MsgActionFailed, reqOptions{okOnNotFound: true})
}

func (e *EventsClient) MyRegistrations(ctx context.Context) Result[[]domain.Participant] {
	res := call[[]domain.Participant](ctx, e.c, http.MethodGet, "/events/registrations", nil, MsgFetchRegistrations, reqOptions{noCache: true})
	res.Data = emptyIfNil(res.Data)
	return res
}

func (e *EventsClient) Favorites(ctx context.Context) Result[[]domain.Event] {
	res := call[[]domain.Event](ctx, e.c, http.MethodGet, "/events/favorites", nil, MsgFetchFavorites, reqOptions{noCache: true})
	res.Data = emptyIfNil(res.Data)
	return res
}
