package dashboard

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
)

type fakeOrganizerAPI struct {
	myEventsFn     func(ctx context.Context) client.Result[[]domain.Event]
	createFn       func(ctx context.Context, payload request.CreateEventPayload) client.Result[domain.Event]
	updateFn       func(ctx context.Context, id string, payload request.CreateEventPayload) client.Result[domain.Event]
	deleteFn       func(ctx context.Context, id string) client.Result[struct{}]
	submitFn       func(ctx context.Context, id string) client.Result[struct{}]
	participantsFn func(ctx context.Context, id string) client.Result[[]domain.Participant]
	checkInFn      func(ctx context.Context, id string, payload request.CheckInPayload) client.Result[struct{}]
}

func (f *fakeOrganizerAPI) MyEvents(ctx context.Context) client.Result[[]domain.Event] {
	if f.myEventsFn == nil {
		return client.Result[[]domain.Event]{Success: true, Data: myEvents()}
	}
	return f.myEventsFn(ctx)
}

func (f *fakeOrganizerAPI) Create(ctx context.Context, payload request.CreateEventPayload) client.Result[domain.Event] {
	return f.createFn(ctx, payload)
}

func (f *fakeOrganizerAPI) Update(ctx context.Context, id string, payload request.CreateEventPayload) client.Result[domain.Event] {
	return f.updateFn(ctx, id, payload)
}

func (f *fakeOrganizerAPI) Delete(ctx context.Context, id string) client.Result[struct{}] {
	return f.deleteFn(ctx, id)
}

func (f *fakeOrganizerAPI) Submit(ctx context.Context, id string) client.Result[struct{}] {
	return f.submitFn(ctx, id)
}

func (f *fakeOrganizerAPI) Participants(ctx context.Context, id string) client.Result[[]domain.Participant] {
	return f.participantsFn(ctx, id)
}

func (f *fakeOrganizerAPI) CheckIn(ctx context.Context, id string, payload request.CheckInPayload) client.Result[struct{}] {
	return f.checkInFn(ctx, id, payload)
}

type memDraftStore struct {
	drafts map[string]json.RawMessage
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[string]json.RawMessage)}
}

func (s *memDraftStore) SaveDraft(userID string, draft json.RawMessage) error {
	s.drafts[userID] = draft
	return nil
}

func (s *memDraftStore) LoadDraft(userID string) (json.RawMessage, error) {
	return s.drafts[userID], nil
}

func (s *memDraftStore) ClearDraft(userID string) error {
	delete(s.drafts, userID)
	return nil
}

func myEvents() []domain.Event {
	return []domain.Event{
		{ID: "ev1", Title: "Atelier de programare Go", Status: domain.EventDraft},
		{ID: "ev2", Title: "Sesiune de mentorat", Status: domain.EventApproved},
	}
}

func organizerPayload() request.CreateEventPayload {
	return request.CreateEventPayload{
		Title:       "Atelier de programare Go",
		Description: "Introducere practică în Go.",
		Type:        "workshop",
		StartDate:   "2026-10-01T10:00:00Z",
		EndDate:     "2026-10-01T14:00:00Z",
		Location:    "Corp C, sala C201",
	}
}

func newOrganizerDashboard(t *testing.T, api *fakeOrganizerAPI, drafts *memDraftStore) *OrganizerDashboard {
	t.Helper()

	d := NewOrganizerDashboard(api, nil, drafts, "u1")
	out := d.Refresh(context.Background())
	require.True(t, out.OK)
	return d
}

func TestOrganizerDashboard_SaveEventCreates(t *testing.T) {
	var created bool
	api := &fakeOrganizerAPI{
		createFn: func(ctx context.Context, payload request.CreateEventPayload) client.Result[domain.Event] {
			created = true
			return client.Result[domain.Event]{Success: true, Data: domain.Event{ID: "ev3", Status: domain.EventDraft}}
		},
	}
	drafts := newMemDraftStore()
	drafts.drafts["u1"] = []byte(`{"title":"draft vechi"}`)
	d := newOrganizerDashboard(t, api, drafts)

	out := d.SaveEvent(context.Background(), organizerPayload())

	require.True(t, out.OK)
	assert.True(t, created)
	// The stored draft is consumed by a successful save.
	assert.Empty(t, drafts.drafts)
}

func TestOrganizerDashboard_SaveEventUpdatesWhileEditing(t *testing.T) {
	var updatedID string
	api := &fakeOrganizerAPI{
		updateFn: func(ctx context.Context, id string, payload request.CreateEventPayload) client.Result[domain.Event] {
			updatedID = id
			return client.Result[domain.Event]{Success: true, Data: domain.Event{ID: id, Status: domain.EventDraft}}
		},
	}
	d := newOrganizerDashboard(t, api, newMemDraftStore())

	d.StartEditing("ev2")
	out := d.SaveEvent(context.Background(), organizerPayload())

	require.True(t, out.OK)
	assert.Equal(t, "ev2", updatedID)

	// Editing mode ends with the save; the next save creates.
	draft, err := d.RestoreDraft()
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestOrganizerDashboard_SaveEventValidationFailsLocally(t *testing.T) {
	d := newOrganizerDashboard(t, &fakeOrganizerAPI{}, newMemDraftStore())

	payload := organizerPayload()
	payload.Title = ""
	out := d.SaveEvent(context.Background(), payload)

	assert.False(t, out.OK)
	assert.NotEmpty(t, out.Message)
}

func TestOrganizerDashboard_SaveEventAppendsFieldErrors(t *testing.T) {
	api := &fakeOrganizerAPI{
		createFn: func(ctx context.Context, payload request.CreateEventPayload) client.Result[domain.Event] {
			return client.Result[domain.Event]{
				Success: false,
				Message: "Validare eșuată",
				Errors:  map[string][]string{"startDate": {"dată în trecut"}},
			}
		},
	}
	d := newOrganizerDashboard(t, api, newMemDraftStore())

	out := d.SaveEvent(context.Background(), organizerPayload())

	assert.False(t, out.OK)
	assert.Contains(t, out.Message, "Validare eșuată")
	assert.Contains(t, out.Message, "startDate: dată în trecut")
}

func TestOrganizerDashboard_DeleteRefetchesOnRefusal(t *testing.T) {
	api := &fakeOrganizerAPI{
		deleteFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: false, Message: "Eroare la ștergerea evenimentului."}
		},
	}
	d := newOrganizerDashboard(t, api, newMemDraftStore())

	out := d.Delete(context.Background(), "ev1")

	assert.False(t, out.OK)
	// The authoritative list came back via refetch.
	assert.Len(t, d.Events(), 2)
}

func TestOrganizerDashboard_DeleteRemovesOptimistically(t *testing.T) {
	api := &fakeOrganizerAPI{
		deleteFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newOrganizerDashboard(t, api, newMemDraftStore())

	out := d.Delete(context.Background(), "ev1")

	require.True(t, out.OK)
	events := d.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "ev2", events[0].ID)
}

func TestOrganizerDashboard_SubmitShowsPendingImmediately(t *testing.T) {
	api := &fakeOrganizerAPI{
		submitFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newOrganizerDashboard(t, api, newMemDraftStore())

	out := d.SubmitForReview(context.Background(), "ev1")

	require.True(t, out.OK)
	assert.Equal(t, domain.EventPending, d.Events()[0].Status)
}

func TestOrganizerDashboard_RestoreDraftSuppressedWhileEditing(t *testing.T) {
	drafts := newMemDraftStore()
	drafts.drafts["u1"] = []byte(`{"title":"formular neterminat"}`)
	d := newOrganizerDashboard(t, &fakeOrganizerAPI{}, drafts)

	draft, err := d.RestoreDraft()
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"formular neterminat"}`, string(draft))

	d.StartEditing("ev1")
	draft, err = d.RestoreDraft()
	require.NoError(t, err)
	assert.Nil(t, draft)

	d.StopEditing()
	draft, err = d.RestoreDraft()
	require.NoError(t, err)
	assert.NotNil(t, draft)
}

func TestOrganizerDashboard_CheckInValidatesTicket(t *testing.T) {
	var called bool
	api := &fakeOrganizerAPI{
		checkInFn: func(ctx context.Context, id string, payload request.CheckInPayload) client.Result[struct{}] {
			called = true
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newOrganizerDashboard(t, api, newMemDraftStore())

	out := d.CheckIn(context.Background(), "ev2", "")
	assert.False(t, out.OK)
	assert.False(t, called)

	out = d.CheckIn(context.Background(), "ev2", "USV-2026-0042")
	assert.True(t, out.OK)
	assert.True(t, called)
}
