package dashboard

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/optimistic"
	"go.uber.org/zap"
)

// OrganizerEventsAPI is what the organizer dashboard needs from the events
// and files clients.
type OrganizerEventsAPI interface {
	MyEvents(ctx context.Context) client.Result[[]domain.Event]
	Create(ctx context.Context, payload request.CreateEventPayload) client.Result[domain.Event]
	Update(ctx context.Context, id string, payload request.CreateEventPayload) client.Result[domain.Event]
	Delete(ctx context.Context, id string) client.Result[struct{}]
	Submit(ctx context.Context, id string) client.Result[struct{}]
	Participants(ctx context.Context, id string) client.Result[[]domain.Participant]
	CheckIn(ctx context.Context, id string, payload request.CheckInPayload) client.Result[struct{}]
}

type MaterialsAPI interface {
	EventMaterials(ctx context.Context, eventID string) client.Result[[]domain.EventMaterial]
	Upload(ctx context.Context, payload request.CreateMaterialPayload) client.Result[struct{}]
	DownloadLink(ctx context.Context, id string) client.Result[client.DownloadLink]
}

// DraftStore persists the event form between visits.
type DraftStore interface {
	SaveDraft(userID string, draft json.RawMessage) error
	LoadDraft(userID string) (json.RawMessage, error)
	ClearDraft(userID string) error
}

// OrganizerDashboard manages the organizer's own events: editing (which
// resets the server-side status to draft), submission for review, the
// participant list with check-in, and event materials.
type OrganizerDashboard struct {
	api       OrganizerEventsAPI
	materials MaterialsAPI
	drafts    DraftStore
	userID    string
	guard     *optimistic.Guard

	mu        sync.Mutex
	events    []domain.Event
	editingID string
}

func NewOrganizerDashboard(api OrganizerEventsAPI, materials MaterialsAPI, drafts DraftStore, userID string) *OrganizerDashboard {
	return &OrganizerDashboard{
		api:       api,
		materials: materials,
		drafts:    drafts,
		userID:    userID,
		guard:     optimistic.NewGuard(),
	}
}

func (d *OrganizerDashboard) Refresh(ctx context.Context) optimistic.Outcome {
	res := d.api.MyEvents(ctx)
	if !res.Success {
		return optimistic.Outcome{OK: false, Message: res.Message}
	}

	d.mu.Lock()
	d.events = res.Data
	d.mu.Unlock()
	return optimistic.Outcome{OK: true}
}

func (d *OrganizerDashboard) Events() []domain.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Event, len(d.events))
	copy(out, d.events)
	return out
}

// StartEditing marks an existing event as the form target. While editing,
// RestoreDraft is suppressed so the stored draft cannot clobber the form.
func (d *OrganizerDashboard) StartEditing(eventID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editingID = eventID
}

func (d *OrganizerDashboard) StopEditing() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editingID = ""
}

// SaveEvent validates and creates or updates the event. An update makes the
// server reset the status to draft; the refreshed list reflects that, the
// client never computes the transition itself. The stored draft is cleared
// on success.
func (d *OrganizerDashboard) SaveEvent(ctx context.Context, payload request.CreateEventPayload) optimistic.Outcome {
	if err := payload.Validate(); err != nil {
		return optimistic.Outcome{OK: false, Message: err.Error()}
	}

	d.mu.Lock()
	editID := d.editingID
	d.mu.Unlock()

	var res client.Result[domain.Event]
	if editID != "" {
		res = d.api.Update(ctx, editID, payload)
	} else {
		res = d.api.Create(ctx, payload)
	}

	if !res.Success {
		msg := res.Message
		if fieldErrs := res.FieldErrors(); fieldErrs != "" {
			msg = msg + " (" + fieldErrs + ")"
		}
		return optimistic.Outcome{OK: false, Message: msg}
	}

	if err := d.drafts.ClearDraft(d.userID); err != nil {
		zap.L().Warn("failed to clear event draft", zap.Error(err))
	}
	d.StopEditing()
	return d.Refresh(ctx)
}

// Delete removes the event optimistically; the authoritative list is
// refetched when the server refuses, never patched item by item.
func (d *OrganizerDashboard) Delete(ctx context.Context, eventID string) optimistic.Outcome {
	if !d.guard.TryAcquire(eventID) {
		return optimistic.Outcome{OK: false}
	}
	defer d.guard.Release(eventID)

	return optimistic.Do(ctx,
		func() { d.removeEvent(eventID) },
		func(ctx context.Context) optimistic.Outcome {
			res := d.api.Delete(ctx, eventID)
			return optimistic.Outcome{OK: res.Success, Message: res.Message}
		},
		func() { d.Refresh(ctx) },
	)
}

// SubmitForReview requests the draft/rejected -> pending transition and
// shows it immediately, falling back to a refetch when refused.
func (d *OrganizerDashboard) SubmitForReview(ctx context.Context, eventID string) optimistic.Outcome {
	if !d.guard.TryAcquire(eventID) {
		return optimistic.Outcome{OK: false}
	}
	defer d.guard.Release(eventID)

	return optimistic.Do(ctx,
		func() { d.setStatus(eventID, domain.EventPending) },
		func(ctx context.Context) optimistic.Outcome {
			res := d.api.Submit(ctx, eventID)
			return optimistic.Outcome{OK: res.Success, Message: res.Message}
		},
		func() { d.Refresh(ctx) },
	)
}

func (d *OrganizerDashboard) Participants(ctx context.Context, eventID string) client.Result[[]domain.Participant] {
	return d.api.Participants(ctx, eventID)
}

func (d *OrganizerDashboard) CheckIn(ctx context.Context, eventID, ticketNumber string) optimistic.Outcome {
	payload := request.CheckInPayload{TicketNumber: ticketNumber}
	if err := payload.Validate(); err != nil {
		return optimistic.Outcome{OK: false, Message: err.Error()}
	}

	res := d.api.CheckIn(ctx, eventID, payload)
	return optimistic.Outcome{OK: res.Success, Message: res.Message}
}

func (d *OrganizerDashboard) Materials(ctx context.Context, eventID string) client.Result[[]domain.EventMaterial] {
	return d.materials.EventMaterials(ctx, eventID)
}

// MaterialLink fetches a short-lived download URL; the server counts the
// download.
func (d *OrganizerDashboard) MaterialLink(ctx context.Context, materialID string) client.Result[client.DownloadLink] {
	return d.materials.DownloadLink(ctx, materialID)
}

func (d *OrganizerDashboard) UploadMaterial(ctx context.Context, payload request.CreateMaterialPayload) optimistic.Outcome {
	if err := payload.Validate(); err != nil {
		return optimistic.Outcome{OK: false, Message: err.Error()}
	}

	res := d.materials.Upload(ctx, payload)
	return optimistic.Outcome{OK: res.Success, Message: res.Message}
}

// AutosaveDraft stores the serialized event form.
func (d *OrganizerDashboard) AutosaveDraft(draft json.RawMessage) error {
	return d.drafts.SaveDraft(d.userID, draft)
}

// RestoreDraft returns the stored form, or nil while an existing event is
// being edited or when nothing was saved.
func (d *OrganizerDashboard) RestoreDraft() (json.RawMessage, error) {
	d.mu.Lock()
	editing := d.editingID != ""
	d.mu.Unlock()

	if editing {
		return nil, nil
	}
	return d.drafts.LoadDraft(d.userID)
}

func (d *OrganizerDashboard) DiscardDraft() error {
	return d.drafts.ClearDraft(d.userID)
}

func (d *OrganizerDashboard) Processing(eventID string) bool {
	return d.guard.Busy(eventID)
}

func (d *OrganizerDashboard) removeEvent(eventID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := make([]domain.Event, 0, len(d.events))
	for _, e := range d.events {
		if e.ID != eventID {
			kept = append(kept, e)
		}
	}
	d.events = kept
}

func (d *OrganizerDashboard) setStatus(eventID string, status domain.EventStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.events {
		if d.events[i].ID == eventID {
			d.events[i].Status = status
			return
		}
	}
}
