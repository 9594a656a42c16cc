package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/optimistic"
)

type StudentTab string

const (
	TabAll        StudentTab = "all"
	TabRegistered StudentTab = "registered"
	TabFavorites  StudentTab = "favorites"
)

const bannerTTL = 5 * time.Second

// StudentEventsAPI is what the student dashboard needs from the events client.
type StudentEventsAPI interface {
	List(ctx context.Context, status domain.EventStatus) client.Result[[]domain.Event]
	Favorites(ctx context.Context) client.Result[[]domain.Event]
	MyRegistrations(ctx context.Context) client.Result[[]domain.Participant]
	Register(ctx context.Context, id string) client.Result[struct{}]
	CancelRegistration(ctx context.Context, id string) client.Result[struct{}]
	Favorite(ctx context.Context, id string) client.Result[struct{}]
	Unfavorite(ctx context.Context, id string) client.Result[struct{}]
}

// StudentDashboard holds the student view state: the event list for the
// active tab, the registration and favorite id sets, and a transient error
// banner. Mutations follow the optimistic discipline; the server stays the
// source of truth for counters.
type StudentDashboard struct {
	api   StudentEventsAPI
	guard *optimistic.Guard

	mu         sync.Mutex
	tab        StudentTab
	events     []domain.Event
	registered map[string]struct{}
	favorites  map[string]struct{}
	banner     string
	bannerAt   time.Time
}

func NewStudentDashboard(api StudentEventsAPI) *StudentDashboard {
	return &StudentDashboard{
		api:        api,
		guard:      optimistic.NewGuard(),
		tab:        TabAll,
		registered: make(map[string]struct{}),
		favorites:  make(map[string]struct{}),
	}
}

// Refresh reloads the active tab's events plus the registration and
// favorite sets from the server.
func (d *StudentDashboard) Refresh(ctx context.Context) optimistic.Outcome {
	regs := d.api.MyRegistrations(ctx)
	if regs.Success {
		registered := make(map[string]struct{})
		for _, p := range regs.Data {
			if p.Status != domain.RegistrationCancelled {
				registered[p.EventID] = struct{}{}
			}
		}
		d.mu.Lock()
		d.registered = registered
		d.mu.Unlock()
	}

	favs := d.api.Favorites(ctx)
	if favs.Success {
		favorites := make(map[string]struct{})
		for _, e := range favs.Data {
			favorites[e.ID] = struct{}{}
		}
		d.mu.Lock()
		d.favorites = favorites
		d.mu.Unlock()
	}

	return d.refreshEvents(ctx)
}

func (d *StudentDashboard) refreshEvents(ctx context.Context) optimistic.Outcome {
	d.mu.Lock()
	tab := d.tab
	d.mu.Unlock()

	var events []domain.Event
	switch tab {
	case TabFavorites:
		res := d.api.Favorites(ctx)
		if !res.Success {
			return optimistic.Outcome{OK: false, Message: res.Message}
		}
		events = res.Data
	case TabRegistered:
		res := d.api.List(ctx, domain.EventApproved)
		if !res.Success {
			return optimistic.Outcome{OK: false, Message: res.Message}
		}
		d.mu.Lock()
		for _, e := range res.Data {
			if _, ok := d.registered[e.ID]; ok {
				events = append(events, e)
			}
		}
		d.mu.Unlock()
		if events == nil {
			events = []domain.Event{}
		}
	default:
		res := d.api.List(ctx, domain.EventApproved)
		if !res.Success {
			return optimistic.Outcome{OK: false, Message: res.Message}
		}
		events = res.Data
	}

	d.mu.Lock()
	d.events = events
	d.mu.Unlock()
	return optimistic.Outcome{OK: true}
}

func (d *StudentDashboard) SelectTab(ctx context.Context, tab StudentTab) optimistic.Outcome {
	d.mu.Lock()
	d.tab = tab
	d.mu.Unlock()
	return d.refreshEvents(ctx)
}

// Register signs the current user up for an event. The registration set and
// the displayed participant counter move immediately and are restored if
// the server refuses (for example when the event filled up concurrently).
func (d *StudentDashboard) Register(ctx context.Context, eventID string) optimistic.Outcome {
	if !d.guard.TryAcquire(eventID) {
		return optimistic.Outcome{OK: false}
	}
	defer d.guard.Release(eventID)

	prevCount, found := d.participantCount(eventID)

	out := optimistic.Do(ctx,
		func() {
			d.mu.Lock()
			d.registered[eventID] = struct{}{}
			d.mu.Unlock()
			if found {
				d.setParticipantCount(eventID, prevCount+1)
			}
		},
		func(ctx context.Context) optimistic.Outcome {
			res := d.api.Register(ctx, eventID)
			return optimistic.Outcome{OK: res.Success, Message: res.Message}
		},
		func() {
			d.mu.Lock()
			delete(d.registered, eventID)
			d.mu.Unlock()
			if found {
				d.setParticipantCount(eventID, prevCount)
			}
		},
	)

	if !out.OK && out.Message != "" {
		d.setBanner(out.Message)
	}
	return out
}

// CancelRegistration is called after the user has confirmed giving up the
// spot. An "already cancelled" answer from the server counts as success and
// raises no banner.
func (d *StudentDashboard) CancelRegistration(ctx context.Context, eventID string) optimistic.Outcome {
	if !d.guard.TryAcquire(eventID) {
		return optimistic.Outcome{OK: false}
	}
	defer d.guard.Release(eventID)

	prevCount, found := d.participantCount(eventID)
	d.mu.Lock()
	_, wasRegistered := d.registered[eventID]
	onRegisteredTab := d.tab == TabRegistered
	prevEvents := d.events
	d.mu.Unlock()

	out := optimistic.Do(ctx,
		func() {
			d.mu.Lock()
			delete(d.registered, eventID)
			if onRegisteredTab {
				kept := make([]domain.Event, 0, len(d.events))
				for _, e := range d.events {
					if e.ID != eventID {
						kept = append(kept, e)
					}
				}
				d.events = kept
			}
			d.mu.Unlock()
			if found {
				next := prevCount - 1
				if next < 0 {
					next = 0
				}
				d.setParticipantCount(eventID, next)
			}
		},
		func(ctx context.Context) optimistic.Outcome {
			res := d.api.CancelRegistration(ctx, eventID)
			return optimistic.Outcome{OK: res.Success, Message: res.Message}
		},
		func() {
			d.mu.Lock()
			if wasRegistered {
				d.registered[eventID] = struct{}{}
			}
			if onRegisteredTab {
				d.events = prevEvents
			}
			d.mu.Unlock()
			if found {
				d.setParticipantCount(eventID, prevCount)
			}
		},
	)

	if !out.OK && out.Message != "" {
		d.setBanner(out.Message)
	}
	return out
}

// ToggleFavorite flips the favorite marker. A failed call must not flip the
// displayed state, so the flip is reverted on failure.
func (d *StudentDashboard) ToggleFavorite(ctx context.Context, eventID string) optimistic.Outcome {
	d.mu.Lock()
	_, wasFavorite := d.favorites[eventID]
	onFavoritesTab := d.tab == TabFavorites
	prevEvents := d.events
	d.mu.Unlock()

	return optimistic.Do(ctx,
		func() {
			d.mu.Lock()
			if wasFavorite {
				delete(d.favorites, eventID)
				if onFavoritesTab {
					kept := make([]domain.Event, 0, len(d.events))
					for _, e := range d.events {
						if e.ID != eventID {
							kept = append(kept, e)
						}
					}
					d.events = kept
				}
			} else {
				d.favorites[eventID] = struct{}{}
			}
			d.mu.Unlock()
		},
		func(ctx context.Context) optimistic.Outcome {
			var res client.Result[struct{}]
			if wasFavorite {
				res = d.api.Unfavorite(ctx, eventID)
			} else {
				res = d.api.Favorite(ctx, eventID)
			}
			return optimistic.Outcome{OK: res.Success, Message: res.Message}
		},
		func() {
			d.mu.Lock()
			if wasFavorite {
				d.favorites[eventID] = struct{}{}
				if onFavoritesTab {
					d.events = prevEvents
				}
			} else {
				delete(d.favorites, eventID)
			}
			d.mu.Unlock()
		},
	)
}

func (d *StudentDashboard) participantCount(eventID string) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.events {
		if e.ID == eventID {
			return e.CurrentParticipants, true
		}
	}
	return 0, false
}

func (d *StudentDashboard) setParticipantCount(eventID string, count int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.events {
		if d.events[i].ID == eventID {
			d.events[i].CurrentParticipants = count
			return
		}
	}
}

func (d *StudentDashboard) setBanner(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.banner = msg
	d.bannerAt = time.Now()
}

// Banner returns the current transient error message; it auto-dismisses
// after a few seconds.
func (d *StudentDashboard) Banner() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.banner == "" || time.Since(d.bannerAt) > bannerTTL {
		return ""
	}
	return d.banner
}

func (d *StudentDashboard) Events() []domain.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Event, len(d.events))
	copy(out, d.events)
	return out
}

func (d *StudentDashboard) IsRegistered(eventID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.registered[eventID]
	return ok
}

func (d *StudentDashboard) IsFavorite(eventID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.favorites[eventID]
	return ok
}

// Processing reports whether an action for the event is in flight, for
// per-item spinners and control disabling.
func (d *StudentDashboard) Processing(eventID string) bool {
	return d.guard.Busy(eventID)
}
