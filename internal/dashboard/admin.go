package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/optimistic"
)

// AdminEventsAPI covers the admin review workflow.
type AdminEventsAPI interface {
	List(ctx context.Context, status domain.EventStatus) client.Result[[]domain.Event]
	Review(ctx context.Context, id string, payload request.ReviewEventPayload) client.Result[struct{}]
}

type AdminUsersAPI interface {
	List(ctx context.Context, query request.ListUsersQuery) client.Result[[]domain.User]
	UpdateRole(ctx context.Context, userID string, payload request.UpdateRolePayload) client.Result[struct{}]
}

type AdminFacultiesAPI interface {
	List(ctx context.Context) client.Result[[]domain.Faculty]
	Create(ctx context.Context, payload request.CreateFacultyPayload) client.Result[domain.Faculty]
	Update(ctx context.Context, id string, payload request.CreateFacultyPayload) client.Result[domain.Faculty]
	Delete(ctx context.Context, id string) client.Result[struct{}]
	CreateDepartment(ctx context.Context, payload request.CreateDepartmentPayload) client.Result[domain.Department]
}

// AdminDashboard manages the review queue (approve/reject with optimistic
// removal and a refetch-based revert), the paginated user search with role
// assignment, and the faculty/department structure.
type AdminDashboard struct {
	events    AdminEventsAPI
	users     AdminUsersAPI
	faculties AdminFacultiesAPI
	guard     *optimistic.Guard

	searchDebounce *optimistic.Debouncer
	searchGate     *optimistic.Gate

	mu          sync.Mutex
	pending     []domain.Event
	userList    []domain.User
	userPages   *domain.PaginationMeta
	userSearch  string
	facultyList []domain.Faculty
}

func NewAdminDashboard(events AdminEventsAPI, users AdminUsersAPI, faculties AdminFacultiesAPI, searchDebounce time.Duration) *AdminDashboard {
	if searchDebounce <= 0 {
		searchDebounce = 500 * time.Millisecond
	}
	return &AdminDashboard{
		events:         events,
		users:          users,
		faculties:      faculties,
		guard:          optimistic.NewGuard(),
		searchDebounce: optimistic.NewDebouncer(searchDebounce),
		searchGate:     optimistic.NewGate(),
	}
}

// Close releases the timers owned by the dashboard. Must be called on view
// teardown.
func (d *AdminDashboard) Close() {
	d.searchDebounce.Stop()
}

// RefreshPending reloads the authoritative review queue.
func (d *AdminDashboard) RefreshPending(ctx context.Context) optimistic.Outcome {
	res := d.events.List(ctx, domain.EventPending)
	if !res.Success {
		return optimistic.Outcome{OK: false, Message: res.Message}
	}

	d.mu.Lock()
	d.pending = res.Data
	d.mu.Unlock()
	return optimistic.Outcome{OK: true}
}

func (d *AdminDashboard) PendingEvents() []domain.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Event, len(d.pending))
	copy(out, d.pending)
	return out
}

// Approve removes the event from the pending queue immediately. On refusal
// the full queue is refetched rather than reinserting one item, which would
// risk ordering and staleness bugs.
func (d *AdminDashboard) Approve(ctx context.Context, eventID string) optimistic.Outcome {
	return d.review(ctx, eventID, request.ReviewEventPayload{Status: "approved"})
}

// Reject requires a reason; the confirmation step happens in the UI before
// this is called.
func (d *AdminDashboard) Reject(ctx context.Context, eventID, reason string) optimistic.Outcome {
	return d.review(ctx, eventID, request.ReviewEventPayload{Status: "rejected", RejectionReason: reason})
}

func (d *AdminDashboard) review(ctx context.Context, eventID string, payload request.ReviewEventPayload) optimistic.Outcome {
	if err := payload.Validate(); err != nil {
		return optimistic.Outcome{OK: false, Message: err.Error()}
	}

	if !d.guard.TryAcquire(eventID) {
		return optimistic.Outcome{OK: false}
	}
	defer d.guard.Release(eventID)

	return optimistic.Do(ctx,
		func() { d.removePending(eventID) },
		func(ctx context.Context) optimistic.Outcome {
			res := d.events.Review(ctx, eventID, payload)
			return optimistic.Outcome{OK: res.Success, Message: res.Message}
		},
		func() { d.RefreshPending(ctx) },
	)
}

func (d *AdminDashboard) removePending(eventID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := make([]domain.Event, 0, len(d.pending))
	for _, e := range d.pending {
		if e.ID != eventID {
			kept = append(kept, e)
		}
	}
	d.pending = kept
}

// SetUserSearch debounces the query, and the sequence gate makes sure a
// late response from a superseded query can never overwrite newer results.
func (d *AdminDashboard) SetUserSearch(ctx context.Context, query string) {
	d.mu.Lock()
	d.userSearch = query
	d.mu.Unlock()

	d.searchDebounce.Trigger(func() {
		d.FetchUsersPage(ctx, 1)
	})
}

func (d *AdminDashboard) FetchUsersPage(ctx context.Context, page int) optimistic.Outcome {
	d.mu.Lock()
	search := d.userSearch
	d.mu.Unlock()

	ticket := d.searchGate.Next()
	res := d.users.List(ctx, request.ListUsersQuery{Page: page, Limit: 10, Search: search})
	if !d.searchGate.Accept(ticket) {
		return optimistic.Outcome{OK: true}
	}
	if !res.Success {
		return optimistic.Outcome{OK: false, Message: res.Message}
	}

	d.mu.Lock()
	d.userList = res.Data
	d.userPages = res.Pagination
	d.mu.Unlock()
	return optimistic.Outcome{OK: true}
}

func (d *AdminDashboard) Users() ([]domain.User, *domain.PaginationMeta) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.User, len(d.userList))
	copy(out, d.userList)
	return out, d.userPages
}

func (d *AdminDashboard) UpdateUserRole(ctx context.Context, userID, role string) optimistic.Outcome {
	payload := request.UpdateRolePayload{Role: role}
	if err := payload.Validate(); err != nil {
		return optimistic.Outcome{OK: false, Message: err.Error()}
	}

	res := d.users.UpdateRole(ctx, userID, payload)
	return optimistic.Outcome{OK: res.Success, Message: res.Message}
}

func (d *AdminDashboard) RefreshFaculties(ctx context.Context) optimistic.Outcome {
	res := d.faculties.List(ctx)
	if !res.Success {
		return optimistic.Outcome{OK: false, Message: res.Message}
	}

	d.mu.Lock()
	d.facultyList = res.Data
	d.mu.Unlock()
	return optimistic.Outcome{OK: true}
}

func (d *AdminDashboard) Faculties() []domain.Faculty {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Faculty, len(d.facultyList))
	copy(out, d.facultyList)
	return out
}

func (d *AdminDashboard) SaveFaculty(ctx context.Context, id string, payload request.CreateFacultyPayload) optimistic.Outcome {
	if err := payload.Validate(); err != nil {
		return optimistic.Outcome{OK: false, Message: err.Error()}
	}

	var res client.Result[domain.Faculty]
	if id != "" {
		res = d.faculties.Update(ctx, id, payload)
	} else {
		res = d.faculties.Create(ctx, payload)
	}
	if !res.Success {
		return optimistic.Outcome{OK: false, Message: res.Message}
	}
	return d.RefreshFaculties(ctx)
}

// DeleteFaculty is called post-confirmation, like every destructive action.
func (d *AdminDashboard) DeleteFaculty(ctx context.Context, id string) optimistic.Outcome {
	res := d.faculties.Delete(ctx, id)
	if !res.Success {
		return optimistic.Outcome{OK: false, Message: res.Message}
	}
	return d.RefreshFaculties(ctx)
}

func (d *AdminDashboard) AddDepartment(ctx context.Context, payload request.CreateDepartmentPayload) optimistic.Outcome {
	if err := payload.Validate(); err != nil {
		return optimistic.Outcome{OK: false, Message: err.Error()}
	}

	res := d.faculties.CreateDepartment(ctx, payload)
	if !res.Success {
		return optimistic.Outcome{OK: false, Message: res.Message}
	}
	return d.RefreshFaculties(ctx)
}

func (d *AdminDashboard) Processing(eventID string) bool {
	return d.guard.Busy(eventID)
}
