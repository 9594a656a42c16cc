package dashboard

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
)

type fakeAdminEventsAPI struct {
	listFn   func(ctx context.Context, status domain.EventStatus) client.Result[[]domain.Event]
	reviewFn func(ctx context.Context, id string, payload request.ReviewEventPayload) client.Result[struct{}]
}

func (f *fakeAdminEventsAPI) List(ctx context.Context, status domain.EventStatus) client.Result[[]domain.Event] {
	if f.listFn == nil {
		return client.Result[[]domain.Event]{Success: true, Data: pendingEvents()}
	}
	return f.listFn(ctx, status)
}

func (f *fakeAdminEventsAPI) Review(ctx context.Context, id string, payload request.ReviewEventPayload) client.Result[struct{}] {
	return f.reviewFn(ctx, id, payload)
}

type fakeAdminUsersAPI struct {
	listFn       func(ctx context.Context, query request.ListUsersQuery) client.Result[[]domain.User]
	updateRoleFn func(ctx context.Context, userID string, payload request.UpdateRolePayload) client.Result[struct{}]
}

func (f *fakeAdminUsersAPI) List(ctx context.Context, query request.ListUsersQuery) client.Result[[]domain.User] {
	return f.listFn(ctx, query)
}

func (f *fakeAdminUsersAPI) UpdateRole(ctx context.Context, userID string, payload request.UpdateRolePayload) client.Result[struct{}] {
	return f.updateRoleFn(ctx, userID, payload)
}

type fakeFacultiesAPI struct {
	listFn             func(ctx context.Context) client.Result[[]domain.Faculty]
	createFn           func(ctx context.Context, payload request.CreateFacultyPayload) client.Result[domain.Faculty]
	updateFn           func(ctx context.Context, id string, payload request.CreateFacultyPayload) client.Result[domain.Faculty]
	deleteFn           func(ctx context.Context, id string) client.Result[struct{}]
	createDepartmentFn func(ctx context.Context, payload request.CreateDepartmentPayload) client.Result[domain.Department]
}

func (f *fakeFacultiesAPI) List(ctx context.Context) client.Result[[]domain.Faculty] {
	if f.listFn == nil {
		return client.Result[[]domain.Faculty]{Success: true, Data: []domain.Faculty{}}
	}
	return f.listFn(ctx)
}

func (f *fakeFacultiesAPI) Create(ctx context.Context, payload request.CreateFacultyPayload) client.Result[domain.Faculty] {
	return f.createFn(ctx, payload)
}

func (f *fakeFacultiesAPI) Update(ctx context.Context, id string, payload request.CreateFacultyPayload) client.Result[domain.Faculty] {
	return f.updateFn(ctx, id, payload)
}

func (f *fakeFacultiesAPI) Delete(ctx context.Context, id string) client.Result[struct{}] {
	return f.deleteFn(ctx, id)
}

func (f *fakeFacultiesAPI) CreateDepartment(ctx context.Context, payload request.CreateDepartmentPayload) client.Result[domain.Department] {
	return f.createDepartmentFn(ctx, payload)
}

func pendingEvents() []domain.Event {
	return []domain.Event{
		{ID: "ev1", Title: "Balul Bobocilor", Status: domain.EventPending},
		{ID: "ev2", Title: "Atelier Go", Status: domain.EventPending},
	}
}

func newAdminDashboard(t *testing.T, events *fakeAdminEventsAPI, users *fakeAdminUsersAPI, faculties *fakeFacultiesAPI) *AdminDashboard {
	t.Helper()

	d := NewAdminDashboard(events, users, faculties, 10*time.Millisecond)
	t.Cleanup(d.Close)

	out := d.RefreshPending(context.Background())
	require.True(t, out.OK)
	return d
}

func TestAdminDashboard_ApproveRemovesFromQueue(t *testing.T) {
	var reviewed request.ReviewEventPayload
	events := &fakeAdminEventsAPI{
		reviewFn: func(ctx context.Context, id string, payload request.ReviewEventPayload) client.Result[struct{}] {
			reviewed = payload
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newAdminDashboard(t, events, &fakeAdminUsersAPI{}, &fakeFacultiesAPI{})

	out := d.Approve(context.Background(), "ev1")

	require.True(t, out.OK)
	assert.Equal(t, "approved", reviewed.Status)
	pending := d.PendingEvents()
	require.Len(t, pending, 1)
	assert.Equal(t, "ev2", pending[0].ID)
}

func TestAdminDashboard_ApproveRefusalRestoresViaRefetch(t *testing.T) {
	events := &fakeAdminEventsAPI{
		reviewFn: func(ctx context.Context, id string, payload request.ReviewEventPayload) client.Result[struct{}] {
			return client.Result[struct{}]{Success: false, Message: "Eroare la validarea evenimentului."}
		},
	}
	d := newAdminDashboard(t, events, &fakeAdminUsersAPI{}, &fakeFacultiesAPI{})

	out := d.Approve(context.Background(), "ev1")

	assert.False(t, out.OK)
	assert.Len(t, d.PendingEvents(), 2)
}

func TestAdminDashboard_RejectRequiresReason(t *testing.T) {
	var called bool
	events := &fakeAdminEventsAPI{
		reviewFn: func(ctx context.Context, id string, payload request.ReviewEventPayload) client.Result[struct{}] {
			called = true
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newAdminDashboard(t, events, &fakeAdminUsersAPI{}, &fakeFacultiesAPI{})

	out := d.Reject(context.Background(), "ev1", "")

	assert.False(t, out.OK)
	assert.False(t, called)
	assert.Len(t, d.PendingEvents(), 2)
}

func TestAdminDashboard_RejectWithReason(t *testing.T) {
	var reviewed request.ReviewEventPayload
	events := &fakeAdminEventsAPI{
		reviewFn: func(ctx context.Context, id string, payload request.ReviewEventPayload) client.Result[struct{}] {
			reviewed = payload
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newAdminDashboard(t, events, &fakeAdminUsersAPI{}, &fakeFacultiesAPI{})

	out := d.Reject(context.Background(), "ev2", "Lipsesc detaliile despre locație")

	require.True(t, out.OK)
	assert.Equal(t, "rejected", reviewed.Status)
	assert.Equal(t, "Lipsesc detaliile despre locație", reviewed.RejectionReason)
}

func TestAdminDashboard_SearchLatestWins(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	var calls atomic.Int32
	users := &fakeAdminUsersAPI{
		listFn: func(ctx context.Context, query request.ListUsersQuery) client.Result[[]domain.User] {
			if calls.Add(1) == 1 {
				close(firstStarted)
				<-releaseFirst
				return client.Result[[]domain.User]{Success: true, Data: []domain.User{{ID: "stale"}}}
			}
			return client.Result[[]domain.User]{Success: true, Data: []domain.User{{ID: "fresh"}}}
		},
	}
	d := newAdminDashboard(t, &fakeAdminEventsAPI{}, users, &fakeFacultiesAPI{})

	done := make(chan struct{})
	go func() {
		d.FetchUsersPage(context.Background(), 1)
		close(done)
	}()

	<-firstStarted
	// A newer query completes while the first is still in flight.
	d.FetchUsersPage(context.Background(), 1)
	close(releaseFirst)
	<-done

	list, _ := d.Users()
	require.Len(t, list, 1)
	assert.Equal(t, "fresh", list[0].ID)
}

func TestAdminDashboard_SetUserSearchDebounces(t *testing.T) {
	var calls atomic.Int32
	users := &fakeAdminUsersAPI{
		listFn: func(ctx context.Context, query request.ListUsersQuery) client.Result[[]domain.User] {
			calls.Add(1)
			return client.Result[[]domain.User]{Success: true, Data: []domain.User{}}
		},
	}
	d := newAdminDashboard(t, &fakeAdminEventsAPI{}, users, &fakeFacultiesAPI{})

	ctx := context.Background()
	d.SetUserSearch(ctx, "a")
	d.SetUserSearch(ctx, "an")
	d.SetUserSearch(ctx, "ana")

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAdminDashboard_UpdateUserRoleRejectsUnknownRole(t *testing.T) {
	var called bool
	users := &fakeAdminUsersAPI{
		updateRoleFn: func(ctx context.Context, userID string, payload request.UpdateRolePayload) client.Result[struct{}] {
			called = true
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newAdminDashboard(t, &fakeAdminEventsAPI{}, users, &fakeFacultiesAPI{})

	out := d.UpdateUserRole(context.Background(), "u1", "superadmin")
	assert.False(t, out.OK)
	assert.False(t, called)

	out = d.UpdateUserRole(context.Background(), "u1", "organizer")
	assert.True(t, out.OK)
	assert.True(t, called)
}

func TestAdminDashboard_SaveFacultyRefreshesList(t *testing.T) {
	created := false
	faculties := &fakeFacultiesAPI{
		listFn: func(ctx context.Context) client.Result[[]domain.Faculty] {
			data := []domain.Faculty{}
			if created {
				data = append(data, domain.Faculty{ID: "f1", Name: "FIESC"})
			}
			return client.Result[[]domain.Faculty]{Success: true, Data: data}
		},
		createFn: func(ctx context.Context, payload request.CreateFacultyPayload) client.Result[domain.Faculty] {
			created = true
			return client.Result[domain.Faculty]{Success: true, Data: domain.Faculty{ID: "f1", Name: payload.Name}}
		},
	}
	d := newAdminDashboard(t, &fakeAdminEventsAPI{}, &fakeAdminUsersAPI{}, faculties)

	out := d.SaveFaculty(context.Background(), "", request.CreateFacultyPayload{Name: "FIESC", Abbreviation: "FIESC"})

	require.True(t, out.OK)
	list := d.Faculties()
	require.Len(t, list, 1)
	assert.Equal(t, "FIESC", list[0].Name)
}
