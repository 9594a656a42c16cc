package v1

import (
	"context"
	"sync"
	"time"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/dashboard"
	"github.com/usv-events/client-go/internal/session"
)

// Controllers bundles the dashboard state for the logged-in user.
type Controllers struct {
	UserID        string
	Role          string
	Student       *dashboard.StudentDashboard
	Organizer     *dashboard.OrganizerDashboard
	Admin         *dashboard.AdminDashboard
	Notifications *dashboard.NotificationCenter
}

// Registry builds dashboard controllers when a user logs in and tears them
// down (stopping their timers) on logout or user change.
type Registry struct {
	api            *client.Client
	sessions       *session.Manager
	store          *session.Store
	unreadInterval time.Duration
	searchDebounce time.Duration

	mu          sync.Mutex
	current     *Controllers
	stopPolling context.CancelFunc
}

func NewRegistry(api *client.Client, sessions *session.Manager, store *session.Store, unreadInterval, searchDebounce time.Duration) *Registry {
	return &Registry{
		api:            api,
		sessions:       sessions,
		store:          store,
		unreadInterval: unreadInterval,
		searchDebounce: searchDebounce,
	}
}

// Resolve returns the controllers for the current session, building them on
// first use. ok is false while logged out.
func (r *Registry) Resolve() (*Controllers, bool) {
	snap := r.sessions.Snapshot()
	if snap.Status != session.StatusAuthenticated || snap.User == nil {
		r.teardown()
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil && r.current.UserID == snap.User.ID {
		return r.current, true
	}

	r.teardownLocked()

	events := r.api.Events()
	ctrl := &Controllers{
		UserID:        snap.User.ID,
		Role:          string(snap.User.Role),
		Student:       dashboard.NewStudentDashboard(events),
		Organizer:     dashboard.NewOrganizerDashboard(events, r.api.Files(), r.store, snap.User.ID),
		Admin:         dashboard.NewAdminDashboard(events, r.api.Users(), r.api.Faculties(), r.searchDebounce),
		Notifications: dashboard.NewNotificationCenter(r.api.Notifications()),
	}

	ctx, cancel := context.WithCancel(context.Background())
	ctrl.Notifications.StartPolling(ctx, r.unreadInterval)
	r.stopPolling = cancel
	r.current = ctrl

	return ctrl, true
}

func (r *Registry) teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teardownLocked()
}

func (r *Registry) teardownLocked() {
	if r.current == nil {
		return
	}
	if r.stopPolling != nil {
		r.stopPolling()
		r.stopPolling = nil
	}
	r.current.Admin.Close()
	r.current.Notifications.Stop()
	r.current = nil
}
