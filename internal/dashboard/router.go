package dashboard

import (
	"sync"

	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/session"
)

type View string

const (
	ViewAuth      View = "auth"
	ViewLoading   View = "loading"
	ViewStudent   View = "student"
	ViewOrganizer View = "organizer"
	ViewAdmin     View = "admin"
	ViewProfile   View = "profile"
)

// ViewForRole is total: any authenticated role that is not admin or
// organizer gets the student dashboard, there is no error branch for an
// unrecognized role.
func ViewForRole(role domain.Role) View {
	switch role {
	case domain.RoleAdmin:
		return ViewAdmin
	case domain.RoleOrganizer:
		return ViewOrganizer
	default:
		return ViewStudent
	}
}

// Router tracks the top-level view: Loading until the session bootstrap
// settles, then the auth screen or the role's dashboard. Entering the
// authenticated state always resets the sub-view to the dashboard, never a
// stale profile page from a previous session.
type Router struct {
	mu        sync.Mutex
	snapshot  session.Snapshot
	onProfile bool
}

func NewRouter() *Router {
	return &Router{snapshot: session.Snapshot{Status: session.StatusLoading}}
}

// Apply consumes a session snapshot; wire it via Manager.Subscribe.
func (r *Router) Apply(snap session.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasAuthenticated := r.snapshot.Status == session.StatusAuthenticated
	r.snapshot = snap

	if snap.Status == session.StatusAuthenticated && !wasAuthenticated {
		r.onProfile = false
	}
}

// ShowProfile switches to the profile sub-view. Ignored while logged out.
func (r *Router) ShowProfile() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapshot.Status == session.StatusAuthenticated {
		r.onProfile = true
	}
}

func (r *Router) ShowDashboard() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onProfile = false
}

func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.snapshot.Status {
	case session.StatusLoading:
		return ViewLoading
	case session.StatusAuthenticated:
		if r.onProfile {
			return ViewProfile
		}
		if r.snapshot.User != nil {
			return ViewForRole(r.snapshot.User.Role)
		}
		return ViewStudent
	default:
		return ViewAuth
	}
}
