package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/session"
)

func TestViewForRole_Total(t *testing.T) {
	tests := []struct {
		role domain.Role
		want View
	}{
		{role: domain.RoleStudent, want: ViewStudent},
		{role: domain.RoleOrganizer, want: ViewOrganizer},
		{role: domain.RoleAdmin, want: ViewAdmin},
		// Unknown roles fall back to the student dashboard, never an error.
		{role: domain.Role("moderator"), want: ViewStudent},
		{role: domain.Role(""), want: ViewStudent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ViewForRole(tt.role))
	}
}

func TestRouter_StartsLoading(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, ViewLoading, r.Current())
}

func TestRouter_FollowsSession(t *testing.T) {
	r := NewRouter()

	r.Apply(session.Snapshot{Status: session.StatusUnauthenticated})
	assert.Equal(t, ViewAuth, r.Current())

	user := domain.User{ID: "u1", Role: domain.RoleOrganizer}
	r.Apply(session.Snapshot{Status: session.StatusAuthenticated, User: &user})
	assert.Equal(t, ViewOrganizer, r.Current())

	r.Apply(session.Snapshot{Status: session.StatusUnauthenticated})
	assert.Equal(t, ViewAuth, r.Current())
}

func TestRouter_ProfileResetsOnLogin(t *testing.T) {
	r := NewRouter()
	user := domain.User{ID: "u1", Role: domain.RoleStudent}

	r.Apply(session.Snapshot{Status: session.StatusAuthenticated, User: &user})
	r.ShowProfile()
	assert.Equal(t, ViewProfile, r.Current())

	r.Apply(session.Snapshot{Status: session.StatusUnauthenticated})
	r.Apply(session.Snapshot{Status: session.StatusAuthenticated, User: &user})

	// A fresh login always lands on the dashboard, never a stale profile.
	assert.Equal(t, ViewStudent, r.Current())
}

func TestRouter_ShowProfileIgnoredWhileLoggedOut(t *testing.T) {
	r := NewRouter()
	r.Apply(session.Snapshot{Status: session.StatusUnauthenticated})

	r.ShowProfile()
	assert.Equal(t, ViewAuth, r.Current())

	user := domain.User{ID: "u1", Role: domain.RoleStudent}
	r.Apply(session.Snapshot{Status: session.StatusAuthenticated, User: &user})
	assert.Equal(t, ViewStudent, r.Current())
}

func TestRouter_ShowDashboardLeavesProfile(t *testing.T) {
	r := NewRouter()
	user := domain.User{ID: "u1", Role: domain.RoleAdmin}
	r.Apply(session.Snapshot{Status: session.StatusAuthenticated, User: &user})

	r.ShowProfile()
	assert.Equal(t, ViewProfile, r.Current())

	r.ShowDashboard()
	assert.Equal(t, ViewAdmin, r.Current())
}
