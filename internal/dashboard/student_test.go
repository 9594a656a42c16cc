package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/domain"
)

type fakeStudentAPI struct {
	listFn          func(ctx context.Context, status domain.EventStatus) client.Result[[]domain.Event]
	favoritesFn     func(ctx context.Context) client.Result[[]domain.Event]
	registrationsFn func(ctx context.Context) client.Result[[]domain.Participant]
	registerFn      func(ctx context.Context, id string) client.Result[struct{}]
	cancelFn        func(ctx context.Context, id string) client.Result[struct{}]
	favoriteFn      func(ctx context.Context, id string) client.Result[struct{}]
	unfavoriteFn    func(ctx context.Context, id string) client.Result[struct{}]
}

func (f *fakeStudentAPI) List(ctx context.Context, status domain.EventStatus) client.Result[[]domain.Event] {
	if f.listFn == nil {
		return client.Result[[]domain.Event]{Success: true, Data: []domain.Event{}}
	}
	return f.listFn(ctx, status)
}

func (f *fakeStudentAPI) Favorites(ctx context.Context) client.Result[[]domain.Event] {
	if f.favoritesFn == nil {
		return client.Result[[]domain.Event]{Success: true, Data: []domain.Event{}}
	}
	return f.favoritesFn(ctx)
}

func (f *fakeStudentAPI) MyRegistrations(ctx context.Context) client.Result[[]domain.Participant] {
	if f.registrationsFn == nil {
		return client.Result[[]domain.Participant]{Success: true, Data: []domain.Participant{}}
	}
	return f.registrationsFn(ctx)
}

func (f *fakeStudentAPI) Register(ctx context.Context, id string) client.Result[struct{}] {
	return f.registerFn(ctx, id)
}

func (f *fakeStudentAPI) CancelRegistration(ctx context.Context, id string) client.Result[struct{}] {
	return f.cancelFn(ctx, id)
}

func (f *fakeStudentAPI) Favorite(ctx context.Context, id string) client.Result[struct{}] {
	return f.favoriteFn(ctx, id)
}

func (f *fakeStudentAPI) Unfavorite(ctx context.Context, id string) client.Result[struct{}] {
	return f.unfavoriteFn(ctx, id)
}

func approvedEvents() []domain.Event {
	return []domain.Event{
		{ID: "ev1", Title: "Balul Bobocilor", Status: domain.EventApproved, CurrentParticipants: 40, MaxParticipants: 100},
		{ID: "ev2", Title: "Atelier Go", Status: domain.EventApproved, CurrentParticipants: 0, MaxParticipants: 30},
	}
}

func newStudentDashboard(t *testing.T, api *fakeStudentAPI) *StudentDashboard {
	t.Helper()

	if api.listFn == nil {
		api.listFn = func(ctx context.Context, status domain.EventStatus) client.Result[[]domain.Event] {
			return client.Result[[]domain.Event]{Success: true, Data: approvedEvents()}
		}
	}

	d := NewStudentDashboard(api)
	out := d.Refresh(context.Background())
	require.True(t, out.OK)
	return d
}

func TestStudentDashboard_RegisterOptimistic(t *testing.T) {
	api := &fakeStudentAPI{
		registerFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newStudentDashboard(t, api)

	out := d.Register(context.Background(), "ev1")

	require.True(t, out.OK)
	assert.True(t, d.IsRegistered("ev1"))
	assert.Equal(t, 41, d.Events()[0].CurrentParticipants)
}

func TestStudentDashboard_RegisterRevertsOnRefusal(t *testing.T) {
	api := &fakeStudentAPI{
		registerFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: false, Message: "Evenimentul este plin"}
		},
	}
	d := newStudentDashboard(t, api)

	out := d.Register(context.Background(), "ev1")

	assert.False(t, out.OK)
	assert.False(t, d.IsRegistered("ev1"))
	assert.Equal(t, 40, d.Events()[0].CurrentParticipants)
	assert.Equal(t, "Evenimentul este plin", d.Banner())
}

func TestStudentDashboard_CancelClampsAtZero(t *testing.T) {
	api := &fakeStudentAPI{
		registrationsFn: func(ctx context.Context) client.Result[[]domain.Participant] {
			return client.Result[[]domain.Participant]{Success: true, Data: []domain.Participant{
				{EventID: "ev2", Status: domain.RegistrationConfirmed},
			}}
		},
		cancelFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newStudentDashboard(t, api)
	require.True(t, d.IsRegistered("ev2"))

	// ev2 already shows zero participants; the counter must not go negative.
	out := d.CancelRegistration(context.Background(), "ev2")

	require.True(t, out.OK)
	assert.False(t, d.IsRegistered("ev2"))
	assert.Equal(t, 0, d.Events()[1].CurrentParticipants)
}

func TestStudentDashboard_CancelRevertRestoresCapturedState(t *testing.T) {
	api := &fakeStudentAPI{
		registrationsFn: func(ctx context.Context) client.Result[[]domain.Participant] {
			return client.Result[[]domain.Participant]{Success: true, Data: []domain.Participant{
				{EventID: "ev1", Status: domain.RegistrationConfirmed},
			}}
		},
		cancelFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: false, Message: "Anularea a eșuat."}
		},
	}
	d := newStudentDashboard(t, api)

	out := d.CancelRegistration(context.Background(), "ev1")

	assert.False(t, out.OK)
	assert.True(t, d.IsRegistered("ev1"))
	assert.Equal(t, 40, d.Events()[0].CurrentParticipants)
}

func TestStudentDashboard_CancelOnRegisteredTabRemovesRow(t *testing.T) {
	api := &fakeStudentAPI{
		registrationsFn: func(ctx context.Context) client.Result[[]domain.Participant] {
			return client.Result[[]domain.Participant]{Success: true, Data: []domain.Participant{
				{EventID: "ev1", Status: domain.RegistrationConfirmed},
			}}
		},
		cancelFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newStudentDashboard(t, api)

	out := d.SelectTab(context.Background(), TabRegistered)
	require.True(t, out.OK)
	require.Len(t, d.Events(), 1)

	out = d.CancelRegistration(context.Background(), "ev1")

	require.True(t, out.OK)
	assert.Empty(t, d.Events())
}

func TestStudentDashboard_CancelledRegistrationsExcluded(t *testing.T) {
	api := &fakeStudentAPI{
		registrationsFn: func(ctx context.Context) client.Result[[]domain.Participant] {
			return client.Result[[]domain.Participant]{Success: true, Data: []domain.Participant{
				{EventID: "ev1", Status: domain.RegistrationConfirmed},
				{EventID: "ev2", Status: domain.RegistrationCancelled},
			}}
		},
	}
	d := newStudentDashboard(t, api)

	assert.True(t, d.IsRegistered("ev1"))
	assert.False(t, d.IsRegistered("ev2"))
}

func TestStudentDashboard_ToggleFavoriteRevertsFlip(t *testing.T) {
	api := &fakeStudentAPI{
		favoriteFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: false, Message: "Acțiune eșuată. Reîncearcă."}
		},
	}
	d := newStudentDashboard(t, api)

	out := d.ToggleFavorite(context.Background(), "ev1")

	assert.False(t, out.OK)
	assert.False(t, d.IsFavorite("ev1"))
}

func TestStudentDashboard_ToggleFavoriteParity(t *testing.T) {
	api := &fakeStudentAPI{
		favoriteFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: true}
		},
		unfavoriteFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newStudentDashboard(t, api)

	require.True(t, d.ToggleFavorite(context.Background(), "ev1").OK)
	assert.True(t, d.IsFavorite("ev1"))

	require.True(t, d.ToggleFavorite(context.Background(), "ev1").OK)
	assert.False(t, d.IsFavorite("ev1"))
}

func TestStudentDashboard_FavoritesTabRemovalOnUnfavorite(t *testing.T) {
	api := &fakeStudentAPI{
		favoritesFn: func(ctx context.Context) client.Result[[]domain.Event] {
			return client.Result[[]domain.Event]{Success: true, Data: approvedEvents()[:1]}
		},
		unfavoriteFn: func(ctx context.Context, id string) client.Result[struct{}] {
			return client.Result[struct{}]{Success: true}
		},
	}
	d := newStudentDashboard(t, api)

	out := d.SelectTab(context.Background(), TabFavorites)
	require.True(t, out.OK)
	require.Len(t, d.Events(), 1)
	require.True(t, d.IsFavorite("ev1"))

	out = d.ToggleFavorite(context.Background(), "ev1")

	require.True(t, out.OK)
	assert.Empty(t, d.Events())
	assert.False(t, d.IsFavorite("ev1"))
}
