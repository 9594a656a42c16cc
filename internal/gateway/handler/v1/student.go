package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usv-events/client-go/internal/dashboard"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/gateway/handler/v1/response"
)

var errNotLoggedIn = errors.New("not logged in")

type StudentHandler struct {
	registry *Registry
}

func NewStudentHandler(registry *Registry) *StudentHandler {
	return &StudentHandler{registry: registry}
}

type studentEventsResponse struct {
	Events     []domain.Event `json:"events"`
	Registered []string       `json:"registered"`
	Favorites  []string       `json:"favorites"`
	Banner     string         `json:"banner,omitempty"`
}

func (h *StudentHandler) HandleEvents(ctx *gin.Context) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	tab := dashboard.StudentTab(ctx.DefaultQuery("tab", string(dashboard.TabAll)))
	if out := ctrl.Student.SelectTab(ctx.Request.Context(), tab); !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	// Sets are fetched alongside the list so toggles render correctly.
	ctrl.Student.Refresh(ctx.Request.Context())

	events := ctrl.Student.Events()
	resp := studentEventsResponse{
		Events:     events,
		Registered: []string{},
		Favorites:  []string{},
		Banner:     ctrl.Student.Banner(),
	}
	for _, e := range events {
		if ctrl.Student.IsRegistered(e.ID) {
			resp.Registered = append(resp.Registered, e.ID)
		}
		if ctrl.Student.IsFavorite(e.ID) {
			resp.Favorites = append(resp.Favorites, e.ID)
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

func (h *StudentHandler) HandleRegister(ctx *gin.Context) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	out := ctrl.Student.Register(ctx.Request.Context(), ctx.Param("eventID"))
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

// HandleCancel runs after the UI's confirmation modal; an already-cancelled
// registration still comes back as success.
func (h *StudentHandler) HandleCancel(ctx *gin.Context) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	out := ctrl.Student.CancelRegistration(ctx.Request.Context(), ctx.Param("eventID"))
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *StudentHandler) HandleToggleFavorite(ctx *gin.Context) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	out := ctrl.Student.ToggleFavorite(ctx.Request.Context(), ctx.Param("eventID"))
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}
