package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/gateway/handler/v1/response"
)

// FeedbackAPI is what the feedback handler needs from the feedback client.
type FeedbackAPI interface {
	Create(ctx context.Context, payload request.CreateFeedbackPayload) client.Result[struct{}]
	Mine(ctx context.Context) client.Result[[]domain.Feedback]
	ForEvent(ctx context.Context, eventID string, page int) client.Result[[]domain.Feedback]
	Stats(ctx context.Context, eventID string) client.Result[domain.FeedbackStats]
}

type FeedbackHandler struct {
	registry *Registry
	api      FeedbackAPI
}

func NewFeedbackHandler(registry *Registry, api FeedbackAPI) *FeedbackHandler {
	return &FeedbackHandler{
		registry: registry,
		api:      api,
	}
}

// HandleSubmit posts feedback for an attended event. Eligibility is the
// server's call.
func (h *FeedbackHandler) HandleSubmit(ctx *gin.Context) {
	if _, ok := h.registry.Resolve(); !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	var req request.CreateFeedbackPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	res := h.api.Create(ctx.Request.Context(), req)
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.Status(http.StatusCreated)
}

func (h *FeedbackHandler) HandleMine(ctx *gin.Context) {
	if _, ok := h.registry.Resolve(); !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	res := h.api.Mine(ctx.Request.Context())
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.JSON(http.StatusOK, res.Data)
}

// resolve gates event-level feedback views on the organizer or admin role.
func (h *FeedbackHandler) resolve(ctx *gin.Context) bool {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return false
	}
	if ctrl.Role != string(domain.RoleOrganizer) && ctrl.Role != string(domain.RoleAdmin) {
		response.RenderErr(ctx, response.ErrForbidden("organizer role required"))
		return false
	}
	return true
}

func (h *FeedbackHandler) HandleForEvent(ctx *gin.Context) {
	if !h.resolve(ctx) {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	res := h.api.ForEvent(ctx.Request.Context(), ctx.Param("eventID"), page)
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.JSON(http.StatusOK, res.Data)
}

func (h *FeedbackHandler) HandleStats(ctx *gin.Context) {
	if !h.resolve(ctx) {
		return
	}

	res := h.api.Stats(ctx.Request.Context(), ctx.Param("eventID"))
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.JSON(http.StatusOK, res.Data)
}
