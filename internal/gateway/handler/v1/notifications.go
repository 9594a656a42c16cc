package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usv-events/client-go/internal/gateway/handler/v1/response"
)

type NotificationHandler struct {
	registry *Registry
}

func NewNotificationHandler(registry *Registry) *NotificationHandler {
	return &NotificationHandler{registry: registry}
}

func (h *NotificationHandler) HandleList(ctx *gin.Context) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	if out := ctrl.Notifications.Refresh(ctx.Request.Context()); !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.JSON(http.StatusOK, ctrl.Notifications.Notifications())
}

func (h *NotificationHandler) HandleUnreadCount(ctx *gin.Context) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"unreadCount": ctrl.Notifications.Unread()})
}

func (h *NotificationHandler) HandleMarkRead(ctx *gin.Context) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	out := ctrl.Notifications.MarkRead(ctx.Request.Context(), ctx.Param("notificationID"))
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *NotificationHandler) HandleMarkAllRead(ctx *gin.Context) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	out := ctrl.Notifications.MarkAllRead(ctx.Request.Context())
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}
