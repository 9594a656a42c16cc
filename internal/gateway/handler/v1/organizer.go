package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/gateway/handler/v1/response"
)

type OrganizerHandler struct {
	registry *Registry
}

func NewOrganizerHandler(registry *Registry) *OrganizerHandler {
	return &OrganizerHandler{registry: registry}
}

// resolve gates organizer endpoints on the organizer role. Admins may pass
// too, mirroring the review tools they share.
func (h *OrganizerHandler) resolve(ctx *gin.Context) (*Controllers, bool) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return nil, false
	}
	if ctrl.Role != string(domain.RoleOrganizer) && ctrl.Role != string(domain.RoleAdmin) {
		response.RenderErr(ctx, response.ErrForbidden("organizer role required"))
		return nil, false
	}
	return ctrl, true
}

func (h *OrganizerHandler) HandleMyEvents(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	if out := ctrl.Organizer.Refresh(ctx.Request.Context()); !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.JSON(http.StatusOK, ctrl.Organizer.Events())
}

// HandleSaveEvent creates, or updates when an id query parameter is given.
// The displayed status after an update is whatever the server returns,
// which is draft.
func (h *OrganizerHandler) HandleSaveEvent(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	var req request.CreateEventPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if editID := ctx.Query("id"); editID != "" {
		ctrl.Organizer.StartEditing(editID)
	} else {
		ctrl.Organizer.StopEditing()
	}

	if out := ctrl.Organizer.SaveEvent(ctx.Request.Context(), req); !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.JSON(http.StatusOK, ctrl.Organizer.Events())
}

func (h *OrganizerHandler) HandleSubmit(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	out := ctrl.Organizer.SubmitForReview(ctx.Request.Context(), ctx.Param("eventID"))
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

// HandleDelete expects the UI to have confirmed the destructive action.
func (h *OrganizerHandler) HandleDelete(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	out := ctrl.Organizer.Delete(ctx.Request.Context(), ctx.Param("eventID"))
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *OrganizerHandler) HandleParticipants(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	res := ctrl.Organizer.Participants(ctx.Request.Context(), ctx.Param("eventID"))
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.JSON(http.StatusOK, res.Data)
}

func (h *OrganizerHandler) HandleCheckIn(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	var req request.CheckInPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	out := ctrl.Organizer.CheckIn(ctx.Request.Context(), ctx.Param("eventID"), req.TicketNumber)
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *OrganizerHandler) HandleMaterials(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	res := ctrl.Organizer.Materials(ctx.Request.Context(), ctx.Param("eventID"))
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.JSON(http.StatusOK, res.Data)
}

func (h *OrganizerHandler) HandleUploadMaterial(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	var req request.CreateMaterialPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	out := ctrl.Organizer.UploadMaterial(ctx.Request.Context(), req)
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusCreated)
}

func (h *OrganizerHandler) HandleDownloadLink(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	res := ctrl.Organizer.MaterialLink(ctx.Request.Context(), ctx.Param("materialID"))
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.JSON(http.StatusOK, res.Data)
}

func (h *OrganizerHandler) HandleLoadDraft(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	draft, err := ctrl.Organizer.RestoreDraft()
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	if draft == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.Data(http.StatusOK, "application/json", draft)
}

func (h *OrganizerHandler) HandleSaveDraft(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	var raw json.RawMessage
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := ctrl.Organizer.AutosaveDraft(raw); err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *OrganizerHandler) HandleDiscardDraft(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	if err := ctrl.Organizer.DiscardDraft(); err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	ctx.Status(http.StatusNoContent)
}
