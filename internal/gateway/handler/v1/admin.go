package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/gateway/handler/v1/response"
)

type AdminHandler struct {
	registry *Registry
}

func NewAdminHandler(registry *Registry) *AdminHandler {
	return &AdminHandler{registry: registry}
}

func (h *AdminHandler) resolve(ctx *gin.Context) (*Controllers, bool) {
	ctrl, ok := h.registry.Resolve()
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return nil, false
	}
	if ctrl.Role != string(domain.RoleAdmin) {
		response.RenderErr(ctx, response.ErrForbidden("admin role required"))
		return nil, false
	}
	return ctrl, true
}

func (h *AdminHandler) HandlePendingEvents(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	if out := ctrl.Admin.RefreshPending(ctx.Request.Context()); !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.JSON(http.StatusOK, ctrl.Admin.PendingEvents())
}

func (h *AdminHandler) HandleApprove(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	out := ctrl.Admin.Approve(ctx.Request.Context(), ctx.Param("eventID"))
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// HandleReject runs after the UI's confirmation modal; the reason is
// mandatory.
func (h *AdminHandler) HandleReject(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	var req rejectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	out := ctrl.Admin.Reject(ctx.Request.Context(), ctx.Param("eventID"), req.Reason)
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

type usersResponse struct {
	Users      []domain.User          `json:"users"`
	Pagination *domain.PaginationMeta `json:"pagination,omitempty"`
}

func (h *AdminHandler) HandleUsers(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	if search, given := ctx.GetQuery("search"); given {
		ctrl.Admin.SetUserSearch(ctx.Request.Context(), search)
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if out := ctrl.Admin.FetchUsersPage(ctx.Request.Context(), page); !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}

	users, pagination := ctrl.Admin.Users()
	ctx.JSON(http.StatusOK, usersResponse{Users: users, Pagination: pagination})
}

func (h *AdminHandler) HandleUpdateRole(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	var req request.UpdateRolePayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	out := ctrl.Admin.UpdateUserRole(ctx.Request.Context(), ctx.Param("userID"), req.Role)
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *AdminHandler) HandleFaculties(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	if out := ctrl.Admin.RefreshFaculties(ctx.Request.Context()); !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.JSON(http.StatusOK, ctrl.Admin.Faculties())
}

func (h *AdminHandler) HandleSaveFaculty(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	var req request.CreateFacultyPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	out := ctrl.Admin.SaveFaculty(ctx.Request.Context(), ctx.Param("facultyID"), req)
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.JSON(http.StatusOK, ctrl.Admin.Faculties())
}

func (h *AdminHandler) HandleDeleteFaculty(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	out := ctrl.Admin.DeleteFaculty(ctx.Request.Context(), ctx.Param("facultyID"))
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *AdminHandler) HandleCreateDepartment(ctx *gin.Context) {
	ctrl, ok := h.resolve(ctx)
	if !ok {
		return
	}

	var req request.CreateDepartmentPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	out := ctrl.Admin.AddDepartment(ctx.Request.Context(), req)
	if !out.OK {
		response.RenderErr(ctx, response.ErrUpstream(out.Message))
		return
	}
	ctx.Status(http.StatusCreated)
}
