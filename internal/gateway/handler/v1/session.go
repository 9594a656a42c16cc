package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/dashboard"
	"github.com/usv-events/client-go/internal/domain"
	"github.com/usv-events/client-go/internal/gateway/handler/v1/response"
	"github.com/usv-events/client-go/internal/session"
)

// ProfileAPI is what the session handler needs from the users client.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, payload request.UpdateProfilePayload) client.Result[domain.User]
	Interests(ctx context.Context) client.Result[domain.UserInterests]
	UpdateInterests(ctx context.Context, payload request.UpdateInterestsPayload) client.Result[struct{}]
}

type SessionHandler struct {
	sessions *session.Manager
	users    ProfileAPI
	router   *dashboard.Router
}

func NewSessionHandler(sessions *session.Manager, users ProfileAPI, router *dashboard.Router) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		users:    users,
		router:   router,
	}
}

type sessionState struct {
	Status         session.Status `json:"status"`
	View           dashboard.View `json:"view"`
	User           *domain.User   `json:"user,omitempty"`
	TokenExpiresAt *time.Time     `json:"tokenExpiresAt,omitempty"`
}

func (h *SessionHandler) state() sessionState {
	snap := h.sessions.Snapshot()
	state := sessionState{
		Status: snap.Status,
		View:   h.router.Current(),
		User:   snap.User,
	}
	if exp, ok := h.sessions.TokenExpiry(); ok {
		state.TokenExpiresAt = &exp
	}
	return state
}

func (h *SessionHandler) HandleState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.state())
}

func (h *SessionHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.sessions.Login(ctx.Request.Context(), req); err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, h.state())
}

func (h *SessionHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.sessions.Register(ctx.Request.Context(), req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusCreated, h.state())
}

func (h *SessionHandler) HandleLogout(ctx *gin.Context) {
	h.sessions.Logout(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.state())
}

func (h *SessionHandler) HandleUpdateProfile(ctx *gin.Context) {
	var req request.UpdateProfilePayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	res := h.users.UpdateProfile(ctx.Request.Context(), req)
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}

	h.sessions.UpdateUser(res.Data)
	ctx.JSON(http.StatusOK, res.Data)
}

func (h *SessionHandler) HandleInterests(ctx *gin.Context) {
	if h.sessions.Snapshot().Status != session.StatusAuthenticated {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	res := h.users.Interests(ctx.Request.Context())
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.JSON(http.StatusOK, res.Data)
}

func (h *SessionHandler) HandleUpdateInterests(ctx *gin.Context) {
	if h.sessions.Snapshot().Status != session.StatusAuthenticated {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotLoggedIn.Error()))
		return
	}

	var req request.UpdateInterestsPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	res := h.users.UpdateInterests(ctx.Request.Context(), req)
	if !res.Success {
		response.RenderErr(ctx, response.ErrUpstream(res.Message))
		return
	}
	ctx.Status(http.StatusNoContent)
}
