package client

import (
	"context"
	"net/http"

	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
)

// AuthData is the payload of a successful login or register.
type AuthData struct {
	User         domain.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

type AuthClient struct {
	c *Client
}

func (c *Client) Auth() *AuthClient { return &AuthClient{c: c} }

func (a *AuthClient) Login(ctx context.Context, payload request.LoginPayload) Result[AuthData] {
	res := call[AuthData](ctx, a.c, http.MethodPost, "/auth/login", payload, MsgRequestFailed, reqOptions{})
	// A 401 here means bad credentials, not an expired session; the server's
	// own text is replaced with the fixed message.
	if res.Status == http.StatusUnauthorized {
		return Result[AuthData]{Success: false, Status: res.Status, Message: MsgInvalidCredentials}
	}
	return res
}

func (a *AuthClient) Register(ctx context.Context, payload request.RegisterPayload) Result[AuthData] {
	return call[AuthData](ctx, a.c, http.MethodPost, "/auth/register", payload, MsgRegisterFailed, reqOptions{})
}

func (a *AuthClient) Me(ctx context.Context) Result[domain.User] {
	return call[domain.User](ctx, a.c, http.MethodGet, "/users/me", nil, MsgRequestFailed, reqOptions{})
}

// Logout invalidates the refresh token server-side. Best effort: callers
// clear local state regardless of the outcome.
func (a *AuthClient) Logout(ctx context.Context, refreshToken string) Result[struct{}] {
	return call[struct{}](ctx, a.c, http.MethodPost, "/auth/logout",
		request.LogoutPayload{RefreshToken: refreshToken}, MsgRequestFailed, reqOptions{})
}
