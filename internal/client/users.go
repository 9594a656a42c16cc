package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
)

type UsersClient struct {
	c *Client
}

func (c *Client) Users() *UsersClient { return &UsersClient{c: c} }

func (u *UsersClient) UpdateProfile(ctx context.Context, payload request.UpdateProfilePayload) Result[domain.User] {
	return call[domain.User](ctx, u.c, http.MethodPatch, "/users/me", payload, MsgUpdateProfile, reqOptions{})
}

func (u *UsersClient) Interests(ctx context.Context) Result[domain.UserInterests] {
	return call[domain.UserInterests](ctx, u.c, http.MethodGet, "/users/me/interests", nil, MsgFetchInterests, reqOptions{})
}

func (u *UsersClient) UpdateInterests(ctx context.Context, payload request.UpdateInterestsPayload) Result[struct{}] {
	return call[struct{}](ctx, u.c, http.MethodPut, "/users/me/interests", payload, MsgUpdateInterests, reqOptions{})
}

// List searches users with pagination (admin only).
func (u *UsersClient) List(ctx context.Context, query request.ListUsersQuery) Result[[]domain.User] {
	q := url.Values{}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.Role != "" {
		q.Set("role", query.Role)
	}

	res := call[[]domain.User](ctx, u.c, http.MethodGet, "/users?"+q.Encode(), nil, MsgFetchUsers, reqOptions{})
	res.Data = emptyIfNil(res.Data)
	return res
}

// UpdateRole changes another user's role (admin only).
func (u *UsersClient) UpdateRole(ctx context.Context, userID string, payload request.UpdateRolePayload) Result[struct{}] {
	return call[struct{}](ctx, u.c, http.MethodPatch, "/users/"+userID+"/role", payload, MsgUpdateRole, reqOptions{})
}
