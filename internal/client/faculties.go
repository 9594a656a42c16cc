package client

import (
	"context"
	"net/http"

	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
)

type FacultiesClient struct {
	c *Client
}

func (c *Client) Faculties() *FacultiesClient { return &FacultiesClient{c: c} }

func (f *FacultiesClient) List(ctx context.Context) Result[[]domain.Faculty] {
	res := call[[]domain.Faculty](ctx, f.c, http.MethodGet, "/faculties", nil, MsgFetchFaculties, reqOptions{})
	res.Data = emptyIfNil(res.Data)
	return res
}

func (f *FacultiesClient) Create(ctx context.Context, payload request.CreateFacultyPayload) Result[domain.Faculty] {
	return call[domain.Faculty](ctx, f.c, http.MethodPost, "/faculties", payload, MsgRequestFailed, reqOptions{})
}

func (f *FacultiesClient) Update(ctx context.Context, id string, payload request.CreateFacultyPayload) Result[domain.Faculty] {
	return call[domain.Faculty](ctx, f.c, http.MethodPatch, "/faculties/"+id, payload, MsgRequestFailed, reqOptions{})
}

func (f *FacultiesClient) Delete(ctx context.Context, id string) Result[struct{}] {
	return call[struct{}](ctx, f.c, http.MethodDelete, "/faculties/"+id, nil, MsgDeleteFaculty, reqOptions{})
}

func (f *FacultiesClient) CreateDepartment(ctx context.Context, payload request.CreateDepartmentPayload) Result[domain.Department] {
	return call[domain.Department](ctx, f.c, http.MethodPost, "/departments", payload, MsgRequestFailed, reqOptions{})
}
