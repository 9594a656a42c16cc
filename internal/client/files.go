package client

import (
	"context"
	"net/http"

	"github.com/usv-events/client-go/internal/client/request"
	"github.com/usv-events/client-go/internal/domain"
)

type FilesClient struct {
	c *Client
}

func (c *Client) Files() *FilesClient { return &FilesClient{c: c} }

func (f *FilesClient) EventMaterials(ctx context.Context, eventID string) Result[[]domain.EventMaterial] {
	res := call[[]domain.EventMaterial](ctx, f.c, http.MethodGet, "/files/event/"+eventID, nil, MsgFetchMaterials, reqOptions{})
	res.Data = emptyIfNil(res.Data)
	return res
}

func (f *FilesClient) Upload(ctx context.Context, payload request.CreateMaterialPayload) Result[struct{}] {
	return call[struct{}](ctx, f.c, http.MethodPost, "/files", payload, MsgUploadMaterial, reqOptions{})
}

type DownloadLink struct {
	FileURL string `json:"fileUrl"`
}

// DownloadLink asks the server for a short-lived URL and bumps the
// download counter.
func (f *FilesClient) DownloadLink(ctx context.Context, id string) Result[DownloadLink] {
	return call[DownloadLink](ctx, f.c, http.MethodPost, "/files/"+id+"/download", nil, MsgDownloadMaterial, reqOptions{})
}
