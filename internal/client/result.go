package client

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/usv-events/client-go/internal/domain"
)

// Result is the uniform envelope every domain client returns. Calls never
// produce Go errors for HTTP outcomes; dashboards branch on Success.
type Result[T any] struct {
	Success    bool
	Status     int
	Data       T
	Message    string
	Errors     map[string][]string
	Pagination *domain.PaginationMeta
}

// FieldErrors flattens the per-field validation errors into one string,
// for forms that render a single banner instead of inline messages.
func (r Result[T]) FieldErrors() string {
	if len(r.Errors) == 0 {
		return ""
	}
	var parts []string
	for field, msgs := range r.Errors {
		parts = append(parts, field+": "+strings.Join(msgs, ", "))
	}
	return strings.Join(parts, "; ")
}

// envelope covers both shapes the API sends: a wrapped {success, data, ...}
// object or a bare payload.
type envelope struct {
	Data       json.RawMessage        `json:"data"`
	Message    string                 `json:"message"`
	Error      string                 `json:"error"`
	Errors     map[string][]string    `json:"errors"`
	Pagination *domain.PaginationMeta `json:"pagination"`
}

func decode[T any](resp *rawResponse, defaultMsg string, opts reqOptions) Result[T] {
	res := Result[T]{Status: resp.status}

	var env envelope
	if resp.isJSON && len(resp.body) > 0 {
		if err := json.Unmarshal(resp.body, &env); err != nil {
			// A JSON array body is a bare list payload, not an envelope.
			env = envelope{}
			if resp.body[0] != '[' {
				if resp.status >= 200 && resp.status < 300 {
					return Result[T]{Success: false, Status: resp.status, Message: MsgConnectivity}
				}
			}
		}
	} else if len(resp.body) > 0 {
		// Non-JSON bodies degrade to a plain message.
		env.Message = strings.TrimSpace(string(resp.body))
	}

	if resp.status < 200 || resp.status >= 300 {
		if opts.okOnNotFound && resp.status == http.StatusNotFound {
			res.Success = true
			return res
		}
		res.Success = false
		res.Message = firstNonEmpty(env.Message, env.Error, defaultMsg)
		res.Errors = env.Errors
		return res
	}

	res.Success = true
	res.Message = env.Message
	res.Pagination = env.Pagination

	payload := env.Data
	if payload == nil && resp.isJSON {
		payload = resp.body
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &res.Data); err != nil {
			return Result[T]{Success: false, Status: resp.status, Message: MsgConnectivity}
		}
	}

	return res
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// emptyIfNil keeps list results non-nil so dashboards can range without
// nil checks. The API omits empty collections.
func emptyIfNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
