package api

import (
	"context"
	"encoding/json"
	"time"

	"sports-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

func newHTTPClient() *fasthttp.Client {
	return &fasthttp.Client{
		MaxConnsPerHost:     100,
		ReadTimeout:         10 * time.Second,
		WriteTimeout:        10 * time.Second,
		MaxIdleConnDuration: 1 * time.Minute,
	}
}

// doGet performs an authorized GET and decodes the body into T. Any
// transport failure or non-200 collapses into a single UpstreamError.
func doGet[T any](ctx context.Context, client *fasthttp.Client, provider, url, auth string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	if err := do(ctx, client, req, resp); err != nil {
		return nil, &domain.UpstreamError{Provider: provider, Err: err}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &domain.UpstreamError{Provider: provider, Status: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &domain.UpstreamError{Provider: provider, Err: err}
	}
	return &result, nil
}

// doPostJSON sends a JSON body and decodes the reply into T.
func doPostJSON[T any](ctx context.Context, client *fasthttp.Client, provider, url, auth string, body interface{}) (*T, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &domain.UpstreamError{Provider: provider, Err: err}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	req.SetBody(payload)

	if err := do(ctx, client, req, resp); err != nil {
		return nil, &domain.UpstreamError{Provider: provider, Err: err}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &domain.UpstreamError{Provider: provider, Status: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &domain.UpstreamError{Provider: provider, Err: err}
	}
	return &result, nil
}

func do(ctx context.Context, client *fasthttp.Client, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		return client.DoDeadline(req, resp, deadline)
	}
	return client.Do(req, resp)
}
