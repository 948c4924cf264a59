package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// Config holds the remote store settings.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Gateway is the remote backend: whole JSON documents read from and written
// to a hosted file store, one URL per collection key. Writes are optimistic
// whole-document overwrites.
type Gateway struct {
	client  *fasthttp.Client
	baseURL string
	token   string
	timeout time.Duration
}

func New(cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Gateway{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		timeout: timeout,
	}
}

func (g *Gateway) Load(ctx context.Context, key string) (json.RawMessage, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.url(key))
	req.Header.SetMethod(fasthttp.MethodGet)
	g.authorize(req)

	if err := g.client.DoDeadline(req, resp, g.deadline(ctx)); err != nil {
		return nil, err
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return nil, nil
	case http.StatusOK:
		return append(json.RawMessage(nil), resp.Body()...), nil
	default:
		return nil, fmt.Errorf("remote store returned status %d for %s", resp.StatusCode(), key)
	}
}

func (g *Gateway) Save(ctx context.Context, key string, document json.RawMessage) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.url(key))
	req.Header.SetMethod(fasthttp.MethodPut)
	req.Header.SetContentType("application/json")
	req.SetBody(document)
	g.authorize(req)

	if err := g.client.DoDeadline(req, resp, g.deadline(ctx)); err != nil {
		return err
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	default:
		return fmt.Errorf("remote store returned status %d for %s", resp.StatusCode(), key)
	}
}

// Ping checks reachability of the store root. Any response below 500 counts
// as healthy; the store may legitimately 404 an unknown collection.
func (g *Gateway) Ping(ctx context.Context) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.baseURL)
	req.Header.SetMethod(fasthttp.MethodHead)
	g.authorize(req)

	if err := g.client.DoDeadline(req, resp, g.deadline(ctx)); err != nil {
		return err
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("remote store returned status %d", resp.StatusCode())
	}
	return nil
}

func (g *Gateway) Close() error {
	return nil
}

func (g *Gateway) url(key string) string {
	return g.baseURL + "/" + key
}

func (g *Gateway) authorize(req *fasthttp.Request) {
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
}

func (g *Gateway) deadline(ctx context.Context) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return time.Now().Add(g.timeout)
}
