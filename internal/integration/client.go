package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-sod/dotquad/internal/browse"
	"github.com/go-sod/dotquad/internal/buildinfo"
	"github.com/go-sod/dotquad/internal/httputil"
	"github.com/go-sod/dotquad/internal/insert"
	"github.com/go-sod/dotquad/internal/query"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type Option func(*Client)

func WithHTTPClientConfig(cfg httputil.HTTPClientConfig) Option {
	return func(c *Client) {
		c.cfg = cfg
	}
}

func NewClient(addr string, opts ...Option) (*Client, error) {
	c := &Client{}
	for _, f := range opts {
		f(c)
	}
	client, err := httputil.NewClientFromConfig(addr, c.cfg, buildinfo.Info.Name()+"/"+buildinfo.Info.Tag())
	if err != nil {
		return nil, fmt.Errorf("unable create http client: %w", err)
	}
	c.client = client

	return c, nil
}

type Client struct {
	cfg    httputil.HTTPClientConfig
	client *http.Client
}

func (c *Client) Insert(ctx context.Context, dots ...insert.DotRequest) (*insert.Response, error) {
	var resp insert.Response
	if err := c.post(ctx, "/insert", insert.Request{Dots: dots}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Find(ctx context.Context, req query.Request) (*query.Response, error) {
	var resp query.Response
	if err := c.post(ctx, "/find", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Points(ctx context.Context) (*browse.PointsResponse, error) {
	var resp browse.PointsResponse
	if err := c.get(ctx, "/points", &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Layout(ctx context.Context) (*browse.LayoutResponse, error) {
	var resp browse.LayoutResponse
	if err := c.get(ctx, "/layout", &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("unable marshal %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("create new request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error with sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return fmt.Errorf("%s %s: %w %d: %s", req.Method, req.URL.Path, ErrUnexpectedStatus, resp.StatusCode, bytes.TrimSpace(body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unable decode %s response: %w", req.URL.Path, err)
	}

	return nil
}
