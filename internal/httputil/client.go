package httputil

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// NewClientFromConfig returns a client whose relative request URLs resolve
// against addr, authenticating as cfg says.
func NewClientFromConfig(addr string, cfg HTTPClientConfig, userAgent string) (*http.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid http client config: %w", err)
	}
	var rt http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   64,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}
	switch {
	case len(cfg.BearerToken) > 0:
		rt = &bearerAuthRoundTripper{bearerToken: cfg.BearerToken, rt: rt}
	case cfg.BasicAuth != nil:
		rt = &basicAuthRoundTripper{username: cfg.BasicAuth.Username, password: cfg.BasicAuth.Password, rt: rt}
	}
	rt = &prefixRoundTripper{addr: addr, userAgent: userAgent, rt: rt}
	return &http.Client{Transport: rt, Timeout: 30 * time.Second}, nil
}

type prefixRoundTripper struct {
	addr      string
	userAgent string
	rt        http.RoundTripper
}

func (p *prefixRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	u := r.URL
	if u.Scheme == "" {
		u.Scheme = "http"
	}
	if u.Host == "" {
		u.Host = p.addr
		r.Host = p.addr
	}
	if p.userAgent != "" && r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", p.userAgent)
	}
	return p.rt.RoundTrip(r)
}

type bearerAuthRoundTripper struct {
	bearerToken string
	rt          http.RoundTripper
}

// RoundTrip keeps an Authorization header that is already set.
func (rt *bearerAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(req.Header.Get("Authorization")) == 0 {
		req.Header.Set("Authorization", "Bearer "+rt.bearerToken)
	}
	return rt.rt.RoundTrip(req)
}

type basicAuthRoundTripper struct {
	username string
	password string
	rt       http.RoundTripper
}

func (rt *basicAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(req.Header.Get("Authorization")) != 0 {
		return rt.rt.RoundTrip(req)
	}
	req.SetBasicAuth(rt.username, strings.TrimSpace(rt.password))
	return rt.rt.RoundTrip(req)
}
