package gist

import (
	"net/http"

	"go.uber.org/zap"
)

type Option func(*Client)

// WithHTTPClient reemplaza el http.Client (timeouts, transport de tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithBaseURL apunta a otra API de GitHub (Enterprise o un httptest).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLogger: los requests rechazados se loguean con método, path y status.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}
