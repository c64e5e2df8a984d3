package hoyolab

import (
	"net/http"

	"go.uber.org/zap"
)

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}
func WithLocale(l string) Option {
	return func(c *Client) { c.locale = l }
}
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}
