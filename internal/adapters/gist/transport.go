package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const defaultBase = "https://api.github.com"

type Client struct {
	token   string
	http    *http.Client
	baseURL string
	log     *zap.Logger
}

func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		http:    &http.Client{},
		baseURL: defaultBase,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// doJSON: manda in como body JSON con Bearer y falla con *APIError si no es 2xx.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("github encode: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("github request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("github request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("github http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		apiErr := &APIError{Method: method, Path: path, Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
		c.log.Warn("github request rejected", zap.String("method", method), zap.String("path", path), zap.Int("status", res.StatusCode))
		return apiErr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
