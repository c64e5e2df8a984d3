package hoyolab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/jose-valero/hoyolab-gist-stats/internal/infra/config"
)

const (
	defaultBase   = "https://bbs-api-os.hoyolab.com"
	defaultLocale = "en-us"
)

type Client struct {
	account *config.Account
	http    *http.Client
	baseURL string
	locale  string
	log     *zap.Logger
}

func New(account *config.Account, opts ...Option) *Client {
	c := &Client{
		account: account,
		http:    &http.Client{},
		baseURL: defaultBase,
		locale:  defaultLocale,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) cookie() string {
	return fmt.Sprintf("ltoken_v2=%s; ltmid_v2=%s;", c.account.Token, c.account.TMID)
}

// getRaw: GET autenticado por cookie. Devuelve el body crudo solo con 200.
func (c *Client) getRaw(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("hoyolab request: %w", err)
	}
	req.Header.Set("x-rpc-language", c.locale)
	req.Header.Set("Cookie", c.cookie())
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hoyolab http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return nil, &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("hoyolab read body: %w", err)
	}
	return b, nil
}

// logResponse vuelca la respuesta completa; si es JSON la indenta.
func (c *Client) logResponse(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		c.log.Info("api response (raw):\n" + string(body))
		return
	}
	c.log.Info("api response:\n" + buf.String())
}
