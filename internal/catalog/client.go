// Package catalog is the client for the secondary catalog/address API.
// Any 2xx body is passed through untouched, JSON or not; failures are
// wrapped as apperr.ErrUpstream and never retried.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MikeMC777/marketplace-api/internal/apperr"
)

// maxBody bounds how much of an upstream response is read into memory.
const maxBody = 8 << 20

// Payload is an upstream body and the content type it was served with.
type Payload struct {
	Body        []byte
	ContentType string
}

// JSON reports whether the body is empty or a JSON document.
func (p *Payload) JSON() bool {
	return len(bytes.TrimSpace(p.Body)) == 0 || json.Valid(p.Body)
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
	Log     *zap.Logger
}

// New builds a client for baseURL. A zero timeout leaves the client without one.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
		Log:     log,
	}
}

func (c *Client) Products(ctx context.Context) (*Payload, error) {
	return c.get(ctx, "/products")
}

func (c *Client) Product(ctx context.Context, id string) (*Payload, error) {
	return c.get(ctx, "/products/"+url.PathEscape(id))
}

func (c *Client) AddressByCEP(ctx context.Context, cep string) (*Payload, error) {
	return c.get(ctx, "/address/"+url.PathEscape(cep))
}

func (c *Client) get(ctx context.Context, path string) (*Payload, error) {
	body, err := c.do(ctx, path)
	if err != nil {
		c.Log.Debug("secondary api request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("GET %s: %w: %w", path, apperr.ErrUpstream, err)
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, path string) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	return &Payload{Body: body, ContentType: res.Header.Get("Content-Type")}, nil
}
