// Package client talks to a running sleuthd.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

var (
	ErrUnexpectedResponse = errors.New("unexpected response code")
)

type Client struct {
	Server string
}

func NewClient(server string) (*Client, error) {
	client := &Client{
		Server: server,
	}
	return client, nil
}

// InferSchema posts a raw JSON document and returns the schema JSON
// rendered by the service.
func (c *Client) InferSchema(ctx context.Context, doc []byte) ([]byte, error) {
	return c.post(ctx, c.formatURL("/v1/schema"), doc)
}

// GenerateTypes posts a raw JSON document and returns generated Go
// type declarations. pkg and name may be empty for the service
// defaults.
func (c *Client) GenerateTypes(ctx context.Context, doc []byte, pkg, name string) ([]byte, error) {
	u := c.formatURL("/v1/types")
	q := url.Values{}
	if pkg != "" {
		q.Set("pkg", pkg)
	}
	if name != "" {
		q.Set("type", name)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return c.post(ctx, u, doc)
}

func (c *Client) post(ctx context.Context, u string, doc []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")

	client := http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedResponse, res.StatusCode)
	}

	return io.ReadAll(res.Body)
}

func (c *Client) formatURL(path string) string {
	return fmt.Sprintf("%s%s", c.Server, path)
}
