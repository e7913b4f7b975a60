package shortener

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrEmptyBody        = errors.New("empty response body")
)

// DefaultEndpoint is the path the Shorty service accepts new links on.
const DefaultEndpoint = "/s"

// request is the JSON body of a shortening request.
type request struct {
	URL string `json:"url"`
}

// Client talks to a Shorty service over HTTP.
type Client struct {
	http     *resty.Client
	endpoint string
}

// New returns a client for the service at baseURL. A zero timeout leaves
// the transport default in place.
func New(baseURL, endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := resty.New().SetBaseURL(strings.TrimRight(baseURL, "/"))
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c, endpoint: endpoint}
}

// Shorten posts raw as-is and returns the plain-text short URL from the
// response body.
func (c *Client) Shorten(ctx context.Context, raw string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request{URL: raw}).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", c.endpoint, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("post %s: %w: %s", c.endpoint, ErrUnexpectedStatus, resp.Status())
	}
	short := strings.TrimSpace(resp.String())
	if short == "" {
		return "", fmt.Errorf("post %s: %w", c.endpoint, ErrEmptyBody)
	}
	return short, nil
}
