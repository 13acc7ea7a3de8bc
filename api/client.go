package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ka2n/menu/log"
	"github.com/morikuni/failure/v2"
)

// Client talks to a menu service API rooted at a base URL
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the API at baseURL.
// Requests are logged at debug level unless another HTTP client is given.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Transport: log.Transport()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchToday fetches the menus the service considers today's
func (c *Client) FetchToday(ctx context.Context) ([]Menu, error) {
	body, err := c.get(ctx, "menu/date", nil)
	if err != nil {
		return nil, err
	}
	return parseMenus(body, "dated menus")
}

// FetchByDate fetches the menus served on the calendar day of date
func (c *Client) FetchByDate(ctx context.Context, date time.Time) ([]Menu, error) {
	q := url.Values{}
	q.Set("date", strconv.FormatInt(midnightUTC(date).UnixMilli(), 10))

	body, err := c.get(ctx, "menu/date", q)
	if err != nil {
		return nil, err
	}
	return parseMenus(body, "dated menus")
}

// FetchUpcoming fetches every menu that is yet to come
func (c *Client) FetchUpcoming(ctx context.Context) ([]Menu, error) {
	body, err := c.get(ctx, "menu/upcoming", nil)
	if err != nil {
		return nil, err
	}
	return parseMenus(body, "upcoming menus")
}

// FetchSearch fetches menus matching a free text query
func (c *Client) FetchSearch(ctx context.Context, query string) ([]Menu, error) {
	q := url.Values{}
	q.Set("query", query)

	body, err := c.get(ctx, "menu/search", q)
	if err != nil {
		return nil, err
	}
	return parseMenus(body, "searched menus")
}

// FetchInfo fetches the API root information object
func (c *Client) FetchInfo(ctx context.Context) (Info, error) {
	body, err := c.get(ctx, "", nil)
	if err != nil {
		return Info{}, err
	}
	return parseInfo(body)
}

// FetchMenuCount fetches how many menus the service knows about
func (c *Client) FetchMenuCount(ctx context.Context) (int64, error) {
	body, err := c.get(ctx, "stats/menu", nil)
	if err != nil {
		return 0, err
	}
	return parseCount(body)
}

// endpoint joins path onto the base URL with exactly one slash between them
func (c *Client) endpoint(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", failure.New(ConnectionFailure,
			failure.Message(fmt.Sprintf("Invalid api url '%s'", c.baseURL)),
		)
	}
	if path != "" {
		u = u.JoinPath(path)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, failure.New(ConnectionFailure,
			failure.Message(fmt.Sprintf("Failed to connect to api on '%s'", endpoint)),
			failure.Context{"error": err.Error()},
		)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, failure.New(ConnectionFailure,
			failure.Message(fmt.Sprintf("Failed to connect to api on '%s'", endpoint)),
			failure.Context{"error": err.Error()},
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure.New(ConnectionFailure,
			failure.Message(fmt.Sprintf("Failed to read content on '%s'", endpoint)),
			failure.Context{"error": err.Error()},
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, failure.New(ConnectionFailure,
			failure.Message(fmt.Sprintf("Api on '%s' responded with %s", endpoint, resp.Status)),
			failure.Context{"status": strconv.Itoa(resp.StatusCode)},
		)
	}

	return body, nil
}
