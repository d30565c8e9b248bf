package met

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Collection defines the two collection API operations artex depends on.
// It is implemented by *Client and can be faked in tests.
type Collection interface {
	Search(ctx context.Context, query string) (SearchResponse, error)
	Object(ctx context.Context, id int64) (Artwork, error)
}

// Ensure Client implements Collection at compile time.
var _ Collection = (*Client)(nil)

// Client talks to the collection HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public collection API host.
	DefaultBaseURL = "https://collectionapi.metmuseum.org"

	defaultUserAgent = "artex/0.1"
	defaultTimeout   = 10 * time.Second

	searchPath = "/public/collection/v1/search"
	objectPath = "/public/collection/v1/objects/"
)

// Option customises a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty value uses DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// Search runs a free-text collection search.
func (c *Client) Search(ctx context.Context, query string) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("q", query)
	rel := &url.URL{Path: searchPath, RawQuery: values.Encode()}
	var payload SearchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return SearchResponse{}, err
	}
	return payload, nil
}

// Object retrieves the full record for one object id.
func (c *Client) Object(ctx context.Context, id int64) (Artwork, error) {
	if c == nil {
		return Artwork{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return Artwork{}, fmt.Errorf("object id required")
	}
	rel := &url.URL{Path: objectPath + strconv.FormatInt(id, 10)}
	var payload Artwork
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return Artwork{}, err
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
