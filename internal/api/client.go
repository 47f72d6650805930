package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hilbertsen/teamcal/internal/logging"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

const RequestIDHeader = "X-Request-ID"

// Client talks to the calendar API. The session cookie set by login is kept
// in the client's cookie jar.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		c.http.Jar = jar
	}
	return c, nil
}

// Cookies returns the cookies the client would send to the API.
func (c *Client) Cookies() []*http.Cookie {
	return c.http.Jar.Cookies(c.baseURL)
}

// SetCookies seeds the jar, for example with a session saved by an earlier run.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.http.Jar.SetCookies(c.baseURL, cookies)
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Params are query parameters. Nil values are dropped.
type Params map[string]any

func (p Params) encode() url.Values {
	values := url.Values{}
	for key, v := range p {
		switch x := v.(type) {
		case nil:
		case *time.Time:
			if x != nil {
				values.Set(key, FormatISO(*x))
			}
		case time.Time:
			values.Set(key, FormatISO(x))
		case string:
			values.Set(key, x)
		case int64:
			values.Set(key, strconv.FormatInt(x, 10))
		case int:
			values.Set(key, strconv.Itoa(x))
		case bool:
			values.Set(key, strconv.FormatBool(x))
		default:
			values.Set(key, fmt.Sprint(x))
		}
	}
	return values
}

func (c *Client) Get(ctx context.Context, path string, params Params, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, params Params, body, out any) error {
	fail := func(kind Kind, status int, detail string, err error) error {
		return &Error{Kind: kind, Method: method, Path: path, Status: status, Detail: detail, Err: err}
	}

	u := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")})
	if len(params) > 0 {
		u.RawQuery = params.encode().Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fail(KindDecode, 0, "", fmt.Errorf("failed to encode request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fail(KindTransport, 0, "", fmt.Errorf("failed to create request: %w", err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := logging.Component(ctx, c.logger, "api", method+" "+path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return fail(KindTransport, 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug("unexpected status", "status", resp.StatusCode)
		return fail(KindTransport, resp.StatusCode, "", nil)
	}

	var env dto.Envelope[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fail(KindDecode, resp.StatusCode, "", fmt.Errorf("failed to decode response: %w", err))
	}
	if !env.Success {
		return fail(KindRejected, resp.StatusCode, env.Error, nil)
	}
	if out == nil {
		return nil
	}

	result, err := rehydrate(env.Result)
	if err != nil {
		return fail(KindDecode, resp.StatusCode, "", err)
	}
	if err := decodeResult(result, out); err != nil {
		return fail(KindDecode, resp.StatusCode, "", err)
	}
	return nil
}

func decodeResult(raw json.RawMessage, out any) error {
	if b, ok := out.(*bool); ok {
		v, err := parseBool(raw)
		if err != nil {
			return err
		}
		*b = v
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}

// parseBool accepts both JSON booleans and the strings "true" and "false".
func parseBool(raw json.RawMessage) (bool, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, fmt.Errorf("failed to decode boolean result: %w", err)
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return false, fmt.Errorf("invalid boolean result %q", x)
		}
		return b, nil
	default:
		return false, fmt.Errorf("invalid boolean result %s", string(raw))
	}
}
