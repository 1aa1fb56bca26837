package acs

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// Response is the decoded outcome of a transport call. The body is fully
// read before Do returns so callers never deal with stream lifetimes.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the response body into out.
func (r *Response) Decode(out any) error {
	if len(r.Body) == 0 {
		return errors.New("empty response body")
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// authorizer mutates an outgoing request with whatever credential the
// client carries. Body bytes are passed in because HMAC signing covers
// the content hash.
type authorizer func(req *http.Request, body []byte)

// Client is a JSON-over-HTTP client for Communication Services endpoints.
// Construct it with NewHMACClient (resource-key auth, used by SMS, email
// and identity) or NewBearerClient (user token auth, used by chat).
type Client struct {
	endpoint   string
	authorize  authorizer
	httpClient *http.Client

	// now is injectable so signature tests can pin the x-ms-date header.
	now func() time.Time
}

// NewHMACClient creates a client that signs every request with the
// resource access key from the connection string.
func NewHMACClient(cs ConnectionString) *Client {
	c := &Client{
		endpoint:   cs.Endpoint,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		now:        time.Now,
	}
	c.authorize = func(req *http.Request, body []byte) {
		signRequest(req, body, cs.AccessKey, c.now().UTC())
	}
	return c
}

// NewBearerClient creates a client that authenticates with a user access
// token, as the chat API requires.
func NewBearerClient(endpoint, token string) *Client {
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		now:        time.Now,
		authorize: func(req *http.Request, _ []byte) {
			req.Header.Set("Authorization", "Bearer "+token)
		},
	}
}

// Endpoint returns the resource URL this client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		// Already has a deadline; no need to wrap again.
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// Do issues a JSON request against the resource. pathAndQuery is either a
// path like "/sms?api-version=..." or an absolute URL (pagination links
// come back absolute). A nil payload sends an empty body.
func (c *Client) Do(ctx context.Context, method, pathAndQuery string, payload any) (*Response, error) {
	// Keep individual requests bounded in time.
	ctx, cancel := withTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request payload: %w", err)
		}
	}

	target := pathAndQuery
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.endpoint + pathAndQuery
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, body)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("request timeout or canceled: %w", err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return out, fmt.Errorf("%s %s returned status %d: %s",
			method, pathAndQuery, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return out, nil
}

// signRequest applies the Communication Services HMAC-SHA256 scheme:
// the signature covers the verb, the path with query, the UTC date, the
// host and the base64 SHA-256 of the body, and is carried alongside
// x-ms-date and x-ms-content-sha256 headers.
func signRequest(req *http.Request, body []byte, key []byte, at time.Time) {
	contentHash := sha256.Sum256(body)
	encodedHash := base64.StdEncoding.EncodeToString(contentHash[:])
	date := at.Format(http.TimeFormat)

	pathAndQuery := req.URL.Path
	if req.URL.RawQuery != "" {
		pathAndQuery += "?" + req.URL.RawQuery
	}

	stringToSign := fmt.Sprintf("%s\n%s\n%s;%s;%s",
		req.Method, pathAndQuery, date, req.URL.Host, encodedHash)

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(stringToSign))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req.Header.Set("x-ms-date", date)
	req.Header.Set("x-ms-content-sha256", encodedHash)
	req.Header.Set("Authorization",
		"HMAC-SHA256 SignedHeaders=x-ms-date;host;x-ms-content-sha256&Signature="+signature)
}
