// Package fetch performs the single HTTP GET that yields a page's HTML.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// Error is returned for every failure between building the request and
// decoding the body: malformed URL, DNS, connection, timeout or read errors.
type Error struct {
	URL string
	// Op is one of "request", "do", "read" or "decode".
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Response is the decoded result of one GET.
type Response struct {
	URL         string
	FinalURL    string
	Status      int
	ContentType string
	Body        string
}

// Client issues one GET per call. It does not retry, and it does not gate on
// the status code: an error page's body is returned like any other.
type Client struct {
	// HTTPClient is used when set; otherwise a client with Timeout is built.
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration
	// Charset forces the body encoding by label (e.g. "windows-1252").
	// Empty means detect from headers, BOM or <meta>.
	Charset string
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: c.Timeout}
}

// Get returns the response body decoded to UTF-8 text.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	resp, err := c.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return resp.Body, nil
}

// Fetch performs the GET and returns the body with response metadata.
func (c *Client) Fetch(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, &Error{URL: url, Op: "request", Err: err}
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return Response{}, &Error{URL: url, Op: "do", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &Error{URL: url, Op: "read", Err: err}
	}
	contentType := resp.Header.Get("Content-Type")
	body, err := c.decode(raw, contentType)
	if err != nil {
		return Response{}, &Error{URL: url, Op: "decode", Err: err}
	}

	final := url
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}
	log.Debug().
		Str("url", url).
		Str("final_url", final).
		Int("status", resp.StatusCode).
		Str("content_type", contentType).
		Int("bytes", len(raw)).
		Msg("fetched page")
	return Response{
		URL:         url,
		FinalURL:    final,
		Status:      resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// decode converts raw to UTF-8. A forced Charset wins. A body that declares
// nothing in its header or BOM and is valid UTF-8 passes through unchanged.
// Anything else goes through header, BOM and <meta> detection, falling back
// to windows-1252.
func (c *Client) decode(raw []byte, contentType string) (string, error) {
	if label := strings.TrimSpace(c.Charset); label != "" {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return "", fmt.Errorf("charset %q: %w", label, err)
		}
		b, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if headerCharset(contentType) == "" && !hasBOM(raw) && utf8.Valid(raw) {
		return string(raw), nil
	}
	enc, name, _ := charset.DetermineEncoding(raw, contentType)
	if name == "utf-8" {
		// Strip a UTF-8 BOM; invalid sequences become U+FFFD.
		raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	}
	b, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func headerCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(params["charset"])
}

func hasBOM(b []byte) bool {
	return bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(b, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(b, []byte{0xFF, 0xFE})
}
