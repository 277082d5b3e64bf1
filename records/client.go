package records

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andareed/wrwatch/logging"
	"github.com/tidwall/gjson"
)

const (
	categoryPath   = "/api/outlast/category/"
	categoriesPath = "/api/outlast/categories"
	userAgent      = "wrwatch"
)

// Fetcher is the read side of the records backend.
type Fetcher interface {
	FetchCategory(ctx context.Context, key Key) (Record, error)
	FetchAll(ctx context.Context) ([]Entry, error)
}

// Client talks to the records backend over HTTP. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for baseURL. A zero timeout means requests may
// hang until the context is cancelled.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchCategory returns the record for key.
func (c *Client) FetchCategory(ctx context.Context, key Key) (Record, error) {
	body, err := c.get(ctx, categoryPath+url.PathEscape(string(key)))
	if err != nil {
		return Record{}, err
	}
	doc := gjson.ParseBytes(body)
	if !gjson.ValidBytes(body) || !doc.IsObject() {
		return Record{}, fmt.Errorf("%w: category %q: body is not a JSON object", ErrParse, key)
	}
	rec, err := decodeRecord(doc)
	if err != nil {
		return Record{}, fmt.Errorf("category %q: %w", key, err)
	}
	return rec, nil
}

// FetchAll returns every category that has a record, in the order the backend
// listed them. Null entries are dropped.
func (c *Client) FetchAll(ctx context.Context) ([]Entry, error) {
	body, err := c.get(ctx, categoriesPath)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: categories: invalid JSON", ErrParse)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: categories: body is not a JSON object", ErrParse)
	}

	var (
		entries []Entry
		decErr  error
	)
	doc.ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.Null {
			logging.Debugf("categories: %s has no record, skipping", k.String())
			return true
		}
		rec, err := decodeRecord(v)
		if err != nil {
			decErr = fmt.Errorf("categories[%s]: %w", k.String(), err)
			return false
		}
		entries = append(entries, Entry{Key: Key(k.String()), Record: rec})
		return true
	})
	if decErr != nil {
		return nil, decErr
	}
	return entries, nil
}

func decodeRecord(v gjson.Result) (Record, error) {
	if !v.IsObject() {
		return Record{}, fmt.Errorf("%w: record is not an object", ErrParse)
	}
	if v.Get("category").Type != gjson.String {
		return Record{}, fmt.Errorf("%w: record has no category name", ErrParse)
	}
	var rec Record
	if err := json.Unmarshal([]byte(v.Raw), &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return rec, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	logging.Debugf("GET %s", u)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: u, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return body, nil
}
