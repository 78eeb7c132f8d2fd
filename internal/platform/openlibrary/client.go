package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// ErrUnavailable means Open Library could not be reached at the transport
// level (DNS, connect, timeout). Distinct from an HTTP error status.
var ErrUnavailable = errors.New("open library unavailable")

// ErrNotFound is returned when the upstream answers 404 for a book.
var ErrNotFound = errors.New("not found")

// StatusError carries a non-200 status from the upstream so callers can
// propagate it as-is.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("open library returned status %d", e.Code)
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(baseURL, userAgent string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   baseURL,
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// SearchResult matches search.json
type SearchResult struct {
	NumFound int         `json:"numFound"`
	Docs     []SearchDoc `json:"docs"`
}

type SearchDoc struct {
	Key              string   `json:"key"`
	CoverEditionKey  string   `json:"cover_edition_key"`
	EditionKeys      []string `json:"edition_key"`
	Title            *string  `json:"title"`
	AuthorNames      []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
}

// BookData matches books/{olid}.json
type BookData struct {
	Title       *string     `json:"title"`
	Description interface{} `json:"description"` // Can be string or {type: ..., value: ...}
	Authors     []AuthorRef `json:"authors"`
	Subjects    []string    `json:"subjects"`
	PublishDate *string     `json:"publish_date"`
}

type AuthorRef struct {
	Key string `json:"key"`
}

func (c *Client) Search(ctx context.Context, q string, page int) (*SearchResult, error) {
	u := fmt.Sprintf("%s/search.json?q=%s&page=%s",
		c.baseURL, url.QueryEscape(q), strconv.Itoa(page))

	var res SearchResult
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetBook(ctx context.Context, olid string) (*BookData, error) {
	u := fmt.Sprintf("%s/books/%s.json", c.baseURL, url.PathEscape(olid))

	var res BookData
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(target)
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{Code: resp.StatusCode}
	}
}
