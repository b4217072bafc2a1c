// Package wikipedia implements agentev.Encyclopedia using the MediaWiki
// action API.
package wikipedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/agentev"
	"github.com/tidwall/gjson"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent is sent with every request, as required by the
// Wikimedia API etiquette.
const DefaultUserAgent = "Agentev/1.0 (search aggregator)"

// SummarySentences is the number of sentences requested for a summary.
const SummarySentences = 3

// Ensure Client implements agentev.Encyclopedia at compile time.
var _ agentev.Encyclopedia = (*Client)(nil)

// Client looks up page summaries on Wikipedia.
type Client struct {
	client    *http.Client
	endpoint  string
	timeout   time.Duration
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithLanguage selects the Wikipedia language edition, e.g. "en" or "de".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.endpoint = endpointFor(lang)
	}
}

// WithEndpoint overrides the api.php URL. Used to point at test servers.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the timeout for each API request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Client for English Wikipedia unless configured
// otherwise.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:  endpointFor("en"),
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

func endpointFor(lang string) string {
	return "https://" + lang + ".wikipedia.org/w/api.php"
}

// Lookup returns the canonical title and a short plain-text summary of the
// page named term. Redirects are followed; the term is used literally with
// no search suggestions.
func (c *Client) Lookup(ctx context.Context, term string) (*agentev.Article, error) {
	summary, err := c.Summary(ctx, term)
	if err != nil {
		return nil, err
	}

	title, err := c.Title(ctx, term)
	if err != nil {
		return nil, err
	}

	return &agentev.Article{Title: title, Summary: summary}, nil
}

// Summary returns the first sentences of the intro of the page named term.
func (c *Client) Summary(ctx context.Context, term string) (string, error) {
	page, err := c.queryPage(ctx, url.Values{
		"titles":      {term},
		"prop":        {"extracts|pageprops"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"exsentences": {fmt.Sprint(SummarySentences)},
		"ppprop":      {"disambiguation"},
	})
	if err != nil {
		return "", err
	}

	if page.Get("pageprops.disambiguation").Exists() {
		return "", agentev.Errorf(agentev.EAMBIGUOUS, "%q may refer to several pages.", term)
	}

	return page.Get("extract").String(), nil
}

// Title returns the canonical title of the page named term.
func (c *Client) Title(ctx context.Context, term string) (string, error) {
	page, err := c.queryPage(ctx, url.Values{
		"titles": {term},
		"prop":   {"info"},
	})
	if err != nil {
		return "", err
	}
	return page.Get("title").String(), nil
}

// queryPage runs an action=query request and returns the first page,
// translating missing and invalid pages into application errors.
func (c *Client) queryPage(ctx context.Context, params url.Values) (gjson.Result, error) {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("redirects", "1")

	body, err := c.get(ctx, params)
	if err != nil {
		return gjson.Result{}, agentev.Errorf(agentev.EUNAVAILABLE, "An error occurred: %v", err)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, agentev.Errorf(agentev.EINTERNAL, "An error occurred: invalid JSON response")
	}
	result := gjson.ParseBytes(body)

	if apiErr := result.Get("error"); apiErr.Exists() {
		return gjson.Result{}, agentev.Errorf(agentev.EUNAVAILABLE, "An error occurred: %s: %s",
			apiErr.Get("code").String(), apiErr.Get("info").String())
	}

	page := result.Get("query.pages.0")
	switch {
	case !page.Exists(), page.Get("missing").Bool():
		return gjson.Result{}, agentev.Errorf(agentev.ENOTFOUND, "Page not found.")
	case page.Get("invalid").Bool():
		return gjson.Result{}, agentev.Errorf(agentev.EINVALID, "An error occurred: invalid title: %s",
			page.Get("invalidreason").String())
	}

	return page, nil
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
