// Package goquery implements HTML inspection on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/agentev"
)

// Ensure ScriptExtractor implements agentev.ScriptExtractor at compile time.
var _ agentev.ScriptExtractor = (*ScriptExtractor)(nil)

// ScriptExtractor finds <script src> tags in HTML.
type ScriptExtractor struct {
	sameOrigin bool
}

// Option configures a ScriptExtractor.
type Option func(*ScriptExtractor)

// WithSameOrigin restricts extracted scripts to the host of the base URL.
func WithSameOrigin() Option {
	return func(e *ScriptExtractor) {
		e.sameOrigin = true
	}
}

// NewScriptExtractor creates a new ScriptExtractor.
func NewScriptExtractor(opts ...Option) *ScriptExtractor {
	e := &ScriptExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractScripts returns the absolute URL of every external script in
// document order. Inline scripts and non-HTTP sources are skipped.
// Duplicates are kept so that every tag maps to one fetch.
func (e *ScriptExtractor) ExtractScripts(html, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, agentev.Errorf(agentev.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, agentev.Errorf(agentev.EINVALID, "failed to parse HTML: %v", err)
	}

	var scripts []string
	doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		src = strings.TrimSpace(src)
		if src == "" || isNonHTTPLink(src) {
			return
		}

		resolved := resolveURL(base, src)
		if resolved == "" {
			return
		}

		if e.sameOrigin && !isSameHost(base, resolved) {
			return
		}

		scripts = append(scripts, resolved)
	})

	return scripts, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the reference cannot be parsed.
// Fragments are stripped since they never reach the server.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(u)
	resolved.Fragment = ""
	return resolved.String()
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// This uses exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a reference is a non-HTTP link that should be skipped.
func isNonHTTPLink(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(ref, "javascript:") ||
		strings.HasPrefix(ref, "mailto:") ||
		strings.HasPrefix(ref, "tel:") ||
		strings.HasPrefix(ref, "data:")
}
