// Package web implements agentev.WebSearcher by fetching a page and the
// scripts it references, and grepping their bodies.
package web

import (
	"context"

	"github.com/fwojciec/agentev"
)

// Ensure Searcher implements agentev.WebSearcher at compile time.
var _ agentev.WebSearcher = (*Searcher)(nil)

// Searcher greps a page's HTML and then each of its external scripts.
type Searcher struct {
	// PageFetcher fetches the page itself.
	PageFetcher agentev.Fetcher

	// ScriptFetcher fetches each script. Usually configured with a shorter
	// timeout than PageFetcher.
	ScriptFetcher agentev.Fetcher

	// Scripts finds script URLs in the page.
	Scripts agentev.ScriptExtractor
}

// SearchPage fetches pageURL and returns HTML matches followed by script
// matches in tag order. Scripts are fetched one after another; a failing
// script is skipped without affecting the others.
func (s *Searcher) SearchPage(ctx context.Context, pageURL, query string) ([]*agentev.Match, error) {
	html, err := s.PageFetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, agentev.Errorf(agentev.EUNAVAILABLE, "Request error accessing website: %v", err)
	}

	matches := agentev.FindMatches(html, query, agentev.HTMLSource(pageURL))

	scripts, err := s.Scripts.ExtractScripts(html, pageURL)
	if err != nil {
		// The HTML was fetched and grepped; unparseable markup only means
		// no scripts to follow.
		return matches, nil
	}

	for _, scriptURL := range scripts {
		if err := ctx.Err(); err != nil {
			return matches, nil
		}

		body, err := s.ScriptFetcher.Fetch(ctx, scriptURL)
		if err != nil {
			continue
		}
		matches = append(matches, agentev.FindMatches(body, query, agentev.ScriptSource(scriptURL))...)
	}

	return matches, nil
}
