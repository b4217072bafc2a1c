package agentev

import "context"

// FileSearcher greps text files below a set of folders.
type FileSearcher interface {
	// SearchFiles returns matches for query across all folders, in folder
	// order, then file order, then line order. Missing folders and unreadable
	// files are skipped rather than reported as errors.
	SearchFiles(ctx context.Context, query string, folders []string) ([]*Match, error)
}

// WebSearcher greps a web page and the scripts it references.
type WebSearcher interface {
	// SearchPage returns matches in the page HTML followed by matches in its
	// scripts. Returns EUNAVAILABLE if the page itself cannot be fetched.
	SearchPage(ctx context.Context, pageURL, query string) ([]*Match, error)
}

// Article is a short encyclopedia entry.
type Article struct {
	Title   string
	Summary string
}

// Encyclopedia looks up short summaries of topics.
type Encyclopedia interface {
	// Lookup returns a summary of the page named term.
	// Returns ENOTFOUND if there is no such page and EAMBIGUOUS if the term
	// names a disambiguation page.
	Lookup(ctx context.Context, term string) (*Article, error)
}
