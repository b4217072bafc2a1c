package agentev

import "strings"

// SearchRequest holds the user's input for one run.
type SearchRequest struct {
	Query   string
	Folders []string
	URL     string
}

// Validate returns an error if the request cannot be searched.
func (r *SearchRequest) Validate() error {
	if r.Query == "" {
		return Errorf(EINVALID, "Query cannot be empty. Exiting.")
	}
	return nil
}

// ParseFolders splits a comma-separated folder list, trimming whitespace
// and dropping empty entries.
func ParseFolders(s string) []string {
	var folders []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			folders = append(folders, p)
		}
	}
	return folders
}

// SearchReport aggregates the outcome of every branch of one run.
type SearchReport struct {
	Query string

	// Local is nil when no folders were given.
	Local *LocalResult

	// Web is nil when no URL was given.
	Web *WebResult

	Encyclopedia EncyclopediaResult
	AI           AIResult
}

// LocalResult holds matches from local files.
type LocalResult struct {
	Matches []*Match
}

// WebResult holds matches from a web page, or the error that prevented
// fetching it.
type WebResult struct {
	Matches []*Match
	Err     error
}

// NewWebResult builds a WebResult, dropping matches when err is set.
func NewWebResult(matches []*Match, err error) *WebResult {
	if err != nil {
		return &WebResult{Err: err}
	}
	return &WebResult{Matches: matches}
}

// EncyclopediaResult holds either an article or a lookup error.
type EncyclopediaResult struct {
	Article *Article
	Err     error
}

// NewEncyclopediaResult builds an EncyclopediaResult with exactly one field set.
func NewEncyclopediaResult(article *Article, err error) EncyclopediaResult {
	if err == nil && article == nil {
		err = Errorf(EINTERNAL, "An error occurred: empty lookup result")
	}
	if err != nil {
		return EncyclopediaResult{Err: err}
	}
	return EncyclopediaResult{Article: article}
}

// AIResult holds either a model answer or the error that prevented one.
type AIResult struct {
	Answer string
	Err    error
}

// NewAIResult builds an AIResult with exactly one field set.
func NewAIResult(answer string, err error) AIResult {
	if err != nil {
		return AIResult{Err: err}
	}
	return AIResult{Answer: answer}
}
