package search_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/agentev"
	"github.com/fwojciec/agentev/mock"
	"github.com/fwojciec/agentev/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects notices and branch calls in order.
type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) log(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// newAggregator returns an Aggregator whose branches all succeed and
// record their invocation in rec.
func newAggregator(rec *recorder) *search.Aggregator {
	return &search.Aggregator{
		Files: &mock.FileSearcher{
			SearchFilesFn: func(_ context.Context, query string, folders []string) ([]*agentev.Match, error) {
				rec.log("files")
				return []*agentev.Match{{Source: "a.txt", Line: 2, Text: query}}, nil
			},
		},
		Web: &mock.WebSearcher{
			SearchPageFn: func(_ context.Context, pageURL, query string) ([]*agentev.Match, error) {
				rec.log("web")
				return []*agentev.Match{{Source: agentev.HTMLSource(pageURL), Line: 1, Text: query}}, nil
			},
		},
		Encyclopedia: &mock.Encyclopedia{
			LookupFn: func(_ context.Context, term string) (*agentev.Article, error) {
				rec.log("encyclopedia")
				return &agentev.Article{Title: term, Summary: "summary"}, nil
			},
		},
		Asker: &mock.Asker{
			AskFn: func(_ context.Context, question string) (string, error) {
				rec.log("ask")
				return "answer", nil
			},
		},
	}
}

func TestAggregator_Search(t *testing.T) {
	t.Parallel()

	t.Run("runs branches in fixed order", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		agg := newAggregator(rec)
		agg.Notify = rec.log

		report, err := agg.Search(context.Background(), agentev.SearchRequest{
			Query:   "go",
			Folders: []string{"/tmp"},
			URL:     "https://example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"files",
			"[WEB PARSING] Searching for 'go' on page: https://example.com",
			"web",
			"[WIKIPEDIA] Searching...",
			"encyclopedia",
			"[GEMINI] Querying AI...",
			"ask",
		}, rec.all())
		assert.Equal(t, "go", report.Query)
		require.NotNil(t, report.Local)
		assert.Len(t, report.Local.Matches, 1)
		require.NotNil(t, report.Web)
		assert.Len(t, report.Web.Matches, 1)
		assert.Equal(t, "go", report.Encyclopedia.Article.Title)
		assert.Equal(t, "answer", report.AI.Answer)
	})

	t.Run("rejects empty query without running branches", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		agg := newAggregator(rec)

		report, err := agg.Search(context.Background(), agentev.SearchRequest{Folders: []string{"/tmp"}})

		require.Error(t, err)
		assert.Nil(t, report)
		assert.Equal(t, agentev.EINVALID, agentev.ErrorCode(err))
		assert.Empty(t, rec.all())
	})

	t.Run("omits local and web sections when not requested", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		agg := newAggregator(rec)

		report, err := agg.Search(context.Background(), agentev.SearchRequest{Query: "go"})

		require.NoError(t, err)
		assert.Nil(t, report.Local)
		assert.Nil(t, report.Web)
		assert.NotNil(t, report.Encyclopedia.Article)
		assert.Equal(t, []string{"encyclopedia", "ask"}, rec.all())
	})

	t.Run("keeps local section when nothing matched", func(t *testing.T) {
		t.Parallel()

		agg := newAggregator(&recorder{})
		agg.Files = &mock.FileSearcher{
			SearchFilesFn: func(context.Context, string, []string) ([]*agentev.Match, error) {
				return nil, nil
			},
		}

		report, err := agg.Search(context.Background(), agentev.SearchRequest{Query: "go", Folders: []string{"/missing"}})

		require.NoError(t, err)
		require.NotNil(t, report.Local)
		assert.Empty(t, report.Local.Matches)
	})

	t.Run("isolates branch failures", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		agg := newAggregator(rec)
		agg.Web = &mock.WebSearcher{
			SearchPageFn: func(context.Context, string, string) ([]*agentev.Match, error) {
				rec.log("web")
				return nil, agentev.Errorf(agentev.EUNAVAILABLE, "Request error accessing website: refused")
			},
		}
		agg.Encyclopedia = &mock.Encyclopedia{
			LookupFn: func(context.Context, string) (*agentev.Article, error) {
				rec.log("encyclopedia")
				return nil, agentev.Errorf(agentev.ENOTFOUND, "Page not found.")
			},
		}
		agg.Asker = &mock.Asker{
			AskFn: func(context.Context, string) (string, error) {
				rec.log("ask")
				return "", errors.New("boom")
			},
		}

		report, err := agg.Search(context.Background(), agentev.SearchRequest{
			Query:   "go",
			Folders: []string{"/tmp"},
			URL:     "https://example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"files", "web", "encyclopedia", "ask"}, rec.all())
		assert.Len(t, report.Local.Matches, 1)
		assert.Equal(t, agentev.EUNAVAILABLE, agentev.ErrorCode(report.Web.Err))
		assert.Empty(t, report.Web.Matches)
		assert.Equal(t, agentev.ENOTFOUND, agentev.ErrorCode(report.Encyclopedia.Err))
		assert.Nil(t, report.Encyclopedia.Article)
		assert.EqualError(t, report.AI.Err, "boom")
	})

	t.Run("parallel produces the same report", func(t *testing.T) {
		t.Parallel()

		req := agentev.SearchRequest{Query: "go", Folders: []string{"/tmp"}, URL: "https://example.com"}

		sequential, err := newAggregator(&recorder{}).Search(context.Background(), req)
		require.NoError(t, err)

		rec := &recorder{}
		agg := newAggregator(rec)
		agg.Parallel = true
		agg.Notify = rec.log
		parallel, err := agg.Search(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, sequential, parallel)
		assert.ElementsMatch(t, []string{
			"files",
			"[WEB PARSING] Searching for 'go' on page: https://example.com",
			"web",
			"[WIKIPEDIA] Searching...",
			"encyclopedia",
			"[GEMINI] Querying AI...",
			"ask",
		}, rec.all())
	})

	t.Run("parallel serializes notices", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		agg := newAggregator(&recorder{})
		agg.Parallel = true
		agg.Notify = func(format string, args ...any) {
			fmt.Fprintf(&buf, format+"\n", args...)
		}

		_, err := agg.Search(context.Background(), agentev.SearchRequest{Query: "go", URL: "https://example.com"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"[WEB PARSING] Searching for 'go' on page: https://example.com",
			"[WIKIPEDIA] Searching...",
			"[GEMINI] Querying AI...",
		}, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
	})
}
