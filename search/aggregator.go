// Package search runs every search branch for a query and collects the
// results into an agentev.SearchReport.
package search

import (
	"context"
	"sync"

	"github.com/fwojciec/agentev"
	"golang.org/x/sync/errgroup"
)

// Aggregator runs the local, web, encyclopedia and AI branches.
// Each branch's failure is recorded in its own section of the report and
// never stops the other branches.
type Aggregator struct {
	Files        agentev.FileSearcher
	Web          agentev.WebSearcher
	Encyclopedia agentev.Encyclopedia
	Asker        agentev.Asker

	// Parallel runs the branches concurrently. The report is identical
	// either way; only progress notices may interleave.
	Parallel bool

	// Notify receives progress notices. May be nil. Calls made by the
	// Aggregator itself are serialized, even when Parallel is set.
	Notify agentev.LogFunc

	mu sync.Mutex
}

// Search validates req and runs all applicable branches.
// The only error returned is for an invalid request.
func (a *Aggregator) Search(ctx context.Context, req agentev.SearchRequest) (*agentev.SearchReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	report := &agentev.SearchReport{Query: req.Query}
	branches := []func(context.Context){
		func(ctx context.Context) { a.searchFiles(ctx, req, report) },
		func(ctx context.Context) { a.searchWeb(ctx, req, report) },
		func(ctx context.Context) { a.lookup(ctx, req, report) },
		func(ctx context.Context) { a.ask(ctx, req, report) },
	}

	if !a.Parallel {
		for _, branch := range branches {
			branch(ctx)
		}
		return report, nil
	}

	// Each branch writes a distinct field of report.
	g, gctx := errgroup.WithContext(ctx)
	for _, branch := range branches {
		g.Go(func() error {
			branch(gctx)
			return nil
		})
	}
	_ = g.Wait()
	return report, nil
}

func (a *Aggregator) searchFiles(ctx context.Context, req agentev.SearchRequest, report *agentev.SearchReport) {
	if len(req.Folders) == 0 {
		return
	}
	// Local search never reports failures; partial results are kept.
	matches, _ := a.Files.SearchFiles(ctx, req.Query, req.Folders)
	report.Local = &agentev.LocalResult{Matches: matches}
}

func (a *Aggregator) searchWeb(ctx context.Context, req agentev.SearchRequest, report *agentev.SearchReport) {
	if req.URL == "" {
		return
	}
	a.notify("[WEB PARSING] Searching for '%s' on page: %s", req.Query, req.URL)
	report.Web = agentev.NewWebResult(a.Web.SearchPage(ctx, req.URL, req.Query))
}

func (a *Aggregator) lookup(ctx context.Context, req agentev.SearchRequest, report *agentev.SearchReport) {
	a.notify("[WIKIPEDIA] Searching...")
	report.Encyclopedia = agentev.NewEncyclopediaResult(a.Encyclopedia.Lookup(ctx, req.Query))
}

func (a *Aggregator) ask(ctx context.Context, req agentev.SearchRequest, report *agentev.SearchReport) {
	a.notify("[GEMINI] Querying AI...")
	report.AI = agentev.NewAIResult(a.Asker.Ask(ctx, req.Query))
}

func (a *Aggregator) notify(format string, args ...any) {
	if a.Notify == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Notify(format, args...)
}
