package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/agentev"
	"github.com/fwojciec/agentev/color"
	"github.com/fwojciec/agentev/fs"
	"github.com/fwojciec/agentev/gemini"
	"github.com/fwojciec/agentev/goquery"
	agenthttp "github.com/fwojciec/agentev/http"
	"github.com/fwojciec/agentev/search"
	agentslog "github.com/fwojciec/agentev/slog"
	"github.com/fwojciec/agentev/web"
	"github.com/fwojciec/agentev/wikipedia"
	"github.com/mattn/go-isatty"
)

// Per-request timeouts for the web branch.
const (
	pageTimeout   = 15 * time.Second
	scriptTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Terminal reports whether stdout is an interactive terminal. Controls
	// the banner and colored output.
	Terminal bool
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	fd := os.Stdout.Fd()
	return &Main{
		Terminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// Run executes the CLI with the given arguments. Prompts read from stdin;
// the report is written to stdout and progress notices to stderr.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("agentev"),
		kong.Description("Search local folders, a web page, Wikipedia and Gemini for one query"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars(vars),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	interactive := cli.Query == ""
	if interactive && m.Terminal && !cli.NoBanner {
		PrintBanner(stdout)
	}

	req, err := cli.Request(NewPrompter(stdin, stdout))
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintln(stdout, agentev.ErrorMessage(err))
		return nil
	}

	// Branches may report concurrently with --parallel.
	stderr = &lockedWriter{w: stderr}

	// Wire dependencies
	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	notify := func(format string, args ...any) {
		fmt.Fprintf(stderr, format+"\n", args...)
	}

	pageFetcher := agentslog.NewLoggingFetcher(agenthttp.NewFetcher(agenthttp.WithTimeout(pageTimeout)), logger)
	defer pageFetcher.Close()
	scriptFetcher := agentslog.NewLoggingFetcher(agenthttp.NewFetcher(agenthttp.WithTimeout(scriptTimeout)), logger)
	defer scriptFetcher.Close()

	var scriptOpts []goquery.Option
	if cli.SameOrigin {
		scriptOpts = append(scriptOpts, goquery.WithSameOrigin())
	}

	wikiOpts := []wikipedia.Option{wikipedia.WithLanguage(cli.Lang)}
	if cli.WikipediaURL != "" {
		wikiOpts = append(wikiOpts, wikipedia.WithEndpoint(cli.WikipediaURL))
	}

	geminiOpts := []gemini.Option{gemini.WithModel(cli.Model)}
	if cli.GeminiURL != "" {
		geminiOpts = append(geminiOpts, gemini.WithBaseURL(cli.GeminiURL))
	}

	aggregator := &search.Aggregator{
		Files: agentslog.NewLoggingFileSearcher(fs.NewSearcher(notify), logger),
		Web: agentslog.NewLoggingWebSearcher(&web.Searcher{
			PageFetcher:   pageFetcher,
			ScriptFetcher: scriptFetcher,
			Scripts:       goquery.NewScriptExtractor(scriptOpts...),
		}, logger),
		Encyclopedia: agentslog.NewLoggingEncyclopedia(wikipedia.NewClient(wikiOpts...), logger),
		Asker:        agentslog.NewLoggingAsker(gemini.NewAsker(cli.APIKey, geminiOpts...), logger),
		Parallel:     cli.Parallel,
		Notify:       notify,
	}

	report, err := aggregator.Search(ctx, req)
	if err != nil {
		return err
	}

	return color.NewReporter(stdout, m.Terminal && !cli.NoColor).Render(report)
}

// lockedWriter serializes writes to w.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
