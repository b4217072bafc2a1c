package main

import (
	"strings"

	"github.com/fwojciec/agentev"
	"github.com/fwojciec/agentev/gemini"
)

// CLI defines the command-line interface structure for Kong.
// Without --query the program prompts for its input interactively.
type CLI struct {
	Query      string   `short:"q" help:"Search query (skips the interactive prompts)"`
	Folders    []string `short:"f" sep:"," help:"Folders for local search, separated by comma"`
	URL        string   `short:"u" name:"url" help:"Web page to fetch and search, including its scripts"`
	APIKey     string   `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model      string   `default:"${model}" help:"Gemini model"`
	Lang       string   `default:"en" help:"Wikipedia language edition"`
	Parallel   bool     `help:"Run the search branches concurrently"`
	SameOrigin bool     `name:"same-origin" help:"Only fetch scripts served from the page's host"`
	Verbose    bool     `short:"v" help:"Log every request to stderr"`
	NoBanner   bool     `name:"no-banner" help:"Do not clear the screen or print the banner"`
	NoColor    bool     `name:"no-color" help:"Disable colored output"`

	WikipediaURL string `name:"wikipedia-url" hidden:"" help:"Override the Wikipedia api.php endpoint"`
	GeminiURL    string `name:"gemini-url" hidden:"" help:"Override the Gemini API base URL"`
}

// Request builds the search request, prompting for anything not given on
// the command line. Prompting only happens when --query is absent.
func (c *CLI) Request(p *Prompter) (agentev.SearchRequest, error) {
	req := agentev.SearchRequest{
		Query:   strings.TrimSpace(c.Query),
		Folders: agentev.ParseFolders(strings.Join(c.Folders, ",")),
		URL:     strings.TrimSpace(c.URL),
	}
	if req.Query != "" {
		return req, nil
	}

	query, err := p.Ask("Enter search query: ")
	if err != nil {
		return req, err
	}
	req.Query = strings.TrimSpace(query)
	if req.Query == "" {
		return req, nil
	}

	if len(c.Folders) == 0 {
		folders, err := p.Ask("Enter folders for local search, separated by comma (leave empty to skip): ")
		if err != nil {
			return req, err
		}
		req.Folders = agentev.ParseFolders(folders)
	}

	if c.URL == "" {
		url, err := p.Ask("Enter URL for parsing (e.g., https://example.com, leave empty to skip): ")
		if err != nil {
			return req, err
		}
		req.URL = strings.TrimSpace(url)
	}

	return req, nil
}

// vars are interpolated into CLI struct tags.
var vars = map[string]string{
	"model": gemini.DefaultModel,
}
