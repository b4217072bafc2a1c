// Package color renders agentev reports for the terminal using
// github.com/fatih/color.
package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/agentev"
)

const rule = "========================================================"

// Reporter writes a SearchReport as plain text, optionally with ANSI colors.
type Reporter struct {
	w io.Writer

	title   *color.Color
	section *color.Color
	label   *color.Color
	failure *color.Color
}

// NewReporter creates a Reporter writing to w. When colored is false the
// output contains no escape sequences regardless of the terminal.
func NewReporter(w io.Writer, colored bool) *Reporter {
	r := &Reporter{
		w:       w,
		title:   color.New(color.FgHiMagenta, color.Bold),
		section: color.New(color.FgCyan, color.Bold),
		label:   color.New(color.Bold),
		failure: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.title, r.section, r.label, r.failure} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes the full report in one write.
func (r *Reporter) Render(report *agentev.SearchReport) error {
	var b strings.Builder

	b.WriteString("\n\n")
	r.title.Fprintln(&b, rule)
	r.title.Fprintf(&b, "OVERALL SEARCH RESULTS FOR QUERY: '%s'\n", report.Query)
	r.title.Fprintln(&b, rule)

	if report.Local != nil {
		r.renderLocal(&b, report.Local)
	}
	if report.Web != nil {
		r.renderWeb(&b, report.Web)
	}
	r.renderEncyclopedia(&b, report.Encyclopedia)
	r.renderAI(&b, report.AI)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Reporter) renderLocal(b *strings.Builder, res *agentev.LocalResult) {
	if len(res.Matches) == 0 {
		r.section.Fprintln(b, "\n--- LOCAL FILES: Nothing found. ---")
		return
	}
	r.section.Fprintln(b, "\n--- LOCAL FILES ---")
	for _, m := range res.Matches {
		r.entry(b, "    [FILE]: ", m.Source)
		writeMatchLines(b, m, "Line Text")
	}
}

func (r *Reporter) renderWeb(b *strings.Builder, res *agentev.WebResult) {
	switch {
	case res.Err != nil:
		r.failure.Fprintf(b, "\n--- WEB PARSING: Error: %s ---\n", agentev.ErrorMessage(res.Err))
	case len(res.Matches) == 0:
		r.section.Fprintln(b, "\n--- WEB PARSING: Nothing found. ---")
	default:
		r.section.Fprintln(b, "\n--- WEB PARSING (HTML/JS) ---")
		for _, m := range res.Matches {
			r.entry(b, "    [SOURCE]: ", m.Source)
			writeMatchLines(b, m, "Text")
		}
	}
}

func (r *Reporter) renderEncyclopedia(b *strings.Builder, res agentev.EncyclopediaResult) {
	r.section.Fprintln(b, "\n--- WIKIPEDIA ---")
	if res.Err != nil || res.Article == nil {
		r.failure.Fprintf(b, "    ERROR: %s\n", agentev.ErrorMessage(res.Err))
		return
	}
	r.entry(b, "    [TITLE]: ", res.Article.Title)
	r.entry(b, "    [SUMMARY]: ", res.Article.Summary)
}

func (r *Reporter) renderAI(b *strings.Builder, res agentev.AIResult) {
	r.section.Fprintln(b, "\n--- GEMINI AI ---")
	if res.Err != nil {
		r.failure.Fprintf(b, "    ERROR: %s\n", agentev.ErrorMessage(res.Err))
		return
	}
	r.entry(b, "    [RESPONSE]: ", res.Answer)
}

// entry writes a bold label followed by a plain value.
func (r *Reporter) entry(b *strings.Builder, label, value string) {
	r.label.Fprint(b, label)
	b.WriteString(value)
	b.WriteString("\n")
}

func writeMatchLines(b *strings.Builder, m *agentev.Match, textLabel string) {
	fmt.Fprintf(b, "      Line No: %d\n      %s: %s\n", m.Line, textLabel, m.Text)
}
