// Package agentev provides a single-shot, CLI-based search aggregator.
// For one query it greps local folders, greps a web page and its scripts,
// looks the term up in an encyclopedia and asks a generative model, then
// prints a consolidated report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, slog/).
package agentev

// LogFunc receives human-readable progress notices.
type LogFunc func(format string, args ...any)
