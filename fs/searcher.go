// Package fs provides a filesystem implementation of agentev.FileSearcher.
package fs

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/agentev"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Extensions lists the file extensions searched by default.
var Extensions = []string{".txt", ".py", ".html", ".css", ".js", ".md", ".log", ".json", ".xml"}

// Ensure Searcher implements agentev.FileSearcher at compile time.
var _ agentev.FileSearcher = (*Searcher)(nil)

// Searcher greps text files found by walking folders recursively.
type Searcher struct {
	// Extensions restricts which files are read. Compared case-insensitively
	// against the end of the file name.
	Extensions []string

	// Notify receives skip and progress notices. May be nil.
	Notify agentev.LogFunc
}

// NewSearcher creates a Searcher with the default extension allow-list.
func NewSearcher(notify agentev.LogFunc) *Searcher {
	return &Searcher{Extensions: Extensions, Notify: notify}
}

// SearchFiles walks every folder and returns matches in walk order.
// Missing folders are reported through Notify and skipped; unreadable files
// and directories are skipped silently. Only context cancellation is
// returned as an error.
func (s *Searcher) SearchFiles(ctx context.Context, query string, folders []string) ([]*agentev.Match, error) {
	var matches []*agentev.Match
	for _, folder := range folders {
		if err := ctx.Err(); err != nil {
			return matches, err
		}

		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			s.notify("Path not found or invalid: %s. Skipping.", folder)
			continue
		}
		s.notify("[LOCAL SEARCH] Searching for '%s' in: %s...", query, folder)

		// WalkDir does not descend into a symlinked root, so walk its target
		// and report paths under the folder as given.
		root := folder
		if resolved, err := filepath.EvalSymlinks(folder); err == nil {
			root = resolved
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil {
				// Unreadable directory: skip it and keep walking.
				if d != nil && d.IsDir() && path != root {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !s.allowed(d.Name()) {
				return nil
			}

			text, err := ReadText(path)
			if err != nil {
				return nil
			}
			matches = append(matches, agentev.FindMatches(text, query, sourcePath(folder, root, path))...)
			return nil
		})
		if err != nil && ctx.Err() != nil {
			return matches, ctx.Err()
		}
	}
	return matches, nil
}

// sourcePath maps a path found below root back onto folder.
func sourcePath(folder, root, path string) string {
	if root == folder {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.Join(folder, rel)
}

func (s *Searcher) allowed(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range s.Extensions {
		if strings.HasSuffix(name, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func (s *Searcher) notify(format string, args ...any) {
	if s.Notify != nil {
		s.Notify(format, args...)
	}
}

// ReadText reads a file as text without failing on bad encoding.
// A UTF-8 or UTF-16 byte order mark selects the decoding; otherwise the
// content is taken as UTF-8. Invalid byte sequences are dropped and
// "\r\n" and lone "\r" line endings become "\n".
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(data)
}

// DecodeText converts raw file content to a valid UTF-8 string.
func DecodeText(data []byte) (string, error) {
	r := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(transform.Nop))
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return lineEndings.Replace(strings.ToValidUTF8(string(decoded), "")), nil
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
