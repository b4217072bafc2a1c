package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/agentev"
	"github.com/fwojciec/agentev/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSearcher_SearchFiles(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SearchFilesFn", func(t *testing.T) {
		t.Parallel()

		var gotFolders []string
		s := &mock.FileSearcher{
			SearchFilesFn: func(_ context.Context, query string, folders []string) ([]*agentev.Match, error) {
				gotFolders = folders
				return []*agentev.Match{{Source: "a.txt", Line: 1, Text: query}}, nil
			},
		}

		matches, err := s.SearchFiles(context.Background(), "go", []string{"/tmp"})

		require.NoError(t, err)
		assert.Equal(t, []string{"/tmp"}, gotFolders)
		require.Len(t, matches, 1)
		assert.Equal(t, "go", matches[0].Text)
	})
}

func TestEncyclopedia_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("returns configured error", func(t *testing.T) {
		t.Parallel()

		e := &mock.Encyclopedia{
			LookupFn: func(context.Context, string) (*agentev.Article, error) {
				return nil, agentev.Errorf(agentev.ENOTFOUND, "Page not found.")
			},
		}

		_, err := e.Lookup(context.Background(), "nothing")

		assert.Equal(t, agentev.ENOTFOUND, agentev.ErrorCode(err))
	})
}
