package agentev_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/agentev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty query", func(t *testing.T) {
		t.Parallel()

		req := &agentev.SearchRequest{}
		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, agentev.EINVALID, agentev.ErrorCode(err))
		assert.Equal(t, "Query cannot be empty. Exiting.", agentev.ErrorMessage(err))
	})

	t.Run("accepts query without folders or URL", func(t *testing.T) {
		t.Parallel()

		req := &agentev.SearchRequest{Query: "go"}

		assert.NoError(t, req.Validate())
	})
}

func TestParseFolders(t *testing.T) {
	t.Parallel()

	t.Run("splits trims and drops empty entries", func(t *testing.T) {
		t.Parallel()

		folders := agentev.ParseFolders(" /tmp/a , ,/tmp/b,, ")

		assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, folders)
	})

	t.Run("returns nil for blank input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, agentev.ParseFolders("   "))
	})
}

func TestResultConstructors(t *testing.T) {
	t.Parallel()

	t.Run("web result drops matches on error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("offline")
		res := agentev.NewWebResult([]*agentev.Match{{Source: "x", Line: 1}}, err)

		assert.Empty(t, res.Matches)
		assert.Equal(t, err, res.Err)
	})

	t.Run("encyclopedia result without article is an error", func(t *testing.T) {
		t.Parallel()

		res := agentev.NewEncyclopediaResult(nil, nil)

		assert.Nil(t, res.Article)
		assert.Error(t, res.Err)
	})

	t.Run("encyclopedia result keeps article", func(t *testing.T) {
		t.Parallel()

		article := &agentev.Article{Title: "Go", Summary: "A language."}
		res := agentev.NewEncyclopediaResult(article, nil)

		assert.Equal(t, article, res.Article)
		assert.NoError(t, res.Err)
	})

	t.Run("AI result keeps only the error", func(t *testing.T) {
		t.Parallel()

		res := agentev.NewAIResult("ignored", errors.New("quota"))

		assert.Empty(t, res.Answer)
		assert.EqualError(t, res.Err, "quota")
	})
}
