package agentev_test

import (
	"testing"

	"github.com/fwojciec/agentev"
	"github.com/stretchr/testify/assert"
)

func TestSourceLabels(t *testing.T) {
	t.Parallel()

	t.Run("labels HTML source with page URL", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "HTML (https://example.com)", agentev.HTMLSource("https://example.com"))
	})

	t.Run("labels script source with script URL", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "JS (https://example.com/app.js)", agentev.ScriptSource("https://example.com/app.js"))
	})
}
