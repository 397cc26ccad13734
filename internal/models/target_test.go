package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetType(t *testing.T) {
	valid := map[string]string{
		"post":     "posts",
		"adoption": "adoptions",
		"comment":  "comments",
		"sound":    "sounds",
		"animal":   "animals",
	}
	for input, table := range valid {
		parsed, err := ParseTargetType(input)
		require.NoError(t, err)
		assert.Equal(t, table, parsed.Table())
	}

	for _, input := range []string{"", "user", "Post", "posts"} {
		_, err := ParseTargetType(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTargetTable_PanicsOnUnparsed(t *testing.T) {
	assert.Panics(t, func() {
		_ = TargetType("bogus").Table()
	})
}
