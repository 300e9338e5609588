package categories_test

import (
	"bytes"
	"strings"
	"testing"

	"fjacquet/event-budget/cmd/categories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categories", categories.Cmd.Use)
	assert.Contains(t, categories.Cmd.Short, "categories")
	assert.NotNil(t, categories.Cmd.RunE)
}

func TestCategoriesCommand_ListsInOrder(t *testing.T) {
	var buf bytes.Buffer
	categories.Cmd.SetOut(&buf)

	require.NoError(t, categories.Cmd.RunE(categories.Cmd, nil))

	out := buf.String()
	assert.Less(t, strings.Index(out, "civil"), strings.Index(out, "venue"))
	assert.Less(t, strings.Index(out, "venue"), strings.Index(out, "tasks"))
}
