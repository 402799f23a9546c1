package driver

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectCommandReader(t *testing.T) {
	r := NewDirectReader(strings.NewReader("first\n\n  spaced  \nlast"))

	line, err := r.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	// A blank line is a meaningful result.
	line, err = r.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = r.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "spaced", line)

	// A final line without a trailing newline still counts.
	line, err = r.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.ReadCommand()
	assert.Equal(t, io.EOF, err)

	assert.NoError(t, r.Close())
}
