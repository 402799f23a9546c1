package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDescribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nS -> aS e\n"), 0644))

	*describeFlags.source = path
	defer func() { *describeFlags.source = "" }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	runErr := runDescribe(nil, nil)
	os.Stdout = orig
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, runErr)

	assert.Contains(t, string(out), "# FIRST")
	assert.Contains(t, string(out), "FIRST(S) = { ε a }")
	assert.Contains(t, string(out), "FOLLOW(S) = { $ }")
	assert.Contains(t, string(out), "M[S, a] = S → aS")
	assert.Contains(t, string(out), "M[S, $] = S → ε")
	assert.Contains(t, string(out), "no conflicts")
}

func TestRunDescribeMalformedGrammar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nS = a\n"), 0644))

	*describeFlags.source = path
	defer func() { *describeFlags.source = "" }()

	assert.Error(t, runDescribe(nil, nil))
}
