package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzers(t *testing.T) {
	list := analyzers()
	require.NotEmpty(t, list)

	names := make(map[string]bool, len(list))
	for _, a := range list {
		assert.False(t, names[a.Name], "duplicate analyzer %s", a.Name)
		names[a.Name] = true
	}
	for _, want := range []string{"noexit", "bodyclose", "shadow", "SA1000", "S1000", "U1000"} {
		assert.True(t, names[want], want)
	}
}
