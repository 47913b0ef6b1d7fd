package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Totarae/SecondBrain/internal/util"
)

func TestGenerateShareHash(t *testing.T) {
	h1, err := util.GenerateShareHash()
	require.NoError(t, err)
	h2, err := util.GenerateShareHash()
	require.NoError(t, err)

	assert.Len(t, h1, 16)
	assert.NotEqual(t, h1, h2)
	assert.Regexp(t, `^[0-9a-zA-Z]+$`, h1)
}

func TestNormalizeTags(t *testing.T) {
	got := util.NormalizeTags([]string{" go ", "", "db", "go", "  ", "db", "web"})
	assert.Equal(t, []string{"go", "db", "web"}, got)

	assert.Empty(t, util.NormalizeTags(nil))
}
