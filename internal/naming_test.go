package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeUserName(t *testing.T) {
	assert.Equal(t, "alic", SanitizeUserName("alice"))
	assert.Equal(t, "alic", SanitizeUserName("Alice"))
	assert.Equal(t, "ab1", SanitizeUserName("a.b_1"))
	assert.Equal(t, "bob", SanitizeUserName("--bob--"))
	assert.Equal(t, "u", SanitizeUserName("!!!"))
	assert.Equal(t, "u", SanitizeUserName(""))
	assert.Equal(t, "u", SanitizeUserName("日本語"))
}

func TestDeriveExecutorNameDeterministic(t *testing.T) {
	a := DeriveExecutorName("alice", 100, 1)
	b := DeriveExecutorName("alice", 100, 1)
	assert.Equal(t, a, b)
}

func TestDeriveExecutorNameShape(t *testing.T) {
	name := DeriveExecutorName("alice", 100, 1)
	require.True(t, strings.HasPrefix(name, "exr-alic"))
	// prefix + dash + 4 user chars + 15 hex chars
	assert.Len(t, name, len("exr-")+4+15)
	hash := strings.TrimPrefix(name, "exr-alic")
	assert.Regexp(t, "^[0-9a-f]{15}$", hash)
}

func TestDeriveExecutorNameDivergesPerInput(t *testing.T) {
	base := DeriveExecutorName("alice", 100, 1)
	assert.NotEqual(t, base, DeriveExecutorName("alice", 100, 2))
	assert.NotEqual(t, base, DeriveExecutorName("alice", 101, 1))
	assert.NotEqual(t, base, DeriveExecutorName("bob", 100, 1))
}
