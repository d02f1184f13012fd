package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeAllocatorHandsOutDistinctPorts(t *testing.T) {
	a := NewRangeAllocator(23000, 23010)

	p1, err := a.Allocate()
	require.NoError(t, err)
	p2, err := a.Allocate()
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.GreaterOrEqual(t, p1, 23000)
	assert.LessOrEqual(t, p1, 23010)
}

func TestRangeAllocatorReleaseAllowsReuse(t *testing.T) {
	a := NewRangeAllocator(23020, 23021)

	p1, err := a.Allocate()
	require.NoError(t, err)
	p2, err := a.Allocate()
	require.NoError(t, err)

	_, err = a.Allocate()
	require.Error(t, err)

	a.Release(p1)
	a.Release(p2)
	p3, err := a.Allocate()
	require.NoError(t, err)
	assert.Contains(t, []int{p1, p2}, p3)
}
