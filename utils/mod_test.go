package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
}

func TestVariance(t *testing.T) {
	require.Zero(t, Variance([]int{}))
	require.Zero(t, Variance([]int{4, 4, 4}))
	require.InDelta(t, 1.0, Variance([]int{6, 6, 4, 4}), 1e-12)
	require.InDelta(t, 2.5, Mean([]float64{1, 4}), 1e-12)
}

func TestClamp(t *testing.T) {
	require.Equal(t, -3, Clamp(-10, -3, 3))
	require.Equal(t, 3, Clamp(5, -3, 3))
	require.Equal(t, 0, Clamp(0, -3, 3))
}
