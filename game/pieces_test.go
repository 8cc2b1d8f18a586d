package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayouts(t *testing.T) {
	t.Run("rotation counts", func(t *testing.T) {
		expected := map[Kind]int{I: 2, O: 1, T: 4, Z: 2, S: 2, J: 4, L: 4}
		for kind, n := range expected {
			require.Equal(t, n, Rotations(kind), kind.String())
			require.Len(t, Layouts(kind), n)
		}
	})

	t.Run("cells are distinct and inside a 4x4 frame", func(t *testing.T) {
		for _, kind := range Kinds() {
			for r, layout := range Layouts(kind) {
				seen := map[Offset]bool{}
				for _, o := range layout {
					require.False(t, seen[o], "%s rotation %d repeats %+v", kind, r, o)
					seen[o] = true
					require.True(t, o.DX >= 0 && o.DX < 4 && o.DY >= 0 && o.DY < 4)
				}
			}
		}
	})
}

func TestParseKind(t *testing.T) {
	t.Run("round trips labels", func(t *testing.T) {
		for _, kind := range Kinds() {
			got, err := ParseKind(kind.String())
			require.NoError(t, err)
			require.Equal(t, kind, got)
		}
	})

	t.Run("rejects unknown labels", func(t *testing.T) {
		_, err := ParseKind("X")
		require.Error(t, err)
	})

	t.Run("invalid kinds", func(t *testing.T) {
		require.False(t, Kind(7).Valid())
		require.False(t, Kind(-1).Valid())
		require.Equal(t, "Kind(9)", Kind(9).String())
	})
}
