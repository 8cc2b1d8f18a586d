package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBag(t *testing.T) {
	t.Run("deals every kind once per bag", func(t *testing.T) {
		bag := NewBag(42)
		for round := 0; round < 50; round++ {
			seen := map[Kind]bool{}
			for i := 0; i < NumKinds; i++ {
				seen[bag.Next()] = true
			}
			require.Len(t, seen, NumKinds, "round %d", round)
		}
	})

	t.Run("never repeats a kind back to back", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			bag := NewBag(seed)
			last := bag.Next()
			for i := 0; i < 700; i++ {
				k := bag.Next()
				require.NotEqual(t, last, k, "seed %d piece %d", seed, i)
				last = k
			}
		}
	})

	t.Run("is deterministic for a seed", func(t *testing.T) {
		a, b := NewBag(9), NewBag(9)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Next(), b.Next())
		}
	})

	t.Run("spawn rotations are in range", func(t *testing.T) {
		bag := NewBag(1)
		for i := 0; i < 200; i++ {
			k := bag.Next()
			r := bag.Rotation(k)
			require.True(t, r >= 0 && r < Rotations(k))
		}
	})
}
