package qlearn

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"tetris/game"

	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) *Table {
	table, err := NewTable(4)
	require.NoError(t, err)
	require.NoError(t, table.Set(Key{State: 171, Kind: game.O, Action: Action{Column: 1}}, -0.6))
	require.NoError(t, table.Set(Key{State: 3, Kind: game.L, Action: Action{Column: 2, Rotation: 3}}, 1e-9))
	require.NoError(t, table.Set(Key{State: 342, Kind: game.I, Action: Action{Column: 0, Rotation: 1}}, -12.125))
	return table
}

func entries(table *Table) map[Key]float64 {
	m := map[Key]float64{}
	table.Each(func(k Key, v float64) {
		m[k] = v
	})
	return m
}

func TestSaveLoad(t *testing.T) {
	t.Run("round trips exactly", func(t *testing.T) {
		table := sampleTable(t)
		var buf bytes.Buffer
		require.NoError(t, table.Save(&buf))

		loaded, err := Load(&buf, 4)
		require.NoError(t, err)
		require.Equal(t, entries(table), entries(loaded))
	})

	t.Run("writes only non-zero entries", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, sampleTable(t).Save(&buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		require.Equal(t, "state,kind,column,rotation,value", lines[0])
		require.Equal(t, "3,L,2,3,1e-09", lines[1])
	})

	t.Run("rejects malformed rows", func(t *testing.T) {
		header := "state,kind,column,rotation,value\n"
		rows := []string{
			"1,X,0,0,1\n",
			"1,O,4,0,1\n",
			"343,O,0,0,1\n",
			"a,O,0,0,1\n",
			"1,O,0,0,NaN\n",
			"1,O,0,0,+Inf\n",
			"1,O,0,0\n",
		}
		for _, row := range rows {
			_, err := Load(strings.NewReader(header+row), 4)
			require.Error(t, err, row)
		}
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		_, err := Load(strings.NewReader(""), 4)
		require.Error(t, err)
	})

	t.Run("keys of a narrower table fit a wider one", func(t *testing.T) {
		narrow, _ := NewTable(3)
		require.NoError(t, narrow.Set(Key{State: 48, Kind: game.T, Action: Action{Column: 2}}, 5))
		var buf bytes.Buffer
		require.NoError(t, narrow.Save(&buf))

		wide, err := Load(&buf, 4)
		require.NoError(t, err)
		require.Equal(t, 5.0, wide.Value(Key{State: 48, Kind: game.T, Action: Action{Column: 2}}))
	})
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ql.csv")
	table := sampleTable(t)
	require.NoError(t, table.SaveFile(path))

	loaded, err := LoadFile(path, 4)
	require.NoError(t, err)
	require.Equal(t, entries(table), entries(loaded))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"), 4)
	require.Error(t, err)
}
