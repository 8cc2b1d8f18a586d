package qlearn

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"tetris/game"
)

var header = []string{"state", "kind", "column", "rotation", "value"}

// Save writes the non-zero entries as CSV rows of state, kind label, column,
// rotation and value. Missing entries are zero, so the file does not depend on
// the board width beyond the keys it holds.
func (t *Table) Save(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}
	var err error
	t.Each(func(k Key, v float64) {
		if err != nil {
			return
		}
		err = writer.Write([]string{
			strconv.Itoa(k.State),
			k.Kind.String(),
			strconv.Itoa(k.Action.Column),
			strconv.Itoa(k.Action.Rotation),
			strconv.FormatFloat(v, 'g', -1, 64),
		})
	})
	if err != nil {
		return fmt.Errorf("failed to write table row: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

// Load reads rows written by Save into a new table of the given width. Keys that
// do not fit the width and non-finite values are rejected.
func Load(r io.Reader, width int) (*Table, error) {
	t, err := NewTable(width)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read table header: %w", err)
	}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read table row: %w", err)
		}
		k, v, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := t.Set(k, v); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func parseRow(row []string) (Key, float64, error) {
	var k Key
	ints := make([]int, 0, 3)
	for _, i := range []int{0, 2, 3} {
		n, err := strconv.Atoi(row[i])
		if err != nil {
			return k, 0, fmt.Errorf("invalid %s %q: %w", header[i], row[i], err)
		}
		ints = append(ints, n)
	}
	kind, err := game.ParseKind(row[1])
	if err != nil {
		return k, 0, err
	}
	v, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return k, 0, fmt.Errorf("invalid value %q: %w", row[4], err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return k, 0, fmt.Errorf("value is not finite: %v", v)
	}
	k = Key{State: ints[0], Kind: kind, Action: Action{Column: ints[1], Rotation: ints[2]}}
	return k, v, nil
}

// SaveFile writes the table to path through a temporary file.
func (t *Table) SaveFile(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create table file: %w", err)
	}
	if err := t.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close table file: %w", err)
	}
	return os.Rename(tmp, path)
}

// LoadFile reads a table saved with SaveFile.
func LoadFile(path string, width int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer f.Close()
	return Load(f, width)
}
