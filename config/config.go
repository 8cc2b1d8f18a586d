// Package config loads the engine settings from YAML.
package config

import (
	"math"
	"os"
	"tetris/game"
	"tetris/meta"
	"tetris/qlearn"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Heuristic struct {
	Weights    []float64 `yaml:"weights"`
	Goroutines int       `yaml:"goroutines"`
}

type Learning struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Episodes       int     `yaml:"episodes"`
	Alpha          float64 `yaml:"alpha"`
	Gamma          float64 `yaml:"gamma"`
	Epsilon        float64 `yaml:"epsilon"`
	DecayEvery     int     `yaml:"decay_every"`
	DecayFactor    float64 `yaml:"decay_factor"`
	MaxPieces      int     `yaml:"max_pieces"`
	VarianceWeight float64 `yaml:"variance_weight"`
	HoleWeight     float64 `yaml:"hole_weight"`
	Table          string  `yaml:"table"`
}

type Output struct {
	Records bool   `yaml:"records"` // Write CSV records of games and episodes
	Name    string `yaml:"name"`
}

type Config struct {
	Board     Board     `yaml:"board"`
	Heuristic Heuristic `yaml:"heuristic"`
	Learning  Learning  `yaml:"learning"`
	Output    Output    `yaml:"output"`
	Seed      uint64    `yaml:"seed"`
	Games     int       `yaml:"games"`
	MaxPieces int       `yaml:"max_pieces"`
}

// Default returns the settings of the standard game.
func Default() Config {
	return Config{
		Board: Board{Width: meta.BOARD_WIDTH, Height: meta.BOARD_HEIGHT},
		Heuristic: Heuristic{
			Weights:    append([]float64(nil), game.DefaultWeights[:]...),
			Goroutines: 1,
		},
		Learning: Learning{
			Width:          meta.SUB_WELL,
			Height:         meta.TRAIN_HEIGHT,
			Episodes:       meta.EPISODES,
			Alpha:          0.2,
			Gamma:          0.8,
			Epsilon:        0.01,
			DecayEvery:     100,
			DecayFactor:    0.5,
			VarianceWeight: qlearn.DefaultRewardWeights.Variance,
			HoleWeight:     qlearn.DefaultRewardWeights.Holes,
			Table:          meta.TABLE_FILE,
		},
		Output:    Output{Name: "play"},
		Seed:      1,
		Games:     1,
		MaxPieces: meta.MAX_PIECES,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config")
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Weights returns the heuristic weight vector. Call after Validate.
func (c Config) Weights() game.Weights {
	var w game.Weights
	copy(w[:], c.Heuristic.Weights)
	return w
}

// RewardWeights returns the Q-learning reward weights.
func (c Config) RewardWeights() qlearn.RewardWeights {
	return qlearn.RewardWeights{Variance: c.Learning.VarianceWeight, Holes: c.Learning.HoleWeight}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func unit(name string, v float64) error {
	if !finite(v) || v < 0 || v > 1 {
		return errors.Errorf("%s must be in [0, 1], got %v", name, v)
	}
	return nil
}

// Validate fails on settings the engine cannot run with.
func (c Config) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return errors.Errorf("board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if len(c.Heuristic.Weights) != game.NumFeatures {
		return errors.Errorf("heuristic.weights needs %d values, got %d", game.NumFeatures, len(c.Heuristic.Weights))
	}
	if err := c.Weights().Validate(); err != nil {
		return errors.Wrap(err, "heuristic.weights")
	}
	if c.Heuristic.Goroutines < 1 {
		return errors.Errorf("heuristic.goroutines must be positive, got %d", c.Heuristic.Goroutines)
	}

	l := c.Learning
	if l.Width < 2 || l.Width > qlearn.MaxTableWidth {
		return errors.Errorf("learning.width must be in [2, %d], got %d", qlearn.MaxTableWidth, l.Width)
	}
	if l.Width > c.Board.Width {
		return errors.Errorf("learning.width %d is wider than the board (%d)", l.Width, c.Board.Width)
	}
	if l.Height < 4 || l.Episodes < 1 {
		return errors.Errorf("learning needs a height of at least 4 and one episode, got %d and %d", l.Height, l.Episodes)
	}
	for name, v := range map[string]float64{
		"learning.alpha":        l.Alpha,
		"learning.gamma":        l.Gamma,
		"learning.epsilon":      l.Epsilon,
		"learning.decay_factor": l.DecayFactor,
	} {
		if err := unit(name, v); err != nil {
			return err
		}
	}
	if !finite(l.VarianceWeight) || !finite(l.HoleWeight) {
		return errors.New("learning reward weights must be finite")
	}
	if c.Games < 1 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	return nil
}
