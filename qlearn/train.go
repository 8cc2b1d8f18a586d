package qlearn

import (
	"fmt"
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(tr *Trainer)

// Trainer fills a table by playing games on a narrow board. Each placement is
// chosen epsilon-greedily and its value pulled towards the reward plus the
// discounted greedy value of the successor piece on the resulting board.
type Trainer struct {
	table       *Table
	height      int
	episodes    int
	alpha       float64
	gamma       float64
	epsilon     float64
	decayEvery  int
	decayFactor float64
	maxPieces   int
	seed        uint64
	reward      RewardWeights
	onEpisode   func(metrics.EpisodeMetric)
}

func WithHeight(height int) Option {
	return func(tr *Trainer) {
		if height > 0 {
			tr.height = height
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(tr *Trainer) {
		if episodes > 0 {
			tr.episodes = episodes
		}
	}
}

func WithAlpha(alpha float64) Option {
	return func(tr *Trainer) {
		tr.alpha = alpha
	}
}

func WithGamma(gamma float64) Option {
	return func(tr *Trainer) {
		tr.gamma = gamma
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(tr *Trainer) {
		tr.epsilon = epsilon
	}
}

// WithDecay multiplies alpha by factor after every `every` episodes.
func WithDecay(every int, factor float64) Option {
	return func(tr *Trainer) {
		tr.decayEvery = every
		tr.decayFactor = factor
	}
}

// WithMaxPieces ends an episode after the given number of pieces.
func WithMaxPieces(pieces int) Option {
	return func(tr *Trainer) {
		tr.maxPieces = pieces
	}
}

func WithSeed(seed uint64) Option {
	return func(tr *Trainer) {
		tr.seed = seed
	}
}

func WithRewardWeights(w RewardWeights) Option {
	return func(tr *Trainer) {
		tr.reward = w
	}
}

// WithEpisodeHook is called with the metrics of every finished episode.
func WithEpisodeHook(fn func(metrics.EpisodeMetric)) Option {
	return func(tr *Trainer) {
		tr.onEpisode = fn
	}
}

func NewTrainer(table *Table, options ...Option) *Trainer {
	tr := &Trainer{ // Default values
		table:       table,
		height:      meta.TRAIN_HEIGHT,
		episodes:    meta.EPISODES,
		alpha:       0.2,
		gamma:       0.8,
		epsilon:     0.01,
		decayEvery:  100,
		decayFactor: 0.5,
		seed:        1,
		reward:      DefaultRewardWeights,
		onEpisode:   func(metrics.EpisodeMetric) {},
	}
	for _, option := range options {
		option(tr)
	}
	return tr
}

// Alpha is the current learning rate.
func (tr *Trainer) Alpha() float64 {
	return tr.alpha
}

// Train runs every episode and returns their metrics.
func (tr *Trainer) Train() ([]metrics.EpisodeMetric, error) {
	rng := rand.New(rand.NewSource(tr.seed))
	records := make([]metrics.EpisodeMetric, 0, tr.episodes)

	log.Info().Msgf("training %d episodes on a %dx%d board", tr.episodes, tr.table.Width(), tr.height)
	for i := 1; i <= tr.episodes; i++ {
		record, err := tr.episode(rng, tr.seed+uint64(i))
		if err != nil {
			return records, fmt.Errorf("episode %d: %w", i, err)
		}
		record.Episode = i
		records = append(records, record)
		tr.onEpisode(record)

		log.Info().
			Int("episode", i).
			Int("lines", record.Lines).
			Int("pieces", record.Pieces).
			Float64("alpha", tr.alpha).
			Msg("episode complete")

		if tr.decayEvery > 0 && i%tr.decayEvery == 0 {
			tr.alpha *= tr.decayFactor
		}
	}
	return records, nil
}

func (tr *Trainer) episode(rng *rand.Rand, seed uint64) (metrics.EpisodeMetric, error) {
	start := time.Now()
	board := game.NewBoard(tr.table.Width(), tr.height)
	bag := game.NewBag(seed)
	record := metrics.EpisodeMetric{Alpha: tr.alpha}

	current, next := bag.Next(), bag.Next()
	for !board.Failed && (tr.maxPieces <= 0 || record.Pieces < tr.maxPieces) {
		state := StateIndex(board)
		action, ok := SelectAction(tr.table, state, current, Actions(board, current), tr.epsilon, rng)
		if !ok {
			break
		}

		layout := game.LayoutOf(current, action.Rotation)
		pos := game.Position{X: action.Column, Y: board.RestingRow(layout, action.Column)}
		reward := tr.reward.Reward(board, game.NewPiece(current, action.Rotation, pos))
		board.Lock(layout, pos)
		record.Pieces++

		nextState := StateIndex(board)
		nextAction, ok := Greedy(tr.table, nextState, next, Actions(board, next))
		if !ok {
			break // Terminal, nothing to bootstrap from
		}
		err := tr.table.Update(
			Key{State: state, Kind: current, Action: action},
			Key{State: nextState, Kind: next, Action: nextAction},
			reward, tr.alpha, tr.gamma,
		)
		if err != nil {
			return record, err
		}
		record.Updates++
		record.Lines += board.ClearFullRows()
		current, next = next, bag.Next()
	}

	record.Duration = time.Since(start)
	return record, nil
}
