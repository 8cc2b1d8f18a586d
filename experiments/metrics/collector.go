package metrics

import (
	"math"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Candidates int     // Placements scored
	Rejected   int     // Placements dropped for overflowing the board
	BestScore  float64 // Score of the chosen placement
}

type MoveMetric struct {
	Step     int
	Kind     string
	Column   int
	Rotation int
	Row      int
	Lines    int // Rows cleared by this piece
	Commands int // Primitive commands issued to place it
	SearchMetric
}

type GameMetric struct {
	Seed      uint64
	Agent     string
	Lines     int
	Pieces    int
	GameOver  bool // false when stopped at the piece limit
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type EpisodeMetric struct {
	Episode  int
	Lines    int
	Pieces   int
	Updates  int
	Alpha    float64
	Duration time.Duration
}

type Collector interface {
	Start(goroutines int)
	AddCandidate()
	AddRejected()
	SetBestScore(score float64)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	candidates atomic.Int32
	rejected   atomic.Int32
	bestScore  atomic.Uint64 // Bits of a float64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.candidates.Store(0)
	m.rejected.Store(0)
	m.bestScore.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) SetBestScore(score float64) {
	m.bestScore.Store(math.Float64bits(score))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Rejected:   int(m.rejected.Load()),
		BestScore:  math.Float64frombits(m.bestScore.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)       {}
func (m *dummyCollector) AddCandidate()              {}
func (m *dummyCollector) AddRejected()               {}
func (m *dummyCollector) SetBestScore(score float64) {}
func (m *dummyCollector) Complete() SearchMetric     { return SearchMetric{} }
