package game

import "golang.org/x/exp/rand"

// Source produces the sequence of pieces for a game.
type Source interface {
	Next() Kind
}

// MaxReshuffles bounds the retries when a fresh bag starts with the kind that
// ended the previous one.
const MaxReshuffles = 16

// Bag deals all seven kinds in a random order, then reshuffles. A new bag never
// starts with the last kind of the previous bag, so no kind repeats back to back.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
	index int
}

// NewBag returns a bag seeded with seed.
func NewBag(seed uint64) *Bag {
	b := &Bag{
		rng:   rand.New(rand.NewSource(seed)),
		kinds: Kinds(),
	}
	b.shuffle()
	return b
}

func (b *Bag) shuffle() {
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
}

func (b *Bag) refill() {
	last := b.kinds[len(b.kinds)-1]
	for i := 0; i < MaxReshuffles; i++ {
		b.shuffle()
		if b.kinds[0] != last {
			return
		}
	}
	// Still unlucky: swap the repeat away from the front
	b.kinds[0], b.kinds[len(b.kinds)-1] = b.kinds[len(b.kinds)-1], b.kinds[0]
}

// Next deals the next kind.
func (b *Bag) Next() Kind {
	k := b.kinds[b.index]
	b.index++
	if b.index == len(b.kinds) {
		b.refill()
		b.index = 0
	}
	return k
}

// Rotation draws a uniformly random rotation for a newly spawned piece.
func (b *Bag) Rotation(k Kind) int {
	return b.rng.Intn(Rotations(k))
}
