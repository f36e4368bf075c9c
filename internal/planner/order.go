package planner

import "math/rand"

// CandidateOrder decides the order of non-High subjects within a day. It is
// the only source of non-determinism in plan generation.
type CandidateOrder interface {
	Shuffle(n int, swap func(i, j int))
}

// StableOrder keeps allocation order.
type StableOrder struct{}

func (StableOrder) Shuffle(int, func(i, j int)) {}

// SeededOrder shuffles with a seeded pseudo-random source. Two generations
// with the same seed and input produce the same week. It is not safe for
// concurrent use; create one per generation.
type SeededOrder struct {
	rng *rand.Rand
}

func NewSeededOrder(seed int64) *SeededOrder {
	return &SeededOrder{rng: rand.New(rand.NewSource(seed))}
}

func (o *SeededOrder) Shuffle(n int, swap func(i, j int)) {
	o.rng.Shuffle(n, swap)
}
