package dice

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller on top of math/rand.
// rand.Rand is not safe for concurrent use so calls are serialized.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller whose sequence is reproducible for a given seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(sides int) (int, error) {
	if sides < 1 {
		return 0, fmt.Errorf("invalid dice size %d", sides)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Intn(sides) + 1, nil
}
