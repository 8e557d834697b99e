package targeting

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/card-battle-sim/internal/dice"
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
)

// ResolverConfig holds the dependencies of a Resolver
type ResolverConfig struct {
	// Roller drives random enemy selection
	Roller dice.Roller

	// RandomSampling turns on random enemy selection. While off, random
	// ranges resolve but fail with an unimplemented error when targeted.
	RandomSampling bool
}

// Resolver turns range ids into Range variants and caches them by id
type Resolver struct {
	roller         dice.Roller
	randomSampling bool

	mu     sync.RWMutex
	ranges map[int]Range
	group  singleflight.Group
}

// NewResolver creates a resolver. A nil config gives the shipped behavior.
func NewResolver(cfg *ResolverConfig) *Resolver {
	if cfg == nil {
		cfg = &ResolverConfig{}
	}

	r := &Resolver{
		roller:         cfg.Roller,
		randomSampling: cfg.RandomSampling,
		ranges:         make(map[int]Range),
	}
	if r.randomSampling && r.roller == nil {
		r.roller = dice.NewRandomRoller()
	}
	return r
}

// Resolve returns the Range for an id.
// Ids are classified by the random table first, then the near table, then
// the standard set; anything else is an unrecognized range error.
func (r *Resolver) Resolve(id int) (Range, error) {
	r.mu.RLock()
	cached, ok := r.ranges[id]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := r.group.Do(strconv.Itoa(id), func() (interface{}, error) {
		built, err := r.build(id)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.ranges[id] = built
		r.mu.Unlock()

		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Range), nil
}

// ResolveTargets resolves a range and selects its targets for the executor
func (r *Resolver) ResolveTargets(board Board, id int, executor *battle.Card) ([]*battle.Card, error) {
	if board == nil || executor == nil {
		return nil, errors.Validationf("range %d needs a board and an executor", id)
	}

	rng, err := r.Resolve(id)
	if err != nil {
		return nil, err
	}
	return rng.Targets(board, executor)
}

func (r *Resolver) build(id int) (Range, error) {
	if count, ok := enemyRandomTargetCount[id]; ok {
		rng := &enemyRandomRange{id: id, targetCount: count}
		if r.randomSampling {
			rng.roller = r.roller
		}
		return rng, nil
	}

	if count, ok := enemyNearTargetCount[id]; ok {
		return newEnemyNearRange(id, count), nil
	}

	switch id {
	case RangeSides:
		return &sidesRange{id: id}, nil
	case RangeSelfSides:
		return &sidesRange{id: id, includeSelf: true}, nil
	case RangeParty:
		return &partyRange{id: id}, nil
	case RangeEnemyAll:
		return &enemyAllRange{id: id}, nil
	case RangeSelf:
		return &selfRange{id: id}, nil
	default:
		return nil, errors.UnrecognizedRange(id)
	}
}
