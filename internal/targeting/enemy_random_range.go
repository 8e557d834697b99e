package targeting

import (
	"github.com/KirkDiggler/card-battle-sim/internal/dice"
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
)

// enemyRandomRange picks targetCount distinct live enemies.
// Without a roller the game data has no agreed selection rule yet and
// Targets fails loudly instead of returning an empty hit list.
type enemyRandomRange struct {
	id          int
	targetCount int
	roller      dice.Roller
}

func (r *enemyRandomRange) ID() int    { return r.id }
func (r *enemyRandomRange) Kind() Kind { return KindEnemyRandom }

// TargetCount is the number of enemies the range picks when enough are alive
func (r *enemyRandomRange) TargetCount() int { return r.targetCount }

// Targets samples uniformly without replacement with a partial Fisher-Yates
// shuffle. Output order is draw order.
func (r *enemyRandomRange) Targets(board Board, executor *battle.Card) ([]*battle.Card, error) {
	if r.roller == nil {
		return nil, errors.NotImplemented(r.id, string(KindEnemyRandom))
	}

	enemies := board.EnemyCards(executor)
	pool := appendLive(make([]*battle.Card, 0, len(enemies)), enemies...)

	picks := r.targetCount
	if picks > len(pool) {
		picks = len(pool)
	}

	for i := 0; i < picks; i++ {
		sides := len(pool) - i
		roll, err := r.roller.Roll(sides)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to pick target %d of range %d", i+1, r.id)
		}
		if roll < 1 || roll > sides {
			return nil, errors.Internalf("roller returned %d for d%d in range %d", roll, sides, r.id)
		}
		j := i + roll - 1
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:picks:picks], nil
}
