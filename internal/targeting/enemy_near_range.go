package targeting

import (
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

// nearOffsets walk outward from the center enemy: center, left, right, two left, two right.
// Only up to two since no near range reaches further.
var nearOffsets = []int{0, -1, 1, -2, 2}

// enemyNearRange hits the nearest enemy and the live enemies clustered around it
type enemyNearRange struct {
	id          int
	targetCount int
	maxDistance int
}

func newEnemyNearRange(id, targetCount int) *enemyNearRange {
	return &enemyNearRange{
		id:          id,
		targetCount: targetCount,
		maxDistance: maxDistanceFromCenter[targetCount],
	}
}

func (r *enemyNearRange) ID() int    { return r.id }
func (r *enemyNearRange) Kind() Kind { return KindEnemyNear }

// TargetCount is the most enemies the range hits
func (r *enemyNearRange) TargetCount() int { return r.targetCount }

// MaxDistance is how many columns from the center enemy the range reaches
func (r *enemyNearRange) MaxDistance() int { return r.maxDistance }

// Targets keeps offset order even when it is not sorted by distance:
// with the left neighbor dead, the right one still precedes the two-left slot.
func (r *enemyNearRange) Targets(board Board, executor *battle.Card) ([]*battle.Card, error) {
	targets := make([]*battle.Card, 0, r.targetCount)

	center := board.NearestEnemy(executor)
	if center == nil {
		return targets, nil
	}

	for _, offset := range nearOffsets {
		if len(targets) >= r.targetCount || abs(offset) > r.maxDistance {
			break
		}
		targets = appendLive(targets, board.EnemyAt(executor, center.FormationColumn+offset))
	}

	return targets, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
