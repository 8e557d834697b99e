package targeting

import (
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

// sidesRange hits the executor's left and right neighbors, optionally the executor first
type sidesRange struct {
	id          int
	includeSelf bool
}

func (r *sidesRange) ID() int { return r.id }

func (r *sidesRange) Kind() Kind {
	if r.includeSelf {
		return KindSelfSides
	}
	return KindSides
}

func (r *sidesRange) Targets(board Board, executor *battle.Card) ([]*battle.Card, error) {
	targets := make([]*battle.Card, 0, 3)
	if r.includeSelf {
		targets = appendLive(targets, executor)
	}
	return appendLive(targets, board.LeftNeighbor(executor), board.RightNeighbor(executor)), nil
}
