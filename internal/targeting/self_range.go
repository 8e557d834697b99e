package targeting

import (
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

type selfRange struct {
	id int
}

func (r *selfRange) ID() int    { return r.id }
func (r *selfRange) Kind() Kind { return KindSelf }

// Targets returns the executor. Skills only run for live executors, so an
// empty result here means the caller let a dead card act.
func (r *selfRange) Targets(_ Board, executor *battle.Card) ([]*battle.Card, error) {
	return appendLive(make([]*battle.Card, 0, 1), executor), nil
}
