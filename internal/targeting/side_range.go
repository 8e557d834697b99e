package targeting

import (
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

// partyRange hits every live card on the executor's side
type partyRange struct {
	id int
}

func (r *partyRange) ID() int    { return r.id }
func (r *partyRange) Kind() Kind { return KindParty }

func (r *partyRange) Targets(board Board, executor *battle.Card) ([]*battle.Card, error) {
	cards := board.PartyCards(executor)
	return appendLive(make([]*battle.Card, 0, len(cards)), cards...), nil
}

// enemyAllRange hits every live card on the opposing side
type enemyAllRange struct {
	id int
}

func (r *enemyAllRange) ID() int    { return r.id }
func (r *enemyAllRange) Kind() Kind { return KindEnemyAll }

func (r *enemyAllRange) Targets(board Board, executor *battle.Card) ([]*battle.Card, error) {
	cards := board.EnemyCards(executor)
	return appendLive(make([]*battle.Card, 0, len(cards)), cards...), nil
}
