package targeting

import (
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

// Kind names a target selection policy
type Kind string

const (
	KindSelf        Kind = "self"
	KindSides       Kind = "sides"
	KindSelfSides   Kind = "self_sides"
	KindParty       Kind = "party"
	KindEnemyAll    Kind = "enemy_all"
	KindEnemyRandom Kind = "enemy_random"
	KindEnemyNear   Kind = "enemy_near"
)

// Range selects the cards a skill affects.
// Implementations are immutable and hold no battle state, so one instance
// can serve every battle.
type Range interface {
	// ID is the range id the variant was built for
	ID() int
	Kind() Kind
	// Targets returns live cards only, in selection order, in a slice owned by the caller
	Targets(board Board, executor *battle.Card) ([]*battle.Card, error)
}

func isLive(card *battle.Card) bool {
	return card != nil && !card.IsDead()
}

func appendLive(targets []*battle.Card, cards ...*battle.Card) []*battle.Card {
	for _, card := range cards {
		if isLive(card) {
			targets = append(targets, card)
		}
	}
	return targets
}
