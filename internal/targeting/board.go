package targeting

//go:generate mockgen -destination=mock/mock_board.go -package=mocktargeting -source=board.go

import (
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

// Board is the positional view of a live battle that ranges query.
// *battle.Battle satisfies it.
type Board interface {
	LeftNeighbor(card *battle.Card) *battle.Card
	RightNeighbor(card *battle.Card) *battle.Card

	// PartyCards and EnemyCards return a side in column order
	PartyCards(card *battle.Card) []*battle.Card
	EnemyCards(card *battle.Card) []*battle.Card

	// NearestEnemy returns nil when no opposing card is alive
	NearestEnemy(card *battle.Card) *battle.Card

	// EnemyAt returns the opposing card at a column, nil for empty or out of range slots
	EnemyAt(card *battle.Card, column int) *battle.Card
}
