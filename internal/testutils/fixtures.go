package testutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

const (
	// HomePlayerID owns cards "h0".."h4"
	HomePlayerID = 1
	// AwayPlayerID owns cards "a0".."a4"
	AwayPlayerID = 2
)

// AllColumns fills every formation slot
var AllColumns = []int{0, 1, 2, 3, 4}

// CreateTestCards creates live cards named prefix+column at the given columns
func CreateTestCards(prefix string, columns ...int) []*battle.Card {
	cards := make([]*battle.Card, 0, len(columns))
	for _, col := range columns {
		cards = append(cards, battle.NewCard(fmt.Sprintf("%s%d", prefix, col), fmt.Sprintf("%s-%d", prefix, col), col, 1000))
	}
	return cards
}

// CreateTestBattle creates a battle with home cards "h<col>" and away cards "a<col>"
func CreateTestBattle(t testing.TB, id string, homeColumns, awayColumns []int) *battle.Battle {
	t.Helper()

	home, err := battle.NewFormation(battle.FormationSkewed)
	require.NoError(t, err)
	away, err := battle.NewFormation(battle.FormationArch)
	require.NoError(t, err)

	b, err := battle.NewBattle(id,
		battle.NewPlayer(HomePlayerID, "Home", home), CreateTestCards("h", homeColumns...),
		battle.NewPlayer(AwayPlayerID, "Away", away), CreateTestCards("a", awayColumns...),
	)
	require.NoError(t, err)
	return b
}

// CreateFullTestBattle creates a battle with all ten slots filled
func CreateFullTestBattle(t testing.TB, id string) *battle.Battle {
	t.Helper()
	return CreateTestBattle(t, id, AllColumns, AllColumns)
}

// Card returns a card of the battle by id, failing the test if missing
func Card(t testing.TB, b *battle.Battle, id string) *battle.Card {
	t.Helper()
	card, err := b.CardByID(id)
	require.NoError(t, err)
	return card
}

// KillCards knocks out the named cards
func KillCards(t testing.TB, b *battle.Battle, ids ...string) {
	t.Helper()
	for _, id := range ids {
		card := Card(t, b, id)
		card.TakeDamage(card.HP)
	}
}

// CardIDs lists card ids in order
func CardIDs(cards []*battle.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}
