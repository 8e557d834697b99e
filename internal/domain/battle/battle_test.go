package battle_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
)

func newRow(prefix string, columns ...int) []*battle.Card {
	cards := make([]*battle.Card, 0, len(columns))
	for _, col := range columns {
		cards = append(cards, battle.NewCard(prefix+string(rune('0'+col)), prefix, col, 100))
	}
	return cards
}

func newTestBattle(t *testing.T, homeCols, awayCols []int) *battle.Battle {
	t.Helper()
	formation, err := battle.NewFormation(battle.FormationArch)
	require.NoError(t, err)

	b, err := battle.NewBattle("battle-1",
		battle.NewPlayer(1, "Home", formation), newRow("h", homeCols...),
		battle.NewPlayer(2, "Away", formation), newRow("a", awayCols...),
	)
	require.NoError(t, err)
	return b
}

func mustCard(t *testing.T, b *battle.Battle, id string) *battle.Card {
	t.Helper()
	c, err := b.CardByID(id)
	require.NoError(t, err)
	return c
}

func TestNewBattle_Validation(t *testing.T) {
	formation, err := battle.NewFormation(battle.FormationLine)
	require.NoError(t, err)
	home := battle.NewPlayer(1, "Home", formation)
	away := battle.NewPlayer(2, "Away", formation)

	t.Run("column out of range", func(t *testing.T) {
		_, err := battle.NewBattle("b", home, newRow("h", 5), away, nil)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("column used twice", func(t *testing.T) {
		_, err := battle.NewBattle("b", home, newRow("h", 1, 1), away, nil)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("too many cards", func(t *testing.T) {
		_, err := battle.NewBattle("b", home, newRow("h", 0, 1, 2, 3, 4, 4), away, nil)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("same player twice", func(t *testing.T) {
		_, err := battle.NewBattle("b", home, nil, home, nil)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("assigns player ids", func(t *testing.T) {
		b, err := battle.NewBattle("b", home, newRow("h", 0), away, newRow("a", 0))
		require.NoError(t, err)
		assert.Equal(t, 1, mustCard(t, b, "h0").PlayerID)
		assert.Equal(t, 2, mustCard(t, b, "a0").PlayerID)
	})
}

func TestBattle_Neighbors(t *testing.T) {
	b := newTestBattle(t, []int{0, 1, 2, 4}, []int{0, 1, 2, 3, 4})

	middle := mustCard(t, b, "h1")
	assert.Equal(t, "h0", b.LeftNeighbor(middle).ID)
	assert.Equal(t, "h2", b.RightNeighbor(middle).ID)

	edge := mustCard(t, b, "h0")
	assert.Nil(t, b.LeftNeighbor(edge))

	beforeGap := mustCard(t, b, "h2")
	assert.Nil(t, b.RightNeighbor(beforeGap), "column 3 is empty")
}

func TestBattle_PartyAndEnemyCards(t *testing.T) {
	b := newTestBattle(t, []int{0, 2, 4}, []int{1, 3})
	executor := mustCard(t, b, "h2")

	party := b.PartyCards(executor)
	require.Len(t, party, 3)
	assert.Equal(t, []string{"h0", "h2", "h4"}, ids(party))

	enemies := b.EnemyCards(executor)
	assert.Equal(t, []string{"a1", "a3"}, ids(enemies))

	// Returned slices are copies
	party[0] = nil
	assert.NotNil(t, b.PartyCards(executor)[0])
}

func TestBattle_NearestEnemy(t *testing.T) {
	tests := []struct {
		name     string
		dead     []string
		executor string
		want     string
	}{
		{name: "facing column alive", executor: "h2", want: "a2"},
		{name: "facing dead prefers left", dead: []string{"a2"}, executor: "h2", want: "a1"},
		{name: "left and facing dead goes right", dead: []string{"a1", "a2"}, executor: "h2", want: "a3"},
		{name: "edge executor does not wrap", dead: []string{"a0", "a1"}, executor: "h0", want: "a2"},
		{name: "far edge", dead: []string{"a0", "a1", "a2", "a3"}, executor: "h0", want: "a4"},
		{name: "everyone dead", dead: []string{"a0", "a1", "a2", "a3", "a4"}, executor: "h2", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBattle(t, []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 3, 4})
			for _, id := range tt.dead {
				mustCard(t, b, id).TakeDamage(1000)
			}

			got := b.NearestEnemy(mustCard(t, b, tt.executor))
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestBattle_EnemyAt(t *testing.T) {
	b := newTestBattle(t, []int{2}, []int{0, 1, 2})
	executor := mustCard(t, b, "h2")

	assert.Equal(t, "a1", b.EnemyAt(executor, 1).ID)
	assert.Nil(t, b.EnemyAt(executor, 3))
	assert.Nil(t, b.EnemyAt(executor, -1))
	assert.Nil(t, b.EnemyAt(executor, 5))
}

func TestBattle_CardByID_NotFound(t *testing.T) {
	b := newTestBattle(t, []int{0}, []int{0})
	_, err := b.CardByID("missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestBattle_JSONRoundTripKeepsPositions(t *testing.T) {
	b := newTestBattle(t, []int{0, 3}, []int{1})
	mustCard(t, b, "h3").TakeDamage(500)

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var restored battle.Battle
	require.NoError(t, json.Unmarshal(data, &restored))

	executor := mustCard(t, &restored, "h3")
	assert.True(t, executor.IsDead())
	assert.Nil(t, restored.LeftNeighbor(executor))
	assert.Equal(t, 1, restored.LiveCount(1))
	assert.Equal(t, "a1", restored.NearestEnemy(executor).ID)
}

func TestCard_TakeDamage(t *testing.T) {
	c := battle.NewCard("c", "Card", 0, 10)

	c.TakeDamage(4)
	assert.Equal(t, 6, c.HP)
	assert.False(t, c.IsDead())

	c.TakeDamage(20)
	assert.Equal(t, 0, c.HP)
	assert.True(t, c.IsDead())
}

func TestFormation_RowOf(t *testing.T) {
	f, err := battle.NewFormation(battle.FormationArch)
	require.NoError(t, err)

	row, err := f.RowOf(2)
	require.NoError(t, err)
	assert.Equal(t, battle.RowFront, row)

	_, err = f.RowOf(5)
	assert.True(t, errors.IsValidation(err))

	_, err = battle.NewFormation("pyramid")
	assert.True(t, errors.IsValidation(err))
}

func ids(cards []*battle.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestBattle_CloneIsIndependent(t *testing.T) {
	b := newTestBattle(t, []int{0, 1, 2}, []int{1, 3})

	clone := b.Clone()
	assert.Equal(t, b, clone)

	mustCard(t, clone, "a1").TakeDamage(1000)
	clone.Players[0].Formation.Type = battle.FormationLine

	assert.False(t, mustCard(t, b, "a1").IsDead())
	assert.Equal(t, battle.FormationArch, b.Players[0].Formation.Type)
	assert.Nil(t, clone.Cards[2][0], "empty slots stay empty")
	assert.Nil(t, (*battle.Battle)(nil).Clone())
}
