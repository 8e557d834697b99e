package targeting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdice "github.com/KirkDiggler/card-battle-sim/internal/dice/mock"
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
	"github.com/KirkDiggler/card-battle-sim/internal/targeting"
	mocktargeting "github.com/KirkDiggler/card-battle-sim/internal/targeting/mock"
	"github.com/KirkDiggler/card-battle-sim/internal/testutils"
)

func resolveIDs(t *testing.T, resolver *targeting.Resolver, b *battle.Battle, id int, executorID string) []string {
	t.Helper()
	targets, err := resolver.ResolveTargets(b, id, testutils.Card(t, b, executorID))
	require.NoError(t, err)
	for _, c := range targets {
		assert.False(t, c.IsDead(), "dead card %s returned", c.ID)
	}
	return testutils.CardIDs(targets)
}

func TestSelfRange(t *testing.T) {
	resolver := targeting.NewResolver(nil)
	b := testutils.CreateFullTestBattle(t, "battle-1")

	assert.Equal(t, []string{"h2"}, resolveIDs(t, resolver, b, targeting.RangeSelf, "h2"))

	testutils.KillCards(t, b, "h2")
	assert.Empty(t, resolveIDs(t, resolver, b, targeting.RangeSelf, "h2"))
}

func TestSidesRanges(t *testing.T) {
	tests := []struct {
		name      string
		home      []int
		dead      []string
		executor  string
		wantSides []string
		wantSelf  []string
	}{
		{
			name:      "both neighbors alive",
			home:      testutils.AllColumns,
			executor:  "h2",
			wantSides: []string{"h1", "h3"},
			wantSelf:  []string{"h2", "h1", "h3"},
		},
		{
			name:      "left neighbor dead",
			home:      testutils.AllColumns,
			dead:      []string{"h1"},
			executor:  "h2",
			wantSides: []string{"h3"},
			wantSelf:  []string{"h2", "h3"},
		},
		{
			name:      "right slot empty",
			home:      []int{1, 2},
			executor:  "h2",
			wantSides: []string{"h1"},
			wantSelf:  []string{"h2", "h1"},
		},
		{
			name:      "left edge",
			home:      testutils.AllColumns,
			executor:  "h0",
			wantSides: []string{"h1"},
			wantSelf:  []string{"h0", "h1"},
		},
		{
			name:      "no neighbors",
			home:      []int{2},
			executor:  "h2",
			wantSides: []string{},
			wantSelf:  []string{"h2"},
		},
		{
			name:      "dead executor with live neighbors",
			home:      testutils.AllColumns,
			dead:      []string{"h2"},
			executor:  "h2",
			wantSides: []string{"h1", "h3"},
			wantSelf:  []string{"h1", "h3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := targeting.NewResolver(nil)
			b := testutils.CreateTestBattle(t, "battle-1", tt.home, testutils.AllColumns)
			testutils.KillCards(t, b, tt.dead...)

			assert.Equal(t, tt.wantSides, resolveIDs(t, resolver, b, targeting.RangeSides, tt.executor))
			assert.Equal(t, tt.wantSelf, resolveIDs(t, resolver, b, targeting.RangeSelfSides, tt.executor))
		})
	}
}

func TestWholeSideRanges(t *testing.T) {
	resolver := targeting.NewResolver(nil)
	b := testutils.CreateTestBattle(t, "battle-1", []int{0, 1, 3, 4}, testutils.AllColumns)
	testutils.KillCards(t, b, "h3", "a0", "a4")

	party := resolveIDs(t, resolver, b, targeting.RangeParty, "h1")
	assert.Equal(t, []string{"h0", "h1", "h4"}, party)
	assert.Len(t, party, b.LiveCount(testutils.HomePlayerID))

	enemies := resolveIDs(t, resolver, b, targeting.RangeEnemyAll, "h1")
	assert.Equal(t, []string{"a1", "a2", "a3"}, enemies)
	assert.Len(t, enemies, b.LiveCount(testutils.AwayPlayerID))

	// Away side sees the mirror image
	assert.Equal(t, []string{"h0", "h1", "h4"}, resolveIDs(t, resolver, b, targeting.RangeEnemyAll, "a2"))
}

func TestWholeSideRanges_FreshSlice(t *testing.T) {
	resolver := targeting.NewResolver(nil)
	b := testutils.CreateFullTestBattle(t, "battle-1")
	executor := testutils.Card(t, b, "h0")

	targets, err := resolver.ResolveTargets(b, targeting.RangeParty, executor)
	require.NoError(t, err)
	targets[0] = nil

	again, err := resolver.ResolveTargets(b, targeting.RangeParty, executor)
	require.NoError(t, err)
	assert.Equal(t, "h0", again[0].ID)
}

func TestEnemyNearRange(t *testing.T) {
	tests := []struct {
		name     string
		rangeID  int
		away     []int
		dead     []string
		executor string
		want     []string
	}{
		{
			name:     "single target is the center",
			rangeID:  5,
			away:     testutils.AllColumns,
			executor: "h2",
			want:     []string{"a2"},
		},
		{
			name:     "two targets prefer left of center",
			rangeID:  6,
			away:     testutils.AllColumns,
			executor: "h2",
			want:     []string{"a2", "a1"},
		},
		{
			name:     "three targets stop at distance one",
			rangeID:  7,
			away:     testutils.AllColumns,
			executor: "h2",
			want:     []string{"a2", "a1", "a3"},
		},
		{
			name:     "four targets skip dead left neighbor",
			rangeID:  32,
			away:     testutils.AllColumns,
			dead:     []string{"a1"},
			executor: "h2",
			want:     []string{"a2", "a3", "a0", "a4"},
		},
		{
			name:     "five targets full row",
			rangeID:  33,
			away:     testutils.AllColumns,
			executor: "h2",
			want:     []string{"a2", "a1", "a3", "a0", "a4"},
		},
		{
			name:     "distance cap returns fewer than count",
			rangeID:  7,
			away:     testutils.AllColumns,
			dead:     []string{"a1", "a3"},
			executor: "h2",
			want:     []string{"a2"},
		},
		{
			name:     "center at edge",
			rangeID:  7,
			away:     testutils.AllColumns,
			executor: "h0",
			want:     []string{"a0", "a1"},
		},
		{
			name:     "center moves when facing enemy is dead",
			rangeID:  6,
			away:     testutils.AllColumns,
			dead:     []string{"a2"},
			executor: "h2",
			want:     []string{"a1", "a0"},
		},
		{
			name:     "missing slots are skipped",
			rangeID:  32,
			away:     []int{0, 2, 4},
			executor: "h2",
			want:     []string{"a2", "a0", "a4"},
		},
		{
			name:     "no enemies alive",
			rangeID:  33,
			away:     testutils.AllColumns,
			dead:     []string{"a0", "a1", "a2", "a3", "a4"},
			executor: "h2",
			want:     []string{},
		},
		{
			name:     "empty enemy side",
			rangeID:  7,
			away:     []int{},
			executor: "h2",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := targeting.NewResolver(nil)
			b := testutils.CreateTestBattle(t, "battle-1", testutils.AllColumns, tt.away)
			testutils.KillCards(t, b, tt.dead...)

			assert.Equal(t, tt.want, resolveIDs(t, resolver, b, tt.rangeID, tt.executor))
		})
	}
}

func TestEnemyNearRange_OffsetOrderNotDistanceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := battle.NewCard("h2", "h2", 2, 100)
	center := battle.NewCard("a2", "a2", 2, 100)
	left := battle.NewCard("a1", "a1", 1, 100)
	left.Dead = true
	right := battle.NewCard("a3", "a3", 3, 100)
	farLeft := battle.NewCard("a0", "a0", 0, 100)
	farRight := battle.NewCard("a4", "a4", 4, 100)

	board := mocktargeting.NewMockBoard(ctrl)
	board.EXPECT().NearestEnemy(executor).Return(center)
	gomock.InOrder(
		board.EXPECT().EnemyAt(executor, 2).Return(center),
		board.EXPECT().EnemyAt(executor, 1).Return(left),
		board.EXPECT().EnemyAt(executor, 3).Return(right),
		board.EXPECT().EnemyAt(executor, 0).Return(farLeft),
		board.EXPECT().EnemyAt(executor, 4).Return(farRight),
	)

	targets, err := targeting.NewResolver(nil).ResolveTargets(board, 32, executor)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3", "a0", "a4"}, testutils.CardIDs(targets))
}

func TestEnemyNearRange_StopsQueryingAtCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := battle.NewCard("h2", "h2", 2, 100)
	center := battle.NewCard("a2", "a2", 2, 100)

	board := mocktargeting.NewMockBoard(ctrl)
	board.EXPECT().NearestEnemy(executor).Return(center)
	board.EXPECT().EnemyAt(executor, 2).Return(center).Times(1)

	targets, err := targeting.NewResolver(nil).ResolveTargets(board, 5, executor)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, testutils.CardIDs(targets))
}

func TestEnemyRandomRange_NotImplementedByDefault(t *testing.T) {
	resolver := targeting.NewResolver(nil)
	b := testutils.CreateFullTestBattle(t, "battle-1")
	executor := testutils.Card(t, b, "h2")

	for _, id := range []int{16, 17, 19, 20, 23} {
		targets, err := resolver.ResolveTargets(b, id, executor)
		assert.True(t, errors.IsNotImplemented(err), "id %d", id)
		assert.Nil(t, targets)
	}
}

func TestEnemyRandomRange_Sampling(t *testing.T) {
	tests := []struct {
		name    string
		rangeID int
		dead    []string
		rolls   []int
		want    []string
	}{
		{
			// pool a0..a4: roll 5 -> a4, pool [a4 a1 a2 a3 a0]; roll 1 -> a1
			name:    "two of five",
			rangeID: 23,
			rolls:   []int{5, 1},
			want:    []string{"a4", "a1"},
		},
		{
			// pool a0..a4: roll 3 -> a2 [a2 a1 a0 a3 a4]; roll 4 -> a4 [a2 a4 a0 a3 a1]; roll 1 -> a0
			name:    "three of five",
			rangeID: 16,
			rolls:   []int{3, 4, 1},
			want:    []string{"a2", "a4", "a0"},
		},
		{
			// six requested, only three alive: a0 a2 a4
			name:    "capped at live enemies",
			rangeID: 17,
			dead:    []string{"a1", "a3"},
			rolls:   []int{1, 1, 1},
			want:    []string{"a0", "a2", "a4"},
		},
		{
			name:    "no live enemies",
			rangeID: 19,
			dead:    []string{"a0", "a1", "a2", "a3", "a4"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.rolls)
			resolver := targeting.NewResolver(&targeting.ResolverConfig{
				Roller:         roller,
				RandomSampling: true,
			})

			b := testutils.CreateFullTestBattle(t, "battle-1")
			testutils.KillCards(t, b, tt.dead...)

			assert.Equal(t, tt.want, resolveIDs(t, resolver, b, tt.rangeID, "h2"))
			assert.Equal(t, 0, roller.Remaining(), "every roll consumed")
		})
	}
}

func TestEnemyRandomRange_DistinctTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := mockdice.NewMockRoller(ctrl)
	// Always draw the last remaining candidate
	roller.EXPECT().Roll(gomock.Any()).DoAndReturn(func(sides int) (int, error) {
		return sides, nil
	}).Times(4)

	resolver := targeting.NewResolver(&targeting.ResolverConfig{Roller: roller, RandomSampling: true})
	b := testutils.CreateFullTestBattle(t, "battle-1")

	ids := resolveIDs(t, resolver, b, 19, "h0")
	assert.Len(t, ids, 4)
	assert.ElementsMatch(t, ids, uniq(ids))
}

func TestEnemyRandomRange_RollerError(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetNextRoll(3)
	resolver := targeting.NewResolver(&targeting.ResolverConfig{Roller: roller, RandomSampling: true})
	b := testutils.CreateFullTestBattle(t, "battle-1")

	// First draw succeeds, the second runs out of rolls
	targets, err := resolver.ResolveTargets(b, 16, testutils.Card(t, b, "h0"))
	assert.Error(t, err)
	assert.Nil(t, targets)
	assert.False(t, errors.IsNotImplemented(err))
	assert.Equal(t, 0, roller.Remaining())
}

func TestEnemyRandomRange_RollOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		roll int
	}{
		{name: "zero", roll: 0},
		{name: "above sides", roll: 6},
		{name: "negative", roll: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			roller := mockdice.NewMockRoller(ctrl)
			roller.EXPECT().Roll(5).Return(tt.roll, nil)

			resolver := targeting.NewResolver(&targeting.ResolverConfig{Roller: roller, RandomSampling: true})
			b := testutils.CreateFullTestBattle(t, "battle-1")

			var err error
			assert.NotPanics(t, func() {
				_, err = resolver.ResolveTargets(b, 23, testutils.Card(t, b, "h0"))
			})
			assert.True(t, errors.Is(err, errors.CodeInternal), "got %v", err)
		})
	}
}

func uniq(ids []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
