package battle

import (
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
)

// nearestEnemyOffsets are tried against the column facing the executor, first live card wins
var nearestEnemyOffsets = []int{0, -1, 1, -2, 2, -3, 3, -4, 4}

// Battle holds both sides of a fight and answers positional queries about them
type Battle struct {
	ID      string          `json:"id"`
	Players []*Player       `json:"players"`
	Cards   map[int][]*Card `json:"cards"` // player ID -> cards indexed by column, nil for empty slots
}

// NewBattle places each side's cards by formation column
func NewBattle(id string, home *Player, homeCards []*Card, away *Player, awayCards []*Card) (*Battle, error) {
	if home == nil || away == nil {
		return nil, errors.Validationf("battle %s needs two players", id)
	}
	if home.ID == away.ID {
		return nil, errors.Validationf("battle %s has duplicate player id %d", id, home.ID)
	}

	b := &Battle{
		ID:      id,
		Players: []*Player{home, away},
		Cards:   make(map[int][]*Card, 2),
	}

	for _, side := range []struct {
		player *Player
		cards  []*Card
	}{{home, homeCards}, {away, awayCards}} {
		row, err := placeCards(side.player.ID, side.cards)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to place cards for player %d", side.player.ID)
		}
		b.Cards[side.player.ID] = row
	}

	return b, nil
}

func placeCards(playerID int, cards []*Card) ([]*Card, error) {
	if len(cards) > FormationColumns {
		return nil, errors.Validationf("%d cards exceed %d formation columns", len(cards), FormationColumns)
	}

	row := make([]*Card, FormationColumns)
	for _, card := range cards {
		if card == nil {
			continue
		}
		if card.FormationColumn < 0 || card.FormationColumn >= FormationColumns {
			return nil, errors.Validationf("card %s has column %d outside formation", card.ID, card.FormationColumn)
		}
		if row[card.FormationColumn] != nil {
			return nil, errors.Validationf("column %d is occupied twice", card.FormationColumn)
		}
		card.PlayerID = playerID
		row[card.FormationColumn] = card
	}
	return row, nil
}

// Player returns the player with the given id, nil if not part of this battle
func (b *Battle) Player(playerID int) *Player {
	for _, p := range b.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// Opponent returns the player facing the given one
func (b *Battle) Opponent(playerID int) *Player {
	if b.Player(playerID) == nil {
		return nil
	}
	for _, p := range b.Players {
		if p.ID != playerID {
			return p
		}
	}
	return nil
}

// CardByID finds a card on either side
func (b *Battle) CardByID(id string) (*Card, error) {
	for _, p := range b.Players {
		for _, card := range b.Cards[p.ID] {
			if card != nil && card.ID == id {
				return card, nil
			}
		}
	}
	return nil, errors.NotFoundf("card %s not found in battle %s", id, b.ID)
}

func (b *Battle) cardAt(playerID, column int) *Card {
	row := b.Cards[playerID]
	if column < 0 || column >= len(row) {
		return nil
	}
	return row[column]
}

// LeftNeighbor returns the card one column to the left on the same side
func (b *Battle) LeftNeighbor(card *Card) *Card {
	return b.cardAt(card.PlayerID, card.FormationColumn-1)
}

// RightNeighbor returns the card one column to the right on the same side
func (b *Battle) RightNeighbor(card *Card) *Card {
	return b.cardAt(card.PlayerID, card.FormationColumn+1)
}

// PartyCards returns the card's own side in column order. Empty slots are omitted, dead cards kept.
func (b *Battle) PartyCards(card *Card) []*Card {
	return b.sideCards(card.PlayerID)
}

// EnemyCards returns the opposing side in column order. Empty slots are omitted, dead cards kept.
func (b *Battle) EnemyCards(card *Card) []*Card {
	opponent := b.Opponent(card.PlayerID)
	if opponent == nil {
		return nil
	}
	return b.sideCards(opponent.ID)
}

func (b *Battle) sideCards(playerID int) []*Card {
	row := b.Cards[playerID]
	out := make([]*Card, 0, len(row))
	for _, c := range row {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// EnemyAt returns the opposing card at a column, nil for empty or out of range slots
func (b *Battle) EnemyAt(card *Card, column int) *Card {
	opponent := b.Opponent(card.PlayerID)
	if opponent == nil {
		return nil
	}
	return b.cardAt(opponent.ID, column)
}

// NearestEnemy returns the closest live opposing card, searching outward from the facing column.
// Columns past either edge are skipped; the search does not wrap.
func (b *Battle) NearestEnemy(card *Card) *Card {
	for _, offset := range nearestEnemyOffsets {
		enemy := b.EnemyAt(card, card.FormationColumn+offset)
		if enemy != nil && !enemy.IsDead() {
			return enemy
		}
	}
	return nil
}

// LiveCount returns how many cards of a player are still standing
func (b *Battle) LiveCount(playerID int) int {
	count := 0
	for _, c := range b.Cards[playerID] {
		if c != nil && !c.IsDead() {
			count++
		}
	}
	return count
}

// Clone returns a deep copy; cards and players are not shared with the original
func (b *Battle) Clone() *Battle {
	if b == nil {
		return nil
	}

	out := &Battle{
		ID:      b.ID,
		Players: make([]*Player, 0, len(b.Players)),
		Cards:   make(map[int][]*Card, len(b.Cards)),
	}

	for _, p := range b.Players {
		if p == nil {
			out.Players = append(out.Players, nil)
			continue
		}
		playerCopy := *p
		if p.Formation != nil {
			formationCopy := *p.Formation
			playerCopy.Formation = &formationCopy
		}
		out.Players = append(out.Players, &playerCopy)
	}

	for playerID, row := range b.Cards {
		rowCopy := make([]*Card, len(row))
		for i, c := range row {
			if c != nil {
				cardCopy := *c
				rowCopy[i] = &cardCopy
			}
		}
		out.Cards[playerID] = rowCopy
	}

	return out
}
