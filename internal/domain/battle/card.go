package battle

// Card is a combatant occupying one formation column
type Card struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PlayerID        int    `json:"player_id"`
	FormationColumn int    `json:"formation_column"`
	HP              int    `json:"hp"`
	MaxHP           int    `json:"max_hp"`
	Dead            bool   `json:"dead"`
}

// NewCard creates a live card at full health
func NewCard(id, name string, column, maxHP int) *Card {
	return &Card{
		ID:              id,
		Name:            name,
		FormationColumn: column,
		HP:              maxHP,
		MaxHP:           maxHP,
	}
}

// IsDead reports whether the card has been knocked out
func (c *Card) IsDead() bool {
	return c.Dead
}

// TakeDamage lowers HP, clamping at zero and marking the card dead
func (c *Card) TakeDamage(amount int) {
	if amount <= 0 || c.Dead {
		return
	}
	c.HP -= amount
	if c.HP <= 0 {
		c.HP = 0
		c.Dead = true
	}
}
