package battle

// Player is one side of a battle
type Player struct {
	// ID is 1 for the home side and 2 for the opposing side by convention
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Formation *Formation `json:"formation"`
	// Multiplier carries all-out-attack and title bonuses
	Multiplier float64 `json:"multiplier"`
}

// NewPlayer creates a player with a neutral multiplier
func NewPlayer(id int, name string, formation *Formation) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Formation:  formation,
		Multiplier: 1,
	}
}
