package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject seeded or scripted implementations for testing
type Roller interface {
	// Roll rolls a single die with the given number of sides, returning 1..sides
	Roll(sides int) (int, error)
}
