// Package uuid generates battle and card identifiers behind an interface so tests can pin them.
package uuid

//go:generate mockgen -destination=mocks/mock_uuid.go -package=mockuuid -source=uuid.go

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator is an interface for generating ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new random UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator hands out prefixed, increasing ids ("card-1", "card-2", ...).
// Not safe for concurrent use; intended for fixtures and the simulator CLI.
type SequenceGenerator struct {
	Prefix string
	next   int
}

// New returns the next id in the sequence
func (g *SequenceGenerator) New() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}

// Valid reports whether s parses as a UUID
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
