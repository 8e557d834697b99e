package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=mockbattlerepo -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

// Repository defines the interface for battle storage operations
type Repository interface {
	// Create stores a new battle
	Create(ctx context.Context, b *battle.Battle) error

	// Get retrieves a battle by ID
	Get(ctx context.Context, id string) (*battle.Battle, error)

	// Update replaces an existing battle
	Update(ctx context.Context, b *battle.Battle) error

	// Delete removes a battle
	Delete(ctx context.Context, id string) error

	// ListIDs returns the ids of every stored battle
	ListIDs(ctx context.Context) ([]string, error)
}
