package battles

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	battles map[string]*battle.Battle
}

// NewInMemoryRepository creates a new in-memory battle repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		battles: make(map[string]*battle.Battle),
	}
}

// Create stores a new battle
func (r *inMemoryRepository) Create(ctx context.Context, b *battle.Battle) error {
	if err := validate(b); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[b.ID]; exists {
		return errors.AlreadyExistsf("battle with ID %s already exists", b.ID)
	}

	// Store a copy to avoid external modifications
	r.battles[b.ID] = b.Clone()
	return nil
}

// Get retrieves a battle by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*battle.Battle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.battles[id]
	if !exists {
		return nil, errors.NotFoundf("battle not found: %s", id)
	}

	// Return a copy so callers only change the stored battle through Update
	return b.Clone(), nil
}

// Update replaces an existing battle
func (r *inMemoryRepository) Update(ctx context.Context, b *battle.Battle) error {
	if err := validate(b); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[b.ID]; !exists {
		return errors.NotFoundf("battle not found: %s", b.ID)
	}

	// Store a copy to avoid external modifications
	r.battles[b.ID] = b.Clone()
	return nil
}

// Delete removes a battle
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[id]; !exists {
		return errors.NotFoundf("battle not found: %s", id)
	}

	delete(r.battles, id)
	return nil
}

// ListIDs returns stored battle ids in ascending order
func (r *inMemoryRepository) ListIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.battles))
	for id := range r.battles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func validate(b *battle.Battle) error {
	if b == nil {
		return errors.Validationf("battle cannot be nil")
	}
	if b.ID == "" {
		return errors.Validationf("battle ID cannot be empty")
	}
	return nil
}
