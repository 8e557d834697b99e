package battles

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
)

const (
	battleKeyPrefix = "battle:"
	battleIndexKey  = "battles"

	// Battles are short lived; a day covers any simulation run
	defaultBattleTTL = 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client    redis.UniversalClient
	BattleTTL time.Duration
}

type redisRepository struct {
	client    redis.UniversalClient
	battleTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed battle repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.BattleTTL
	if ttl == 0 {
		ttl = defaultBattleTTL
	}

	return &redisRepository{
		client:    cfg.Client,
		battleTTL: ttl,
	}
}

func battleKey(id string) string {
	return battleKeyPrefix + id
}

// Create stores a new battle, failing if the id is taken
func (r *redisRepository) Create(ctx context.Context, b *battle.Battle) error {
	if err := validate(b); err != nil {
		return err
	}

	data, err := json.Marshal(b)
	if err != nil {
		return errors.Wrap(err, "failed to serialize battle")
	}

	created, err := r.client.SetNX(ctx, battleKey(b.ID), string(data), r.battleTTL).Result()
	if err != nil {
		return errors.Wrap(err, "failed to create battle")
	}
	if !created {
		return errors.AlreadyExistsf("battle with ID %s already exists", b.ID)
	}

	if err := r.client.SAdd(ctx, battleIndexKey, b.ID).Err(); err != nil {
		return errors.Wrap(err, "failed to index battle")
	}

	return nil
}

// Get retrieves a battle by ID and refreshes its TTL
func (r *redisRepository) Get(ctx context.Context, id string) (*battle.Battle, error) {
	key := battleKey(id)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle not found: %s", id)
		}
		return nil, errors.Wrap(err, "failed to get battle")
	}

	var b battle.Battle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize battle")
	}

	r.client.Expire(ctx, key, r.battleTTL)

	return &b, nil
}

// Update replaces an existing battle
func (r *redisRepository) Update(ctx context.Context, b *battle.Battle) error {
	if err := validate(b); err != nil {
		return err
	}

	data, err := json.Marshal(b)
	if err != nil {
		return errors.Wrap(err, "failed to serialize battle")
	}

	updated, err := r.client.SetXX(ctx, battleKey(b.ID), string(data), r.battleTTL).Result()
	if err != nil {
		return errors.Wrap(err, "failed to update battle")
	}
	if !updated {
		return errors.NotFoundf("battle not found: %s", b.ID)
	}

	return nil
}

// Delete removes a battle and its index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	removed, err := r.client.Del(ctx, battleKey(id)).Result()
	if err != nil {
		return errors.Wrap(err, "failed to delete battle")
	}
	if removed == 0 {
		return errors.NotFoundf("battle not found: %s", id)
	}

	if err := r.client.SRem(ctx, battleIndexKey, id).Err(); err != nil {
		return errors.Wrap(err, "failed to remove battle from index")
	}

	return nil
}

// ListIDs returns indexed battle ids in ascending order.
// Ids whose battle expired stay in the index until deleted.
func (r *redisRepository) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, battleIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}
	sort.Strings(ids)
	return ids, nil
}
