package battles

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed battle repository with default configuration
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:    client,
		BattleTTL: defaultBattleTTL,
	})
}
