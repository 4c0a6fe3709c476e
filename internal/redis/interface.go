package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the stores rely on.
// Both the real client and a miniredis-backed client satisfy it.
type Client interface {
	redis.UniversalClient
}
