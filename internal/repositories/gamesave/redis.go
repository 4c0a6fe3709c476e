package gamesave

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-inventory/internal/redis"
)

// IndexKey is the Redis set holding every stored save ID
const IndexKey = "gamesave_index"

const (
	saveKeyPrefix = "gamesave:"

	// Error messages
	errSaveNil     = "save cannot be nil"
	errSaveIDEmpty = "save ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis game save repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed game save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	result, err := r.client.Get(ctx, Key(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("game save %s not found", input.ID).WithMeta("save_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get game save %s", input.ID)
	}

	var gs save.GameSave
	if err := json.Unmarshal([]byte(result), &gs); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal game save")
	}

	return &GetOutput{Save: &gs}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Save == nil {
		return nil, errors.InvalidArgument(errSaveNil)
	}
	if input.Save.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	data, err := json.Marshal(input.Save)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game save")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(input.Save.ID), data, 0)
	pipe.SAdd(ctx, IndexKey, input.Save.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update game save %s", input.Save.ID)
	}

	slog.DebugContext(ctx, "game save written",
		"save_id", input.Save.ID,
		"objects", len(input.Save.Objects),
		"bytes", len(data))

	return &UpdateOutput{Save: input.Save}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	key := Key(input.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check game save existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("game save %s not found", input.ID).WithMeta("save_id", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, IndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete game save %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, IndexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read game save index",
			"index_key", IndexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to list game saves")
	}

	sort.Strings(ids)
	return &ListOutput{IDs: ids}, nil
}

// Key returns the Redis key for a save slot
func Key(id string) string {
	return saveKeyPrefix + id
}

// IDFromKey is the inverse of Key
func IDFromKey(key string) (string, bool) {
	return strings.CutPrefix(key, saveKeyPrefix)
}
