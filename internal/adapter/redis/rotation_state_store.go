// Package redisadapter provides a Redis-backed rotation state store. The state is
// kept in one hash per rotation key; compare-and-swap runs as a Lua script so
// the check and the write are atomic on the server.
package redisadapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"inscription-api/internal/core/domain"
)

const (
	fieldLastLinkID = "last_link_id"
	fieldUpdatedAt  = "updated_at"
)

// swapScript sets the hash fields when last_link_id equals ARGV[1]. An empty
// ARGV[1] expects the field to be absent. Returns 1 on success, 0 otherwise.
var swapScript = redis.NewScript(`
	local current = redis.call('HGET', KEYS[1], 'last_link_id')
	if not current then
		current = ''
	end
	if current ~= ARGV[1] then
		return 0
	end
	redis.call('HSET', KEYS[1], 'last_link_id', ARGV[2], 'updated_at', ARGV[3])
	return 1
`)

// RotationStateStore implements port.RotationStateStore on Redis.
type RotationStateStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRotationStateStore returns a store writing keys under prefix.
func NewRotationStateStore(client redis.UniversalClient, prefix string) *RotationStateStore {
	return &RotationStateStore{client: client, prefix: prefix}
}

func (s *RotationStateStore) hashKey(key string) string {
	return s.prefix + "rotation:" + key
}

// GetState returns the state stored under key or nil when absent.
func (s *RotationStateStore) GetState(ctx context.Context, key string) (*domain.RotationState, error) {
	vals, err := s.client.HGetAll(ctx, s.hashKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall rotation state: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}

	state := &domain.RotationState{Key: key}
	if raw, ok := vals[fieldLastLinkID]; ok && raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", fieldLastLinkID, raw, err)
		}
		state.LastLinkID = &id
	}
	if raw, ok := vals[fieldUpdatedAt]; ok && raw != "" {
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", fieldUpdatedAt, raw, err)
		}
		state.UpdatedAt = at
	}
	return state, nil
}

// SwapState writes next only if the stored last link still equals expected.
// A nil expected matches a missing state.
func (s *RotationStateStore) SwapState(ctx context.Context, key string, expected *int64, next int64, at time.Time) (bool, error) {
	want := ""
	if expected != nil {
		want = strconv.FormatInt(*expected, 10)
	}
	res, err := swapScript.Run(ctx, s.client, []string{s.hashKey(key)},
		want, next, at.UTC().Format(time.RFC3339Nano),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("swap rotation state: %w", err)
	}
	return res == 1, nil
}

// UpsertState writes next regardless of the stored value.
func (s *RotationStateStore) UpsertState(ctx context.Context, key string, next int64, at time.Time) error {
	err := s.client.HSet(ctx, s.hashKey(key),
		fieldLastLinkID, next,
		fieldUpdatedAt, at.UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("hset rotation state: %w", err)
	}
	return nil
}
