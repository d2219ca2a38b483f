package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
)

const sessionKeyPrefix = "photo-dashboard:session:"

// SessionRepository stores one JSON snapshot per key with a TTL
type SessionRepository struct {
	redis  *redis.Client
	prefix string
}

func NewSessionRepository(client *redis.Client) repositories.SessionRepository {
	return &SessionRepository{redis: client, prefix: sessionKeyPrefix}
}

func (r *SessionRepository) key(id uuid.UUID) string {
	return r.prefix + id.String()
}

func (r *SessionRepository) Save(ctx context.Context, snapshot *models.SessionSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return r.redis.Set(ctx, r.key(snapshot.ID), data, ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.SessionSnapshot, error) {
	data, err := r.redis.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}

	var snapshot models.SessionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snapshot, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.redis.Del(ctx, r.key(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
