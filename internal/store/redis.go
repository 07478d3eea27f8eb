package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
)

const redisKeyPrefix = "caltrack:users:"

// RedisStore keeps one JSON document per user under caltrack:users:<id>.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if strings.TrimSpace(opts.Addr) == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RedisStore{client: client, now: time.Now}, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Load(ctx context.Context, userID string) (*model.UserData, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, false, fmt.Errorf("user id is required")
	}
	body, err := s.client.Get(ctx, redisKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load document for %s: %w", userID, err)
	}
	data, err := decodeDocument(body)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, data *model.UserData) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	key := redisKeyPrefix + userID
	existing, err := s.client.Get(ctx, key).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("read document for %s: %w", userID, err)
	}
	body, err := mergeDocument(existing, data, s.now())
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key, body, 0).Err(); err != nil {
		return fmt.Errorf("save document for %s: %w", userID, err)
	}
	return nil
}
