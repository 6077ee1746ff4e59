package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"jobboard-service/internal/domain/entities"
)

type RedisOptions struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

// RedisService caches caller profiles. A service without a client is
// disabled: writes are no-ops and reads always miss.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(ctx context.Context, opts RedisOptions, log logrus.FieldLogger) *RedisService {
	if opts.URL != "" {
		parsed, err := redis.ParseURL(opts.URL)
		if err == nil {
			client := redis.NewClient(parsed)
			if err := client.Ping(ctx).Err(); err != nil {
				log.WithError(err).Warn("redis connection failed with REDIS_URL")
				_ = client.Close()
			} else {
				log.Info("connected to redis using REDIS_URL")
				return &RedisService{client: client}
			}
		} else {
			log.WithError(err).Warn("invalid REDIS_URL")
		}
	}

	if opts.Host == "" {
		log.Info("redis not configured, profile cache disabled")
		return &RedisService{}
	}
	if opts.Port == "" {
		opts.Port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis connection failed, profile cache disabled")
		_ = client.Close()
		return &RedisService{}
	}

	log.WithField("addr", fmt.Sprintf("%s:%s", opts.Host, opts.Port)).Info("connected to redis")
	return &RedisService{client: client}
}

// NewRedisServiceWithClient wraps an existing client.
func NewRedisServiceWithClient(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

func (r *RedisService) Enabled() bool {
	return r != nil && r.client != nil
}

func profileKey(userID uint) string {
	return fmt.Sprintf("profile:%d", userID)
}

func (r *RedisService) SetProfile(ctx context.Context, caller entities.Caller, ttl time.Duration) error {
	if !r.Enabled() {
		return nil
	}
	data, err := json.Marshal(caller)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, profileKey(caller.UserID), data, ttl).Err()
}

// GetProfile returns nil, nil on a cache miss.
func (r *RedisService) GetProfile(ctx context.Context, userID uint) (*entities.Caller, error) {
	if !r.Enabled() {
		return nil, nil
	}
	data, err := r.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var caller entities.Caller
	if err := json.Unmarshal(data, &caller); err != nil {
		return nil, err
	}
	return &caller, nil
}

func (r *RedisService) DeleteProfile(ctx context.Context, userID uint) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Del(ctx, profileKey(userID)).Err()
}

func (r *RedisService) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
