package tokenstore

import (
	"context"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

// Redis keeps the token in a Redis instance so several client processes
// can share one session. TTL of zero means the key never expires.
type Redis struct {
	client *redislib.Client
	key    string
	ttl    time.Duration
}

// RedisConfig mirrors config.RedisConfig without importing the config
// package here.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
	TTL      time.Duration
}

// OpenRedis connects to Redis and performs a health check.
func OpenRedis(cfg RedisConfig) (*Redis, error) {
	opts, err := redislib.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redislib.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Redis{
		client: client,
		key:    "session:" + TokenKey,
		ttl:    cfg.TTL,
	}, nil
}

func (r *Redis) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == redislib.Nil {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func (r *Redis) Save(ctx context.Context, token string) error {
	return r.client.Set(ctx, r.key, token, r.ttl).Err()
}

func (r *Redis) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
