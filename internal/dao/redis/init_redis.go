package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cadastro_api/internal/config"

	"github.com/redis/go-redis/v9"
)

// Init connects to Redis and checks the connection with a PING.
func Init(conf config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         conf.Host + ":" + strconv.Itoa(conf.Port),
		Password:     conf.Password,
		DB:           conf.Db,
		PoolSize:     20,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisCache(client), nil
}
