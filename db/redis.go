package db

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis(redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(context.Background()).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}
