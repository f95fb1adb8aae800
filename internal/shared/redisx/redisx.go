package redisx

import (
	"github.com/redis/go-redis/v9"

	"github.com/Ripeplantain/Twitter-Backend-Api/configs"
)

type Client struct{ R *redis.Client }

func NewClient(cfg *configs.Config) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPass,
		DB:       0,
	})
	return &Client{R: rdb}
}
