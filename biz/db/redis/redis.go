package redis

import (
	"context"
	"fmt"

	"upstagram/be/biz/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Init() {
	conf := config.GetRedisConf()

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		panic(err)
	}

	redisClient = client
}

func GetRedisClient() *redis.Client {
	return redisClient
}
