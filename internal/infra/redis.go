package infra

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

func InitRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Error parsing REDIS_URL: %v", err)
		log.Fatal("Error connecting to redis")
	}
	return redis.NewClient(opts)
}
