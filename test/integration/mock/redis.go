package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client backed by a shared miniredis instance.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		redisConn = openRedisConn()
	})
	return redisConn
}

func openRedisConn() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{
		Addr: miniRedis.Addr(),
	})
}

// ClearRedis flushes all keys.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
