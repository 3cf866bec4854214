package interceptor

import (
	"context"
	"time"

	"upstagram/be/biz/db/redis"
)

// luaScript keeps INCR + EXPIRE atomic and re-arms keys that lost their TTL.
// KEYS[1]: the rate limit key
// ARGV[1]: window duration in seconds
// ARGV[2]: max count within the window
const luaScript = `
local key = KEYS[1]
local window = ARGV[1]
local limit = tonumber(ARGV[2])

local current = redis.call("INCR", key)

if current == 1 then
    redis.call("EXPIRE", key, window)
else
    if redis.call("TTL", key) == -1 then
        redis.call("EXPIRE", key, window)
    end
end

if current > limit then
    return 0
end
return 1
`

type Interceptor struct {
	window time.Duration
	limit  int64
}

func NewInterceptor(windowSeconds int, limit int64) *Interceptor {
	return &Interceptor{
		window: time.Duration(windowSeconds) * time.Second,
		limit:  limit,
	}
}

// Allow counts one hit for key and reports whether it stays within the limit.
func (i *Interceptor) Allow(ctx context.Context, key string) (bool, error) {
	result, err := redis.GetRedisClient().
		Eval(ctx, luaScript, []string{"rate_limit:" + key}, int(i.window.Seconds()), i.limit).Result()
	if err != nil {
		return false, err
	}

	return result.(int64) == 1, nil
}

// ReachLimit peeks at the counter without incrementing it.
func (i *Interceptor) ReachLimit(ctx context.Context, key string) bool {
	count, err := redis.GetRedisClient().Get(ctx, "rate_limit:"+key).Int64()
	if err != nil {
		return false
	}
	return count > i.limit
}
