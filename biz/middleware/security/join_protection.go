package security

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"upstagram/be/biz/config"
	"upstagram/be/biz/db/redis"
	"upstagram/be/biz/model/dto"
	"upstagram/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const keyJoinBlock = "join_block:"

// NewJoinProtection blocks repeated registrations from the same IP. One
// successful join arms a cooldown; further joins from that IP are rejected
// until it expires.
func NewJoinProtection() app.HandlerFunc {
	conf := config.GetJoinProtectionConf()

	blockDuration := time.Duration(conf.BlockMinutes) * time.Minute
	if blockDuration <= 0 {
		blockDuration = 10 * time.Minute
	}

	return func(ctx context.Context, c *app.RequestContext) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		rdb := redis.GetRedisClient()

		if n, _ := rdb.Exists(ctx, "rate_limit:"+keyJoinBlock+ip).Result(); n > 0 {
			c.JSON(http.StatusForbidden, dto.CommonResp{
				Code:    int(errs.RequestBlocked.Code()),
				Message: "Too many registrations, please try again later",
				Success: false,
			})
			c.Abort()
			return
		}

		c.Next(ctx)

		respBody := c.Response.Body()
		var resp dto.CommonResp
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return
		}
		if !resp.Success {
			return
		}

		if err := rdb.Set(ctx, "rate_limit:"+keyJoinBlock+ip, "1", blockDuration).Err(); err != nil {
			hlog.CtxErrorf(ctx, "Failed to set join block key: %v", err)
		}
	}
}
