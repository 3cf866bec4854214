package middleware

import (
	"upstagram/be/biz/middleware/accesslog"
	"upstagram/be/biz/middleware/cors"
	"upstagram/be/biz/middleware/ratelimit"
	"upstagram/be/biz/middleware/recovery"
	"upstagram/be/biz/middleware/session"
	"upstagram/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // 链路ID
		accesslog.New(), // 接口日志
		cors.New(),      // 跨域请求
		session.New(),   // 会话
		ratelimit.New(), // 限流
	}
}
