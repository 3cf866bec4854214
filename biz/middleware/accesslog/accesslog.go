package accesslog

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/logger/accesslog"
)

// New 요청 한 줄 로그. IP 기반 보호 미들웨어 확인용으로 클라이언트 주소를 포함한다.
func New() app.HandlerFunc {
	return accesslog.New(
		accesslog.WithAccessLogFunc(hlog.CtxInfof),
		accesslog.WithFormat("${status} ${latency} ${ip} ${method} ${path} ${queryParams}"),
	)
}
