package recovery

import (
	"context"
	"net/http"
	"runtime/debug"

	"upstagram/be/biz/model/errs"
	"upstagram/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if r := recover(); r != nil {
				hlog.CtxErrorf(ctx, "panic recovered: %v\n%s", r, debug.Stack())
				resp.AbortWithErr(c, errs.ServerError, http.StatusInternalServerError)
			}
		}()
		c.Next(ctx)
	}
}
