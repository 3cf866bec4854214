package be

import (
	"upstagram/be/biz/handler"
	"upstagram/be/biz/middleware"
	"upstagram/be/biz/middleware/jwt"
	"upstagram/be/biz/middleware/security"
	_ "upstagram/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

// NewEngine assembles the server: middleware suite, swagger and the member and
// story route groups.
func NewEngine(opts ...config.Option) *server.Hertz {
	h := server.Default(opts...)
	h.Use(middleware.Suite()...)

	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	v1 := h.Group("/api/v1")

	memberGroup := v1.Group("/member")
	memberGroup.POST("/join", security.NewJoinProtection(), handler.Join)
	memberGroup.POST("/login", security.NewLoginProtection(), handler.Login)
	memberGroup.GET("/oauth/login", handler.OAuthLogin)
	memberGroup.GET("/oauth/callback", handler.OAuthCallback)
	memberGroup.POST("/refresh_token", handler.RefreshToken)
	memberGroup.POST("/logout", jwt.ValidateMW(), handler.Logout)
	memberGroup.GET("/info", jwt.ValidateMW(), handler.GetMemberInfo)

	storyGroup := v1.Group("/story", jwt.ValidateMW())
	storyGroup.GET("/list", handler.ListStories)
	storyGroup.POST("/submit", handler.SubmitStory)
	storyGroup.POST("/react", handler.ReactStory)
	storyGroup.POST("/watch", handler.WatchStory)

	return h
}
