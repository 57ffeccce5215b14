package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/config"
	"github.com/portfolioapi/internal/handler"
)

// Setup 配置 Gin 引擎和路由
func Setup(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("portfolio_session", store))

	// 静态文件服务；上传目录挂载独立前缀，避免与 /static 通配冲突
	r.Static("/static", "./web/static")
	r.Static("/images", "./web/static/images")
	r.Static("/uploads", cfg.UploadDir)
	r.StaticFile("/admin", "./web/static/admin.html")

	r.GET("/", api.Root)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/homepage", api.GetHomepage)
		apiGroup.GET("/about", api.GetAbout)
		apiGroup.GET("/works", api.GetWorksPage)
		apiGroup.GET("/contact", api.GetContact)

		// 两种路径拼写都被历史前端使用过，同时保留
		apiGroup.GET("/work/:slug", api.GetWorkDetail)
		apiGroup.GET("/works/:slug", api.GetWorkDetail)

		admin := apiGroup.Group("/admin")
		{
			admin.POST("/login", api.Login)

			// 需要认证的后台路由
			auth := admin.Group("")
			auth.Use(handler.AuthRequired())
			{
				auth.POST("/logout", api.Logout)
				auth.GET("/session", api.Session)

				auth.GET("/works", api.GetWorks)
				auth.GET("/works/:id", api.GetWork)
				auth.POST("/works", api.CreateWork)
				auth.PUT("/works/:id", api.UpdateWork)
				auth.DELETE("/works/:id", api.DeleteWork)

				auth.GET("/settings", api.GetSettings)
				auth.PUT("/settings", api.UpdateSettings)

				auth.POST("/preview", api.PreviewMarkdown)
				auth.POST("/upload", api.UploadImage)
			}
		}
	}

	return r
}
