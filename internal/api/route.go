package api

import (
	"Recipeo/internal/api/middleware"
	"Recipeo/internal/pkg/logger"
	"Recipeo/internal/pkg/security"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			logoutGroup := authGroup.Group("")
			logoutGroup.Use(middleware.AuthMiddleware())
			{
				logoutGroup.POST("/logout", group.AuthHandler.Logout)
			}
		}

		// 帖子与评论，所有路由统一要求登录
		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.AuthMiddleware())
		{
			postGroup.POST("/create", group.PostHandler.CreatePost)
			postGroup.GET("/social/posts", group.PostHandler.GetSocialFeed)
			postGroup.GET("/:userId/posts", group.PostHandler.GetUserPosts)
			postGroup.DELETE("/:postId", group.PostHandler.DeletePost)
			postGroup.POST("/:postId/like", group.PostHandler.LikePost)

			postGroup.POST("/:postId/comment", group.PostActionHandler.AddComment)
			postGroup.PUT("/:postId/comment/:commentId", group.PostActionHandler.EditComment)
			postGroup.DELETE("/:postId/comment/:commentId", group.PostActionHandler.DeleteComment)
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/me", group.UserHandler.GetMe)
			userGroup.PUT("/update-avatar", group.UserHandler.UpdateAvatar)
			userGroup.POST("/posts/report", group.ModerationHandler.ReportPost)

			// 管理员专属
			adminGroup := userGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(security.RoleAdmin))
			{
				adminGroup.POST("/ban-user", group.ModerationHandler.BanUser)
				adminGroup.GET("/banned", group.ModerationHandler.ListBans)
				adminGroup.GET("/search", group.UserHandler.Search)
				adminGroup.GET("/reports", group.ModerationHandler.ListReports)
				adminGroup.DELETE("/reports/:reportId/post/:postId", group.ModerationHandler.ResolveReport)
				adminGroup.DELETE("/reports/:reportId", group.ModerationHandler.DismissReport)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
