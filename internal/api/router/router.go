package router

import (
	"net/http"

	"seekreviews/internal/api/handler"
	"seekreviews/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	movieHandler *handler.MovieHandler,
	bookHandler *handler.BookHandler,
	commentHandler *handler.CommentHandler,
	ratingHandler *handler.RatingHandler,
	seenHandler *handler.SeenHandler,
	authLimiter gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		// 注册和登录单独收紧限流，防止撞库
		auth.POST("/register", authLimiter, authHandler.Register)
		auth.POST("/login", authLimiter, authHandler.Login)
		auth.GET("/verify-token", authHandler.VerifyToken)
	}

	// --- 用户模块 ---
	users := v1.Group("/users")
	{
		users.GET("/:id", userHandler.GetByID)
		users.GET("/:id/favorites", userHandler.Favorites)
		users.GET("/:id/seen", userHandler.Seen)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.PATCH("/:id", userHandler.Update)
			usersAuth.DELETE("/:id", userHandler.Delete)

			// 管理员接口
			admin := usersAuth.Group("", middleware.AdminRequired())
			{
				admin.GET("", userHandler.List)
			}
		}
	}

	// --- 电影模块 ---
	movies := v1.Group("/movies")
	{
		movies.GET("", movieHandler.List)
		movies.GET("/search", movieHandler.Search)
		movies.GET("/genre", movieHandler.ListByGenre)
		movies.GET("/:id", middleware.AuthOptional(), movieHandler.GetByID)

		// 管理员接口
		admin := movies.Group("", middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.POST("", movieHandler.Create)
			admin.PATCH("/:id", movieHandler.Update)
			admin.POST("/:id/cover", movieHandler.UploadCover)
			admin.DELETE("/:id", movieHandler.Delete)
		}
	}

	// --- 书籍模块 ---
	books := v1.Group("/books")
	{
		books.GET("", bookHandler.List)
		books.GET("/search", bookHandler.Search)
		books.GET("/genre", bookHandler.ListByGenre)
		books.GET("/:id", middleware.AuthOptional(), bookHandler.GetByID)

		// 管理员接口
		admin := books.Group("", middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.POST("", bookHandler.Create)
			admin.PATCH("/:id", bookHandler.Update)
			admin.POST("/:id/cover", bookHandler.UploadCover)
			admin.DELETE("/:id", bookHandler.Delete)
		}
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments")
	{
		comments.GET("/movie", commentHandler.ListByMovie)
		comments.GET("/book", commentHandler.ListByBook)

		commentsAuth := comments.Group("", middleware.AuthRequired())
		{
			commentsAuth.POST("", commentHandler.Create)
			commentsAuth.PUT("/:id", commentHandler.Update)
			commentsAuth.PATCH("/:id", commentHandler.Update)
			commentsAuth.DELETE("/:id", commentHandler.Delete)
		}
	}

	// --- 评分模块 ---
	ratings := v1.Group("/ratings")
	{
		ratings.GET("/movie", ratingHandler.ListByMovie)
		ratings.GET("/book", ratingHandler.ListByBook)
		ratings.GET("/user", ratingHandler.ListByUser)

		ratingsAuth := ratings.Group("", middleware.AuthRequired())
		{
			ratingsAuth.POST("", ratingHandler.Create)
			ratingsAuth.PUT("/:id", ratingHandler.Update)
			ratingsAuth.PATCH("/:id", ratingHandler.Update)
			ratingsAuth.DELETE("/:id", ratingHandler.Delete)
		}
	}

	// --- 观看/阅读记录模块 ---
	seen := v1.Group("/seen", middleware.AuthRequired())
	{
		seen.POST("", seenHandler.Create)
		seen.DELETE("/:id", seenHandler.Delete)
	}
}
