package routes

import (
	"github.com/gin-gonic/gin"

	"blogify/internal/authz"
	"blogify/internal/handlers"
	"blogify/internal/middleware"
	"blogify/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	authService services.AuthService,
	userService services.UserService,
	authHandler *handlers.AuthHandler,
	blogHandler *handlers.BlogHandler,
	commentHandler *handlers.CommentHandler,
	profileHandler *handlers.ProfileHandler,
) *gin.Engine {

	// ---- public
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
		auth.POST("/resend-otp", authHandler.ResendOTP)
		auth.POST("/login", authHandler.Login)
	}

	pub := r.Group("/api/blogs")
	{
		pub.GET("/published", blogHandler.ListPublished)
		pub.GET("/published/:id", blogHandler.GetPublishedByID)
		pub.GET("/search", blogHandler.Search)
		pub.GET("/:id/comments", commentHandler.List)
	}

	// ---- protected (всё ниже — только с токеном)
	r.Use(middleware.AuthMiddleware(authService, userService))

	// BLOGS (создание/правка — только author/admin; владелец проверяется в хендлере)
	blogs := r.Group("/api/blogs")
	{
		blogs.GET("/:id", blogHandler.GetByID)
		blogs.POST("/:id/comments", commentHandler.Create)

		writer := blogs.Group("", middleware.RequireRoles(authz.RoleAuthor, authz.RoleAdmin))
		{
			writer.POST("", blogHandler.Create)
			writer.PUT("/:id", blogHandler.Update)
			writer.DELETE("/:id", blogHandler.Delete)
			writer.PUT("/:id/publish", blogHandler.TogglePublish)
			writer.GET("/:id/pdf", blogHandler.ExportPDF)
		}
	}

	// COMMENTS (удаление — автор комментария или админ, см. хендлер)
	comments := r.Group("/api/comments")
	{
		comments.DELETE("/:id", commentHandler.Delete)
	}

	// PROFILE (свой; чужой — только админ)
	profile := r.Group("/api/profile")
	{
		profile.GET("", profileHandler.Get)
		profile.PUT("", profileHandler.Update)
		profile.POST("/upload", profileHandler.UploadAvatar)
		profile.GET("/:user_id", profileHandler.Get)
		profile.PUT("/:user_id", profileHandler.Update)
		profile.POST("/:user_id/upload", profileHandler.UploadAvatar)
	}

	return r
}
