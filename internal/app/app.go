package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"blogify/internal/config"
	"blogify/internal/handlers"
	"blogify/internal/migrations"
	"blogify/internal/pdf"
	"blogify/internal/repositories"
	"blogify/internal/routes"
	"blogify/internal/services"
	"blogify/internal/storage"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "blogify/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	if err := runMigrations(db); err != nil {
		log.Fatal("Ошибка миграций: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	// === Services ===
	authService := services.NewAuthService(cfg.Auth.JWTSecret)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID)
	notifier := services.NewAdminNotifier(emailService, telegramService, cfg.Email.AdminEmail)

	otpService := services.NewOTPService(userRepo, emailService)
	userService := services.NewUserService(userRepo, profileRepo, otpService, authService, notifier)
	blogService := services.NewBlogService(blogRepo)
	commentService := services.NewCommentService(commentRepo, blogRepo, notifier)

	uploads, err := storage.NewLocalStore(cfg.Files.UploadsDir)
	if err != nil {
		log.Fatal("Ошибка хранилища загрузок: ", err)
	}
	profileService := services.NewProfileService(profileRepo, uploads)

	exporter := pdf.NewBlogExporter()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, otpService)
	blogHandler := handlers.NewBlogHandler(blogService, exporter)
	commentHandler := handlers.NewCommentHandler(commentService)
	profileHandler := handlers.NewProfileHandler(profileService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// статика для аватаров
	router.Static("/uploads", cfg.Files.UploadsDir)

	// Роуты (JWT/RBAC — внутри SetupRoutes)
	routes.SetupRoutes(
		router,
		authService,
		userService,
		authHandler,
		blogHandler,
		commentHandler,
		profileHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(context.Background(), db, ".")
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
