package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kids-media-server/config"
	_ "kids-media-server/docs"
	"kids-media-server/internal/handler"
	"kids-media-server/internal/repository"
	"kids-media-server/internal/security"
	"kids-media-server/internal/service"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Kids-media-server
// @version 1.0
// @description REST API для просмотра и загрузки фотографий учеников в Google Drive

// @host localhost:8080

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	jwtRepo := repository.NewJWTRepository(db)
	kidRepo := repository.NewKidRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	cacheRepo := repository.NewCacheRepository(
		redisClient,
		time.Duration(cfg.TTL.KidCache)*time.Second,
		time.Duration(cfg.TTL.AdminAllowList)*time.Second,
	)

	driveService, err := service.NewDriveService(ctx, &cfg.Drive)
	if err != nil {
		log.Fatalf("Ошибка создания Drive сервиса: %v", err)
	}
	folderService := service.NewFolderService(driveService)
	mediaService := service.NewMediaService(kidRepo, mediaRepo, cacheRepo, driveService, folderService)
	kidService := service.NewKidService(kidRepo, cacheRepo)
	adminGate := service.NewAdminGateService(adminRepo, cacheRepo)

	jwtService := security.NewJWTService(&cfg.JWT)
	userService := service.NewUserService(userRepo, jwtService, jwtRepo, &cfg.Admin)
	authService := service.NewAuthenticationService(jwtRepo, cfg, jwtService, userRepo)

	authHandler := handler.NewAuthenticationHandler(authService, jwtService, jwtRepo)
	driveHandler := handler.NewDriveHandler(mediaService)
	kidHandler := handler.NewKidHandler(kidService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	userHandler := handler.NewUserHandler(userService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService, jwtRepo, cfg)
	setupUserRoutes(router, userHandler, jwtService, jwtRepo, cfg)
	setupKidRoutes(router, kidHandler, jwtService, jwtRepo, adminGate, cfg)
	setupDriveRoutes(router, driveHandler, mediaHandler, jwtService, jwtRepo, adminGate, cfg)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService, jwtRepo *repository.JWTRepository, cfg *config.AppConfig) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))
			r.Get("/me", h.GetCurrentUser)
			r.Post("/refresh", h.RefreshToken)
		})
		r.Group(func(r chi.Router) {
			r.Post("/", h.Login)
			r.Post("/google", h.LoginWithGoogle)
			r.Delete("/{token}", h.Logout)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, jwtService *security.JWTService, jwtRepo *repository.JWTRepository, cfg *config.AppConfig) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))
			r.Get("/users/{uuid}", h.GetUser)
		})
	})
}

func setupKidRoutes(r chi.Router, h *handler.KidHandler, jwtService *security.JWTService, jwtRepo *repository.JWTRepository, adminGate security.AdminGate, cfg *config.AppConfig) {
	// Публичная карточка для родителей, без авторизации
	r.Get("/public/kids/{uuid}", h.GetPublicKid)

	r.Route("/api/kids", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))
		r.Use(security.AdminOnlyMiddleware(adminGate))
		r.Get("/", h.ListKids)
	})
}

func setupDriveRoutes(r chi.Router, driveHandler *handler.DriveHandler, mediaHandler *handler.MediaHandler, jwtService *security.JWTService, jwtRepo *repository.JWTRepository, adminGate security.AdminGate, cfg *config.AppConfig) {
	r.Route("/api/integrations/drive", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))
		r.Use(security.AdminOnlyMiddleware(adminGate))
		r.Get("/list", driveHandler.ListFiles)
		r.Post("/upload", driveHandler.UploadFile)
	})

	r.Route("/api/media", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))
		r.Use(security.AdminOnlyMiddleware(adminGate))
		r.Post("/", mediaHandler.CreateMedia)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
