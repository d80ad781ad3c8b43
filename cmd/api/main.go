package main

import (
	"context"
	stderrors "errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"campuskart/internal/adapter/api"
	"campuskart/internal/adapter/api/handler"
	apimiddleware "campuskart/internal/adapter/api/middleware"
	"campuskart/internal/adapter/api/router"
	"campuskart/internal/adapter/repository"
	"campuskart/internal/infrastructure/firebase"
	"campuskart/internal/infrastructure/ratelimit"
	"campuskart/internal/infrastructure/relay"
	"campuskart/internal/infrastructure/storage"
	"campuskart/internal/infrastructure/websocket"
	"campuskart/internal/usecase"
	"campuskart/pkg/config"
	"campuskart/pkg/logger"
)

func credentials(cfg *config.Config) []option.ClientOption {
	if cfg.ServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))}
	}

	if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.ServiceAccountPath)}
	}

	logger.Info("Using application default credentials")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Environment)
	defer logger.Sync()

	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load holiday timezone: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := credentials(cfg)

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject, StorageBucket: cfg.StorageBucket}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	itemRepo := repository.NewFirestoreItemRepository(firestoreClient)
	eventRepo := repository.NewFirestoreEventRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	recruitmentRepo := repository.NewFirestoreRecruitmentRepository(firestoreClient)
	ticketRepo := repository.NewFirestoreSupportTicketRepository(firestoreClient)
	collegeRepo := repository.NewFirestoreCollegeRepository(firestoreClient)
	uploadRepo := repository.NewFirestoreUploadRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine(ctx)

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	wsManager := websocket.NewManager(websocket.NewMessageHandler(notificationUseCase))
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient, cfg.AdminEmail)
	userUseCase := usecase.NewUserUseCase(userRepo, itemRepo, firebaseAuthClient, location)
	itemUseCase := usecase.NewItemUseCase(itemRepo, userRepo, location)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, itemRepo, recruitmentRepo, notificationUseCase, wsManager, rateLimiter)
	eventUseCase := usecase.NewEventUseCase(eventRepo, location)
	recruitmentUseCase := usecase.NewRecruitmentUseCase(recruitmentRepo, userRepo)
	supportUseCase := usecase.NewSupportUseCase(ticketRepo, userRepo, relay.New(cfg), rateLimiter)
	collegeUseCase := usecase.NewCollegeUseCase(collegeRepo)
	adminUseCase := usecase.NewAdminUseCase(userRepo, itemRepo, notificationRepo, firebaseAuthClient, wsManager)
	fileUseCase := usecase.NewFileUseCase(uploadRepo, storageClient)

	handler.Setup(
		authUseCase,
		userUseCase,
		itemUseCase,
		chatUseCase,
		notificationUseCase,
		eventUseCase,
		recruitmentUseCase,
		supportUseCase,
		collegeUseCase,
		adminUseCase,
	)
	handler.SetupFileHandler(fileUseCase, cfg.MaxUploadBytes)
	handler.SetupHealthHandler(func(ctx context.Context) error {
		_, err := firestoreClient.Collection("colleges").Limit(1).Documents(ctx).Next()
		if stderrors.Is(err, iterator.Done) {
			return nil
		}
		return err
	})

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDevelopment()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("8M"))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware, rateLimiter)
	router.SetupWebSocketRouter(e, handler.NewWebSocketHandler(wsManager), authMiddleware)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
