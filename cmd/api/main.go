package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"listed/internal/adapter/api"
	"listed/internal/adapter/api/handler"
	apimiddleware "listed/internal/adapter/api/middleware"
	"listed/internal/adapter/api/router"
	"listed/internal/adapter/repository"
	"listed/internal/infrastructure/firebase"
	"listed/internal/infrastructure/openai"
	"listed/internal/infrastructure/realtime"
	"listed/internal/infrastructure/storage"
	"listed/internal/usecase"
	"listed/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account comes from the environment in production, a file in
	// local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
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
	pitchRepo := repository.NewFirestorePitchRepository(firestoreClient)
	platformOfferRepo := repository.NewFirestorePlatformOfferRepository(firestoreClient)
	salesOfferRepo := repository.NewFirestoreSalesOfferRepository(firestoreClient)
	engagementRepo := repository.NewFirestoreEngagementRepository(firestoreClient)
	complaintRepo := repository.NewFirestoreComplaintRepository(firestoreClient)
	inquiryRepo := repository.NewFirestoreInquiryRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)
	assistantClient := openai.NewAssistantClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	hub := realtime.NewHub()
	hub.Start(ctx)
	streamer := realtime.NewStreamer(firestoreClient)

	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient)
	pitchUseCase := usecase.NewPitchUseCase(pitchRepo, userRepo, assistantClient)
	offerUseCase := usecase.NewOfferUseCase(platformOfferRepo, salesOfferRepo, userRepo)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, userRepo)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, userRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, userRepo, hub)

	handler.Setup(userUseCase, pitchUseCase, offerUseCase, engagementUseCase, complaintUseCase, inquiryUseCase, messageUseCase, userRepo)
	handler.SetupFileHandler(storageClient, cfg.MaxUploadSizeBytes)
	handler.SetupHealthHandler(firebaseAuthClient)
	handler.SetupRealtimeHandler(hub, streamer, firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(10, 1, time.Second)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
