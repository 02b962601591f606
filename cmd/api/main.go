package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"gamerecharge/internal/adapter/api"
	"gamerecharge/internal/adapter/api/handler"
	apimiddleware "gamerecharge/internal/adapter/api/middleware"
	"gamerecharge/internal/adapter/api/router"
	"gamerecharge/internal/adapter/repository"
	"gamerecharge/internal/domain/service"
	"gamerecharge/internal/infrastructure/firebase"
	"gamerecharge/internal/usecase"
	"gamerecharge/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account JSON in the environment for production, file path for
	// local development
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	commissionRepo := repository.NewFirestoreCommissionRepository(firestoreClient)
	vendorRepo := repository.NewFirestoreVendorRepository(firestoreClient)
	rateRepo := repository.NewFirestoreRateRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	syncGateway := service.NewSheetsSyncService(cfg.SheetsAPIURL, cfg.SheetsAPIKey, cfg.SyncTimeout)

	cartUseCase := usecase.NewCartUseCase(cartRepo, rateRepo)
	commissionUseCase := usecase.NewCommissionUseCase(commissionRepo, syncGateway, cfg.SyncTimeout)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartRepo, commissionRepo, syncGateway, cfg.SyncTimeout, cfg.BaseCurrency)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	vendorUseCase := usecase.NewVendorUseCase(vendorRepo, orderRepo)
	rateUseCase := usecase.NewRateUseCase(rateRepo, syncGateway, cfg.SyncTimeout)

	// First boot gets the commission table seeded with the known vendors
	if err := commissionUseCase.EnsureDefaults(ctx); err != nil {
		log.Printf("Warning: failed to seed commission defaults: %v", err)
	}

	handler.Setup(cartUseCase, orderUseCase, catalogUseCase, commissionUseCase, vendorUseCase, rateUseCase)
	handler.SetupHealthHandler(firebaseAuthClient)
	handler.SetupDevTokenHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
