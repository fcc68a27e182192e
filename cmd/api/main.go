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

	"campussell/internal/adapter/api"
	"campussell/internal/adapter/api/handler"
	apimiddleware "campussell/internal/adapter/api/middleware"
	"campussell/internal/adapter/api/router"
	"campussell/internal/adapter/repository"
	"campussell/internal/domain/service"
	"campussell/internal/infrastructure/firebase"
	"campussell/internal/infrastructure/ratelimit"
	"campussell/internal/usecase"
	"campussell/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development).
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
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

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	companyRepo := repository.NewFirestoreDeliveryCompanyRepository(firestoreClient)
	areaRepo := repository.NewFirestoreServiceAreaRepository(firestoreClient)
	pricingRepo := repository.NewFirestorePricingRepository(firestoreClient)
	metricsRepo := repository.NewFirestoreMetricsRepository(firestoreClient)
	inquiryRepo := repository.NewFirestoreInquiryRepository(firestoreClient)
	adminRepo := repository.NewFirestoreAdminRepository(firestoreClient)
	auditRepo := repository.NewFirestoreAuditLogRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	paymentGateway := service.NewSimulatedPaymentGateway(cfg.PaymentDeclineRate)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	productUseCase := usecase.NewProductUseCase(productRepo, cartRepo, inquiryRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, productRepo, orderRepo, companyRepo, pricingRepo, paymentGateway)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, metricsRepo)
	deliveryUseCase := usecase.NewDeliveryUseCase(companyRepo, areaRepo, pricingRepo, metricsRepo, auditRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, productRepo)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, auditRepo, cfg.PrincipalAdminEmail)

	if err := adminUseCase.EnsurePrincipalAdmin(ctx); err != nil {
		log.Fatalf("Failed to bootstrap principal admin: %v", err)
	}

	handler.Setup(authUseCase, productUseCase, cartUseCase, checkoutUseCase, orderUseCase, deliveryUseCase, inquiryUseCase, adminUseCase)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(adminRepo)
	companyMiddleware := apimiddleware.NewCompanyMiddleware(companyRepo)

	checkoutLimiter := ratelimit.NewRateLimiter(5, 5, time.Minute)
	inquiryLimiter := ratelimit.NewRateLimiter(10, 10, time.Minute)

	router.Setup(e, authMiddleware, adminMiddleware, companyMiddleware, checkoutLimiter, inquiryLimiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
