package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/splitr-app/splitr-backend/handlers"
	"github.com/splitr-app/splitr-backend/repository"
	"github.com/splitr-app/splitr-backend/routes"
	"github.com/splitr-app/splitr-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Splitr API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()

	db := repository.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)

	// Initialize services
	splitService := services.NewSplitService()
	balanceService := services.NewBalanceService(userRepo, expenseRepo, settlementRepo)
	expenseService := services.NewExpenseService(expenseRepo, settlementRepo, groupRepo, splitService)
	settlementService := services.NewSettlementService(settlementRepo, expenseRepo, groupRepo, userRepo)
	groupService := services.NewGroupService(groupRepo, userRepo, expenseRepo, settlementRepo)
	contactService := services.NewContactService(userRepo, groupRepo, expenseRepo)
	exportService := services.NewExportService(groupService)

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, &routes.Handlers{
		Balance:    handlers.NewBalanceHandler(balanceService),
		Expense:    handlers.NewExpenseHandler(expenseService),
		Settlement: handlers.NewSettlementHandler(settlementService),
		Group:      handlers.NewGroupHandler(groupService, exportService),
		Contact:    handlers.NewContactHandler(contactService),
	}, userRepo)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
