package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/database"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/middleware"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/auth"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/fleet"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/inventory"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/maintenance"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/notification"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/purchase"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/report"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/serviceorder"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/modules/supplier"
	jwtsvc "github.com/JorgeWendell/fleetmanager-sub000/internal/pkg/jwt"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	purchaseRepo := repository.NewPurchaseRequestRepository(db)
	orderRepo := repository.NewServiceOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notification.NewHub()
	defer hub.Close()
	notifier := notification.NewService(hub)
	wsHandler := notification.NewWSHandler(hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	fleetService := fleet.NewService(vehicleRepo, driverRepo)
	fleetHandler := fleet.NewHandler(fleetService)

	supplierService := supplier.NewService(supplierRepo)
	supplierHandler := supplier.NewHandler(supplierService)

	inventoryService := inventory.NewService(inventoryRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)

	maintenanceService := maintenance.NewService(maintenanceRepo, vehicleRepo)
	maintenanceHandler := maintenance.NewHandler(maintenanceService)

	purchaseService := purchase.NewService(purchaseRepo, inventoryRepo, notifier)
	purchaseHandler := purchase.NewHandler(purchaseService)

	orderService := serviceorder.NewService(orderRepo, vehicleRepo, inventoryRepo,
		purchaseService, purchaseRepo, notifier)
	orderHandler := serviceorder.NewHandler(orderService)

	reportService := report.NewService(reportRepo)
	reportHandler := report.NewHandler(reportService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/ws/notifications", wsHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)

			// transitions and catalog writes need a back-office role
			guard := middleware.RequireRole("manager", "admin")

			fleetHandler.RegisterRoutes(protected, guard)
			supplierHandler.RegisterRoutes(protected, guard)
			inventoryHandler.RegisterRoutes(protected, guard)
			maintenanceHandler.RegisterRoutes(protected, guard)
			purchaseHandler.RegisterRoutes(protected, guard)
			orderHandler.RegisterRoutes(protected, guard)
			reportHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
