package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/database"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fleet.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM service_order_items")
	db.Exec("DELETE FROM purchase_requests")
	db.Exec("DELETE FROM service_orders")
	db.Exec("DELETE FROM maintenance_records")
	db.Exec("DELETE FROM inventory_items")
	db.Exec("DELETE FROM suppliers")
	db.Exec("DELETE FROM drivers")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@fleet.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Администратор",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@fleet.kz / admin123")

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		Email:        "manager@fleet.kz",
		PasswordHash: string(managerHash),
		Role:         domain.RoleManager,
		Name:         "Aslan Manager",
	}
	db.Create(&manager)

	for i := 1; i <= 2; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("mechanic123"), bcrypt.DefaultCost)
		db.Create(&domain.User{
			Email:        fmt.Sprintf("mechanic%d@fleet.kz", i),
			PasswordHash: string(hash),
			Role:         domain.RoleMechanic,
			Name:         fmt.Sprintf("Механик %d", i),
		})
	}

	// ================== VEHICLES ==================
	log.Println("Creating vehicles...")

	vehicles := []domain.Vehicle{
		{Plate: "ABC-1234", Make: "Volvo", Model: "FH16", Year: 2021, Mileage: 182000, Status: domain.VehicleActive, FuelType: "diesel"},
		{Plate: "DEF-5678", Make: "Scania", Model: "R450", Year: 2019, Mileage: 340000, Status: domain.VehicleActive, FuelType: "diesel"},
		{Plate: "GHI-9012", Make: "Mercedes", Model: "Actros", Year: 2017, Mileage: 510000, Status: domain.VehicleInShop, FuelType: "diesel"},
		{Plate: "JKL-3456", Make: "Ford", Model: "Transit", Year: 2022, Mileage: 64000, Status: domain.VehicleActive, FuelType: "gasoline"},
	}
	for i := range vehicles {
		db.Create(&vehicles[i])
	}

	// ================== DRIVERS ==================
	log.Println("Creating drivers...")

	expiry := time.Now().AddDate(2, 0, 0)
	drivers := []domain.Driver{
		{Name: "Erlan Dauletov", LicenseNumber: "KZ-774411", LicenseExpiry: &expiry, Phone: "+7 777 123 4567", Status: domain.DriverAvailable, VehicleID: &vehicles[0].ID},
		{Name: "Marat Iskakov", LicenseNumber: "KZ-558822", LicenseExpiry: &expiry, Phone: "+7 777 765 4321", Status: domain.DriverOnRoute, VehicleID: &vehicles[1].ID},
		{Name: "Sergey Kim", LicenseNumber: "KZ-119933", Phone: "+7 701 555 0101", Status: domain.DriverAvailable},
	}
	for i := range drivers {
		db.Create(&drivers[i])
	}

	// ================== SUPPLIERS ==================
	log.Println("Creating suppliers...")

	suppliers := []domain.Supplier{
		{Name: "AutoParts KZ", ContactName: "Dina Seitova", Email: "sales@autoparts.kz", Phone: "+7 727 300 1122", Active: true},
		{Name: "TruckService Almaty", ContactName: "Oleg Pavlov", Email: "info@truckservice.kz", Phone: "+7 727 244 5566", Active: true},
		{Name: "Old Parts Ltd", Email: "contact@oldparts.example", Active: false},
	}
	for i := range suppliers {
		db.Create(&suppliers[i])
	}

	// ================== INVENTORY ==================
	log.Println("Creating inventory...")

	items := []domain.InventoryItem{
		{Name: "Brake pad set", PartNumber: "BP-4410", Quantity: 12, MinQuantity: 4, MaxQuantity: 40, UnitCost: decimal.RequireFromString("25.50"), Location: "A-01", SupplierID: &suppliers[0].ID},
		{Name: "Oil filter", PartNumber: "OF-2031", Quantity: 30, MinQuantity: 10, MaxQuantity: 100, UnitCost: decimal.RequireFromString("12.30"), Location: "A-02", SupplierID: &suppliers[0].ID},
		{Name: "Air filter", PartNumber: "AF-1180", Quantity: 3, MinQuantity: 5, MaxQuantity: 30, UnitCost: decimal.RequireFromString("18.75"), Location: "A-03", SupplierID: &suppliers[1].ID},
		{Name: "Alternator belt", PartNumber: "AB-7755", Quantity: 0, MinQuantity: 2, MaxQuantity: 15, UnitCost: decimal.RequireFromString("44.00"), Location: "B-01", SupplierID: &suppliers[1].ID},
		{Name: "Engine oil 10W-40 (L)", PartNumber: "EO-1040", Quantity: 200, MinQuantity: 50, MaxQuantity: 400, UnitCost: decimal.RequireFromString("6.80"), Location: "C-01", SupplierID: &suppliers[0].ID},
	}
	for i := range items {
		db.Create(&items[i])
	}

	// ================== MAINTENANCE ==================
	log.Println("Creating maintenance records...")

	nextDue := time.Now().AddDate(0, 6, 0)
	records := []domain.MaintenanceRecord{
		{VehicleID: vehicles[0].ID, Type: "oil_change", Description: "Scheduled oil and filter change", ServiceDate: time.Now().AddDate(0, -1, 0), NextDue: &nextDue, Mileage: 180000, Cost: decimal.RequireFromString("136.00"), Mechanic: "Механик 1", Status: domain.MaintenanceCompleted},
		{VehicleID: vehicles[2].ID, Type: "brakes", Description: "Front brake pads worn out", ServiceDate: time.Now(), Mileage: 510000, Cost: decimal.RequireFromString("51.00"), Mechanic: "Механик 2", Status: domain.MaintenanceInProgress},
	}
	for i := range records {
		db.Create(&records[i])
	}

	log.Println("Seed complete.")
}
