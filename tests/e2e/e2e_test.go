package e2e

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/database"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
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

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	purchaseRepo := repository.NewPurchaseRequestRepository(db)
	orderRepo := repository.NewServiceOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	hub := notification.NewHub()
	notifier := notification.NewService(hub)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	fleetHandler := fleet.NewHandler(fleet.NewService(vehicleRepo, driverRepo))
	supplierHandler := supplier.NewHandler(supplier.NewService(supplierRepo))
	inventoryHandler := inventory.NewHandler(inventory.NewService(inventoryRepo))
	maintenanceHandler := maintenance.NewHandler(maintenance.NewService(maintenanceRepo, vehicleRepo))

	purchaseService := purchase.NewService(purchaseRepo, inventoryRepo, notifier)
	purchaseHandler := purchase.NewHandler(purchaseService)

	orderService := serviceorder.NewService(orderRepo, vehicleRepo, inventoryRepo,
		purchaseService, purchaseRepo, notifier)
	orderHandler := serviceorder.NewHandler(orderService)

	reportHandler := report.NewHandler(report.NewService(reportRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)

		guard := middleware.RequireRole("manager", "admin")
		fleetHandler.RegisterRoutes(protected, guard)
		supplierHandler.RegisterRoutes(protected, guard)
		inventoryHandler.RegisterRoutes(protected, guard)
		maintenanceHandler.RegisterRoutes(protected, guard)
		purchaseHandler.RegisterRoutes(protected, guard)
		orderHandler.RegisterRoutes(protected, guard)
		reportHandler.RegisterRoutes(protected)
	}

	return &E2ETestSuite{router: r, db: db, jwtService: jwtService}
}

// seedUser inserts a user directly and returns a token for it.
func (s *E2ETestSuite) seedUser(t *testing.T, email, name string, role domain.UserRole) string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	require.NoError(t, s.db.Create(user).Error)

	token, err := s.jwtService.GenerateToken(user.ID, string(role), name)
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		log.Printf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
		t.Fatalf("unparseable response: %v", err)
	}
	return &resp
}

func decodeData(t *testing.T, resp *TestResponse, dest interface{}) {
	require.NotNil(t, resp.Data, "expected data in response")
	require.NoError(t, json.Unmarshal(resp.Data, dest))
}

func TestFlow1_RegistrationAndAuth(t *testing.T) {
	s := setupTestSuite(t)

	// Register
	w := s.makeRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    "erlan@fleet.kz",
		"password": "password123",
		"name":     "Erlan Dauletov",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Login
	w = s.makeRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "erlan@fleet.kz",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	decodeData(t, parseResponse(t, w), &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleMechanic, login.User.Role)

	// Me
	w = s.makeRequest(t, http.MethodGet, "/api/v1/auth/me", nil, login.Token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// No token
	w = s.makeRequest(t, http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFlow2_WorkshopOrderLifecycle(t *testing.T) {
	s := setupTestSuite(t)
	managerToken := s.seedUser(t, "manager@fleet.kz", "Aslan Manager", domain.RoleManager)

	// Vehicle and a stocked part
	w := s.makeRequest(t, http.MethodPost, "/api/v1/vehicles", map[string]any{
		"plate": "abc-1234", "make": "Volvo", "model": "FH16", "year": 2021,
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var vehicle domain.Vehicle
	decodeData(t, parseResponse(t, w), &vehicle)
	assert.Equal(t, "ABC-1234", vehicle.Plate)

	w = s.makeRequest(t, http.MethodPost, "/api/v1/inventory", map[string]any{
		"name": "Brake pad set", "quantity": 12, "min_quantity": 4, "unit_cost": "25.50",
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pad domain.InventoryItem
	decodeData(t, parseResponse(t, w), &pad)

	// Open an order
	w = s.makeRequest(t, http.MethodPost, "/api/v1/service-orders", map[string]any{
		"vehicle_id": vehicle.ID, "description": "Front brakes grinding",
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order domain.ServiceOrder
	decodeData(t, parseResponse(t, w), &order)
	require.Equal(t, domain.OrderOpen, order.Status)

	orderPath := "/api/v1/service-orders/" + itoa(order.ID)

	// Add a sufficient-stock item: cost follows
	w = s.makeRequest(t, http.MethodPost, orderPath+"/items", map[string]any{
		"inventory_id": pad.ID, "required_quantity": 2,
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.makeRequest(t, http.MethodGet, orderPath, nil, managerToken)
	require.Equal(t, http.StatusOK, w.Code)
	var detail serviceorder.Detail
	decodeData(t, parseResponse(t, w), &detail)
	assert.False(t, detail.Drift)
	assert.True(t, detail.Order.EstimatedCost.Equal(decimal.RequireFromString("51")),
		"got %s", detail.Order.EstimatedCost)

	// open -> in_progress -> completed
	w = s.makeRequest(t, http.MethodPost, orderPath+"/start", map[string]any{}, managerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.makeRequest(t, http.MethodPost, orderPath+"/complete", map[string]any{}, managerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var completed domain.ServiceOrder
	decodeData(t, parseResponse(t, w), &completed)
	assert.Equal(t, domain.OrderCompleted, completed.Status)
	assert.Equal(t, "Aslan Manager", completed.ValidatedBy)
	assert.NotNil(t, completed.ValidationDate)

	// completed is absorbing
	w = s.makeRequest(t, http.MethodPost, orderPath+"/start", map[string]any{}, managerToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ILLEGAL_TRANSITION", parseResponse(t, w).Error.Code)

	// no items for a closed order
	w = s.makeRequest(t, http.MethodPost, orderPath+"/items", map[string]any{
		"inventory_id": pad.ID, "required_quantity": 1,
	}, managerToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ORDER_CLOSED", parseResponse(t, w).Error.Code)
}

func TestFlow3_PurchaseRequestLifecycleAndReconcile(t *testing.T) {
	s := setupTestSuite(t)
	managerToken := s.seedUser(t, "manager@fleet.kz", "Aslan Manager", domain.RoleManager)

	w := s.makeRequest(t, http.MethodPost, "/api/v1/inventory", map[string]any{
		"name": "Air filter", "quantity": 3, "min_quantity": 5, "unit_cost": "25.50",
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var filter domain.InventoryItem
	decodeData(t, parseResponse(t, w), &filter)

	w = s.makeRequest(t, http.MethodPost, "/api/v1/purchase-requests", map[string]any{
		"inventory_id": filter.ID, "quantity": 10,
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pr domain.PurchaseRequest
	decodeData(t, parseResponse(t, w), &pr)
	require.Equal(t, domain.PurchasePending, pr.Status)
	assert.True(t, pr.TotalAmount.Equal(decimal.RequireFromString("255")), "got %s", pr.TotalAmount)

	prPath := "/api/v1/purchase-requests/" + itoa(pr.ID)

	// pending -> received skips approval: rejected
	w = s.makeRequest(t, http.MethodPost, prPath+"/receive", map[string]any{
		"invoice_number": "INV-100",
	}, managerToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ILLEGAL_TRANSITION", parseResponse(t, w).Error.Code)

	// approve, then receive
	w = s.makeRequest(t, http.MethodPost, prPath+"/approve", map[string]any{}, managerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var approved domain.PurchaseRequest
	decodeData(t, parseResponse(t, w), &approved)
	assert.Equal(t, "Aslan Manager", approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovalDate)

	w = s.makeRequest(t, http.MethodPost, prPath+"/receive", map[string]any{
		"invoice_number": "INV-100",
	}, managerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var received domain.PurchaseRequest
	decodeData(t, parseResponse(t, w), &received)
	assert.Equal(t, domain.PurchaseReceived, received.Status)
	assert.Equal(t, "INV-100", received.InvoiceNumber)

	// Corrupt the stored total, reads only report, reconcile corrects
	require.NoError(t, s.db.Model(&domain.PurchaseRequest{}).
		Where("id = ?", pr.ID).
		Update("total_amount", decimal.Zero).Error)

	w = s.makeRequest(t, http.MethodGet, prPath, nil, managerToken)
	require.Equal(t, http.StatusOK, w.Code)
	var drifted purchase.Detail
	decodeData(t, parseResponse(t, w), &drifted)
	assert.True(t, drifted.Drift)
	assert.True(t, drifted.Request.TotalAmount.IsZero(), "read must not fix the total")

	w = s.makeRequest(t, http.MethodPost, prPath+"/reconcile", nil, managerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reconciled purchase.ReconcileResult
	decodeData(t, parseResponse(t, w), &reconciled)
	assert.True(t, reconciled.Corrected)
	assert.True(t, reconciled.Request.TotalAmount.Equal(decimal.RequireFromString("255")),
		"got %s", reconciled.Request.TotalAmount)
}

func TestFlow4_OutOfStockAbortsAndReplenishes(t *testing.T) {
	s := setupTestSuite(t)
	managerToken := s.seedUser(t, "manager@fleet.kz", "Aslan Manager", domain.RoleManager)

	w := s.makeRequest(t, http.MethodPost, "/api/v1/vehicles", map[string]any{
		"plate": "DEF-5678",
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var vehicle domain.Vehicle
	decodeData(t, parseResponse(t, w), &vehicle)

	w = s.makeRequest(t, http.MethodPost, "/api/v1/inventory", map[string]any{
		"name": "Alternator belt", "quantity": 0, "min_quantity": 2, "unit_cost": "44.00",
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var belt domain.InventoryItem
	decodeData(t, parseResponse(t, w), &belt)

	w = s.makeRequest(t, http.MethodPost, "/api/v1/service-orders", map[string]any{
		"vehicle_id": vehicle.ID, "description": "Belt squeal",
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var order domain.ServiceOrder
	decodeData(t, parseResponse(t, w), &order)

	w = s.makeRequest(t, http.MethodPost, "/api/v1/service-orders/"+itoa(order.ID)+"/items", map[string]any{
		"inventory_id": belt.ID, "required_quantity": 1,
	}, managerToken)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	resp := parseResponse(t, w)
	require.Equal(t, "OUT_OF_STOCK", resp.Error.Code)

	// No item row, but a pending high-urgency replenishment request exists
	var itemCount int64
	require.NoError(t, s.db.Model(&domain.ServiceOrderItem{}).
		Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	var replenishment domain.PurchaseRequest
	require.NoError(t, s.db.Where("service_order_id = ?", order.ID).First(&replenishment).Error)
	assert.Equal(t, domain.PurchasePending, replenishment.Status)
	assert.Equal(t, domain.UrgencyHigh, replenishment.Urgency)
	assert.Equal(t, int64(1), replenishment.Quantity)
}

func TestFlow5_RoleGuardOnTransitions(t *testing.T) {
	s := setupTestSuite(t)
	managerToken := s.seedUser(t, "manager@fleet.kz", "Aslan Manager", domain.RoleManager)
	mechanicToken := s.seedUser(t, "bekzat@fleet.kz", "Bekzat Mechanic", domain.RoleMechanic)

	w := s.makeRequest(t, http.MethodPost, "/api/v1/inventory", map[string]any{
		"name": "Oil filter", "quantity": 30, "min_quantity": 10, "unit_cost": "12.30",
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var filter domain.InventoryItem
	decodeData(t, parseResponse(t, w), &filter)

	w = s.makeRequest(t, http.MethodPost, "/api/v1/purchase-requests", map[string]any{
		"inventory_id": filter.ID, "quantity": 5,
	}, mechanicToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pr domain.PurchaseRequest
	decodeData(t, parseResponse(t, w), &pr)

	// Mechanics cannot approve
	w = s.makeRequest(t, http.MethodPost, "/api/v1/purchase-requests/"+itoa(pr.ID)+"/approve",
		map[string]any{}, mechanicToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Managers can
	w = s.makeRequest(t, http.MethodPost, "/api/v1/purchase-requests/"+itoa(pr.ID)+"/approve",
		map[string]any{}, managerToken)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
