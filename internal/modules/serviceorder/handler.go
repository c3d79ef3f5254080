package serviceorder

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/pkg/response"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/pkg/validator"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the service-order routes. Completion and cancellation
// sit behind the extra transitionGuard middleware (manager/admin only);
// mechanics can start work and add items.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, transitionGuard gin.HandlerFunc) {
	g := rg.Group("/service-orders")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/export", h.Export)
	g.POST("/:id/items", h.AddItem)
	g.POST("/:id/start", h.Start)
	g.POST("/:id/reconcile", h.Reconcile)

	tr := g.Group("", transitionGuard)
	tr.POST("/:id/complete", h.Complete)
	tr.POST("/:id/cancel", h.Cancel)
}

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.GetInt64("user_id"),
		Name:   c.GetString("name"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	o, err := h.service.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, o)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service order ID")
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.OrderListFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Limit:  50,
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			f.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			f.Offset = v
		}
	}
	if s := c.Query("vehicle_id"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.VehicleID = &v
		}
	}

	orders, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Orders: orders, Total: total})
}

func (h *Handler) AddItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service order ID")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Start(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service order ID")
		return
	}

	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	o, err := h.service.Start(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, o)
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service order ID")
		return
	}

	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	o, err := h.service.Complete(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, o)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service order ID")
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	o, err := h.service.Cancel(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, o)
}

func (h *Handler) Reconcile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service order ID")
		return
	}

	res, err := h.service.Reconcile(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Export(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service order ID")
		return
	}

	snapshot, err := h.service.ExportSnapshot(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, snapshot)
}

func (h *Handler) fail(c *gin.Context, err error) {
	var terr *domain.TransitionError
	var oerr *OutOfStockError
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service order not found")
	case errors.Is(err, ErrVehicleNotFound):
		response.Error(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found")
	case errors.Is(err, ErrInventoryNotFound):
		response.Error(c, http.StatusNotFound, "INVENTORY_NOT_FOUND", "Inventory item not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Missing or invalid fields for this transition")
	case errors.Is(err, ErrOrderClosed):
		response.Error(c, http.StatusConflict, "ORDER_CLOSED", "Service order is completed or cancelled")
	case errors.As(err, &oerr):
		response.ErrorWithDetails(c, http.StatusConflict, "OUT_OF_STOCK", oerr.Error(), oerr)
	case errors.As(err, &terr):
		response.Error(c, http.StatusConflict, "ILLEGAL_TRANSITION", terr.Error())
	case errors.Is(err, repository.ErrVersionConflict):
		response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Record was modified concurrently, reload and retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
