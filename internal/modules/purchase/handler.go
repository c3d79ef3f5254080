package purchase

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

// RegisterRoutes mounts the purchase-request routes. Status transitions sit
// behind the extra transitionGuard middleware (manager/admin only).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, transitionGuard gin.HandlerFunc) {
	g := rg.Group("/purchase-requests")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("/:id/reconcile", h.Reconcile)

	tr := g.Group("", transitionGuard)
	tr.POST("/:id/approve", h.Approve)
	tr.POST("/:id/receive", h.Receive)
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

	pr, err := h.service.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, pr)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid purchase request ID")
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
	f := repository.PurchaseListFilter{
		Status:  c.Query("status"),
		Urgency: c.Query("urgency"),
		Limit:   50,
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
	if s := c.Query("supplier_id"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.SupplierID = &v
		}
	}
	if s := c.Query("service_order_id"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.ServiceOrderID = &v
		}
	}

	requests, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Requests: requests, Total: total})
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid purchase request ID")
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	pr, err := h.service.Approve(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, pr)
}

func (h *Handler) Receive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid purchase request ID")
		return
	}

	var req ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	pr, err := h.service.Receive(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, pr)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid purchase request ID")
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	pr, err := h.service.Cancel(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, pr)
}

func (h *Handler) Reconcile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid purchase request ID")
		return
	}

	res, err := h.service.Reconcile(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) fail(c *gin.Context, err error) {
	var terr *domain.TransitionError
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Purchase request not found")
	case errors.Is(err, ErrInventoryNotFound):
		response.Error(c, http.StatusNotFound, "INVENTORY_NOT_FOUND", "Inventory item not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Missing or invalid fields for this transition")
	case errors.As(err, &terr):
		response.Error(c, http.StatusConflict, "ILLEGAL_TRANSITION", terr.Error())
	case errors.Is(err, repository.ErrVersionConflict):
		response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Record was modified concurrently, reload and retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
