package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/pkg/response"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, writeGuard gin.HandlerFunc) {
	g := rg.Group("/inventory")
	g.GET("", h.List)
	g.GET("/low-stock", h.ListLowStock)
	g.GET("/:id", h.Get)
	g.GET("/:id/check-stock", h.CheckStock)

	w := g.Group("", writeGuard)
	w.POST("", h.Create)
	w.PUT("/:id", h.Update)
	w.DELETE("/:id", h.Delete)
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

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inventory item ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

func (h *Handler) List(c *gin.Context) {
	limit := 50
	offset := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	items, total, err := h.service.List(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) ListLowStock(c *gin.Context) {
	items, err := h.service.ListLowStock(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) CheckStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inventory item ID")
		return
	}

	requested := int64(1)
	if q := c.Query("quantity"); q != "" {
		v, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", "Invalid quantity")
			return
		}
		requested = v
	}

	check, err := h.service.CheckStock(c.Request.Context(), id, requested)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, check)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inventory item ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inventory item ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Missing or invalid fields")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
