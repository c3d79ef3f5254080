package fleet

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

// RegisterRoutes mounts the vehicle and driver routes. Mutations sit behind
// the writeGuard middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, writeGuard gin.HandlerFunc) {
	v := rg.Group("/vehicles")
	v.GET("", h.ListVehicles)
	v.GET("/:id", h.GetVehicle)

	vw := v.Group("", writeGuard)
	vw.POST("", h.CreateVehicle)
	vw.PUT("/:id", h.UpdateVehicle)
	vw.PATCH("/:id/status", h.SetVehicleStatus)
	vw.DELETE("/:id", h.DeleteVehicle)

	d := rg.Group("/drivers")
	d.GET("", h.ListDrivers)
	d.GET("/:id", h.GetDriver)

	dw := d.Group("", writeGuard)
	dw.POST("", h.CreateDriver)
	dw.PUT("/:id", h.UpdateDriver)
	dw.PATCH("/:id/vehicle", h.AssignVehicle)
	dw.DELETE("/:id", h.DeleteDriver)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
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
	return limit, offset
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	v, err := h.service.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, v)
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	v, err := h.service.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, v)
}

func (h *Handler) ListVehicles(c *gin.Context) {
	limit, offset := pagination(c)
	vehicles, total, err := h.service.ListVehicles(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, VehicleListResponse{Vehicles: vehicles, Total: total})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	v, err := h.service.UpdateVehicle(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, v)
}

func (h *Handler) SetVehicleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req VehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	v, err := h.service.SetVehicleStatus(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, v)
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteVehicle(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	d, err := h.service.CreateDriver(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) GetDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.service.GetDriver(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, d)
}

func (h *Handler) ListDrivers(c *gin.Context) {
	limit, offset := pagination(c)
	drivers, total, err := h.service.ListDrivers(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, DriverListResponse{Drivers: drivers, Total: total})
}

func (h *Handler) UpdateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	d, err := h.service.UpdateDriver(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, d)
}

func (h *Handler) AssignVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AssignVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	d, err := h.service.AssignVehicle(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, d)
}

func (h *Handler) DeleteDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDriver(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrVehicleNotFound):
		response.Error(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found")
	case errors.Is(err, ErrDriverNotFound):
		response.Error(c, http.StatusNotFound, "DRIVER_NOT_FOUND", "Driver not found")
	case errors.Is(err, ErrPlateExists):
		response.Error(c, http.StatusConflict, "PLATE_EXISTS", "Vehicle plate already registered")
	case errors.Is(err, ErrLicenseExists):
		response.Error(c, http.StatusConflict, "LICENSE_EXISTS", "Driver license already registered")
	case errors.Is(err, ErrVehicleRetired):
		response.Error(c, http.StatusConflict, "VEHICLE_RETIRED", "Retired vehicle cannot take a driver")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Missing or invalid fields")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
