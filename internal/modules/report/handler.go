package report

import (
	"errors"
	"net/http"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/reports")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/vehicle-costs", h.VehicleCosts)
	g.GET("/supplier-spend", h.SupplierSpend)
}

// parseWindow reads optional from/to query params in RFC 3339 or date-only
// form.
func parseWindow(c *gin.Context) (*time.Time, *time.Time, bool) {
	parse := func(key string) (*time.Time, bool) {
		raw := c.Query(key)
		if raw == "" {
			return nil, true
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return &t, true
			}
		}
		return nil, false
	}

	from, ok := parse("from")
	if !ok {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid 'from' date")
		return nil, nil, false
	}
	to, ok := parse("to")
	if !ok {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid 'to' date")
		return nil, nil, false
	}
	return from, to, true
}

func (h *Handler) Dashboard(c *gin.Context) {
	counts, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, counts)
}

func (h *Handler) VehicleCosts(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	rows, err := h.service.VehicleCosts(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) SupplierSpend(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	rows, err := h.service.SupplierSpend(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBadWindow):
		response.Error(c, http.StatusBadRequest, "INVALID_WINDOW", "'from' must not be after 'to'")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
