package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport"
)

// TransportHandler handles HTTP requests for routes and trips
type TransportHandler struct {
	transportUC transport.TransportUC
}

// NewTransportHandler creates a new transport HTTP handler
func NewTransportHandler(transportUC transport.TransportUC) *TransportHandler {
	return &TransportHandler{transportUC: transportUC}
}

// CreateRoute adds a route
func (h *TransportHandler) CreateRoute(c echo.Context) error {
	var req models.CreateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	route, err := h.transportUC.CreateRoute(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Route created successfully", route)
}

// GetRoute returns one route
func (h *TransportHandler) GetRoute(c echo.Context) error {
	route, err := h.transportUC.GetRoute(c.Request().Context(), c.Param("routeID"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved successfully", route)
}

// ListRoutes returns active routes
func (h *TransportHandler) ListRoutes(c echo.Context) error {
	routes, err := h.transportUC.ListRoutes(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully", routes)
}

// NearbyRoutes returns routes with a stop near ?lat=&lng=
func (h *TransportHandler) NearbyRoutes(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng must be a number")
	}

	routes, err := h.transportUC.FindRoutesNear(c.Request().Context(), lat, lng)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby routes retrieved successfully", routes)
}
