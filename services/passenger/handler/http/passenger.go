package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/passenger"
)

// PassengerHandler handles HTTP requests for passenger accounts
type PassengerHandler struct {
	passengerUC passenger.PassengerUC
}

// NewPassengerHandler creates a new passenger HTTP handler
func NewPassengerHandler(passengerUC passenger.PassengerUC) *PassengerHandler {
	return &PassengerHandler{passengerUC: passengerUC}
}

// Register handles account creation
func (h *PassengerHandler) Register(c echo.Context) error {
	var req models.RegisterPassengerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	p, err := h.passengerUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Passenger registered successfully", p)
}

// Login handles credential checks and token issue
func (h *PassengerHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp, err := h.passengerUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	nrpkg.AddAttribute(c.Request().Context(), "passenger_id", resp.Passenger.PassengerID)
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// GetPassenger returns a passenger. Passengers may only read their own
// account; internal callers may read any.
func (h *PassengerHandler) GetPassenger(c echo.Context) error {
	passengerID := c.Param("passengerID")
	if self, ok := middleware.PassengerID(c); ok && self != passengerID {
		return utils.ForbiddenResponse(c, "Cannot read another passenger's account")
	}

	p, err := h.passengerUC.GetPassenger(c.Request().Context(), passengerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger retrieved successfully", p)
}

// UpdateStatus changes a passenger's account status
func (h *PassengerHandler) UpdateStatus(c echo.Context) error {
	var req models.UpdatePassengerStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	p, err := h.passengerUC.UpdateStatus(c.Request().Context(), c.Param("passengerID"), req.Status)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to update passenger status",
			logger.String("passenger_id", c.Param("passengerID")),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger status updated successfully", p)
}

// ListPassengers pages through passengers
func (h *PassengerHandler) ListPassengers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	passengers, err := h.passengerUC.ListPassengers(c.Request().Context(), limit, offset)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passengers retrieved successfully", passengers)
}
