package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
)

// CreateTrip schedules a trip
func (h *TransportHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	trip, err := h.transportUC.CreateTrip(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// GetTrip returns one trip
func (h *TransportHandler) GetTrip(c echo.Context) error {
	trip, err := h.transportUC.GetTrip(c.Request().Context(), c.Param("tripID"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// ListTrips returns trips filtered by ?routeId= and ?status=
func (h *TransportHandler) ListTrips(c echo.Context) error {
	filter := models.TripFilter{
		RouteID: c.QueryParam("routeId"),
		Status:  models.TripStatus(c.QueryParam("status")),
	}

	trips, err := h.transportUC.ListTrips(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", trips)
}

// UpdateTrip applies a partial update
func (h *TransportHandler) UpdateTrip(c echo.Context) error {
	var req models.TripUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return h.respondTrip(c, "Trip updated successfully", func() (*models.Trip, error) {
		return h.transportUC.UpdateTrip(c.Request().Context(), c.Param("tripID"), req)
	})
}

// UpdateTripStatus moves a trip to a new status
func (h *TransportHandler) UpdateTripStatus(c echo.Context) error {
	var req models.UpdateTripStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return h.respondTrip(c, "Trip status updated successfully", func() (*models.Trip, error) {
		return h.transportUC.UpdateTripStatus(c.Request().Context(), c.Param("tripID"), req.Status)
	})
}

// DelayTrip marks a trip delayed
func (h *TransportHandler) DelayTrip(c echo.Context) error {
	var req models.DelayTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return h.respondTrip(c, "Trip delayed successfully", func() (*models.Trip, error) {
		return h.transportUC.DelayTrip(c.Request().Context(), c.Param("tripID"), req.Minutes, req.Reason)
	})
}

// CancelTrip cancels a trip
func (h *TransportHandler) CancelTrip(c echo.Context) error {
	var req models.CancelTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	return h.respondTrip(c, "Trip cancelled successfully", func() (*models.Trip, error) {
		return h.transportUC.CancelTrip(c.Request().Context(), c.Param("tripID"), req.Reason)
	})
}

// ReserveSeat takes a seat on behalf of the ticketing service
func (h *TransportHandler) ReserveSeat(c echo.Context) error {
	return h.respondTrip(c, "Seat reserved successfully", func() (*models.Trip, error) {
		return h.transportUC.ReserveSeat(c.Request().Context(), c.Param("tripID"))
	})
}

// ReleaseSeat gives a seat back
func (h *TransportHandler) ReleaseSeat(c echo.Context) error {
	return h.respondTrip(c, "Seat released successfully", func() (*models.Trip, error) {
		return h.transportUC.ReleaseSeat(c.Request().Context(), c.Param("tripID"))
	})
}

func (h *TransportHandler) respondTrip(c echo.Context, message string, fn func() (*models.Trip, error)) error {
	ctx := c.Request().Context()
	nrpkg.AddAttribute(ctx, "trip_id", c.Param("tripID"))

	trip, err := fn()
	if err != nil {
		logger.WarnCtx(ctx, "Trip operation rejected",
			logger.String("trip_id", c.Param("tripID")),
			logger.String("path", c.Path()),
			logger.Err(err))
		nrpkg.NoticeError(ctx, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, trip)
}
