package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing"
)

// TicketHandler handles HTTP requests for tickets
type TicketHandler struct {
	ticketUC ticketing.TicketUC
}

// NewTicketHandler creates a new ticket HTTP handler
func NewTicketHandler(ticketUC ticketing.TicketUC) *TicketHandler {
	return &TicketHandler{ticketUC: ticketUC}
}

// Purchase buys a ticket. The passenger defaults to the token's subject and
// may not name anyone else.
func (h *TicketHandler) Purchase(c echo.Context) error {
	var req models.PurchaseTicketRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if self, ok := middleware.PassengerID(c); ok {
		if req.PassengerID == "" {
			req.PassengerID = self
		}
		if req.PassengerID != self {
			return utils.ForbiddenResponse(c, "Cannot buy tickets for another passenger")
		}
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ctx := c.Request().Context()
	nrpkg.AddAttribute(ctx, "passenger_id", req.PassengerID)
	nrpkg.AddAttribute(ctx, "trip_id", req.TripID)

	ticket, err := h.ticketUC.Purchase(ctx, &req)
	if err != nil {
		logger.WarnCtx(ctx, "Ticket purchase rejected",
			logger.String("passenger_id", req.PassengerID),
			logger.String("trip_id", req.TripID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ticket purchased successfully", ticket)
}

// ownTicket loads the ticket in the path, rejecting another passenger's
func (h *TicketHandler) ownTicket(c echo.Context) (*models.Ticket, error) {
	ticket, err := h.ticketUC.GetTicket(c.Request().Context(), c.Param("ticketID"))
	if err != nil {
		return nil, utils.AppErrorResponse(c, err)
	}
	if self, ok := middleware.PassengerID(c); ok && self != ticket.PassengerID {
		return nil, utils.ForbiddenResponse(c, "Ticket belongs to another passenger")
	}
	return ticket, nil
}

// GetTicket returns one ticket
func (h *TicketHandler) GetTicket(c echo.Context) error {
	ticket, err := h.ownTicket(c)
	if ticket == nil {
		return err
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ticket retrieved successfully", ticket)
}

// TicketPDF downloads the e-ticket
func (h *TicketHandler) TicketPDF(c echo.Context) error {
	ticket, err := h.ownTicket(c)
	if ticket == nil {
		return err
	}

	pdf, filename, err := h.ticketUC.TicketPDF(c.Request().Context(), ticket.TicketID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// ListByPassenger returns a passenger's tickets
func (h *TicketHandler) ListByPassenger(c echo.Context) error {
	passengerID := c.Param("passengerID")
	if self, ok := middleware.PassengerID(c); ok && self != passengerID {
		return utils.ForbiddenResponse(c, "Cannot read another passenger's tickets")
	}

	tickets, err := h.ticketUC.ListTicketsByPassenger(c.Request().Context(), passengerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tickets retrieved successfully", tickets)
}

// PayTicket settles a ticket through the payment service
func (h *TicketHandler) PayTicket(c echo.Context) error {
	var req models.PayTicketRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ticket, err := h.ownTicket(c)
	if ticket == nil {
		return err
	}

	resp, err := h.ticketUC.PayTicket(c.Request().Context(), ticket.TicketID, req.PaymentMethod)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if resp.Payment != nil && resp.Payment.Status != models.PaymentStatusSuccess {
		return utils.SuccessResponse(c, http.StatusOK, "Payment was not successful", resp)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ticket paid successfully", resp)
}

// ConfirmPayment attaches an externally settled payment
func (h *TicketHandler) ConfirmPayment(c echo.Context) error {
	var req models.ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ticket, err := h.ownTicket(c)
	if ticket == nil {
		return err
	}

	paid, err := h.ticketUC.ConfirmPayment(c.Request().Context(), ticket.TicketID, req.PaymentID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed successfully", paid)
}

// ValidateTicket boards a ticket
func (h *TicketHandler) ValidateTicket(c echo.Context) error {
	ctx := c.Request().Context()
	nrpkg.AddAttribute(ctx, "ticket_id", c.Param("ticketID"))

	ticket, err := h.ticketUC.ValidateTicket(ctx, c.Param("ticketID"))
	if err != nil {
		logger.WarnCtx(ctx, "Ticket validation rejected",
			logger.String("ticket_id", c.Param("ticketID")),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ticket validated successfully", ticket)
}

// ExpireTickets runs the expiry sweep on demand
func (h *TicketHandler) ExpireTickets(c echo.Context) error {
	resp, err := h.ticketUC.ExpireStale(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ticket sweep completed", resp)
}
