package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/payment"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// ProcessPayment runs one simulated settlement
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ctx := c.Request().Context()
	nrpkg.AddAttribute(ctx, "ticket_id", req.TicketID)

	resp, err := h.paymentUC.ProcessPayment(ctx, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment processed", resp)
}

func (h *PaymentHandler) respond(c echo.Context, p *models.Payment, err error) error {
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if self, ok := middleware.PassengerID(c); ok && self != p.PassengerID {
		return utils.ForbiddenResponse(c, "Payment belongs to another passenger")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", p)
}

// GetPayment returns one payment
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	p, err := h.paymentUC.GetPayment(c.Request().Context(), c.Param("paymentID"))
	return h.respond(c, p, err)
}

// GetPaymentByTicket returns the latest payment for a ticket
func (h *PaymentHandler) GetPaymentByTicket(c echo.Context) error {
	p, err := h.paymentUC.GetPaymentByTicket(c.Request().Context(), c.Param("ticketID"))
	return h.respond(c, p, err)
}

// RefundPayment refunds a successful payment
func (h *PaymentHandler) RefundPayment(c echo.Context) error {
	p, err := h.paymentUC.RefundPayment(c.Request().Context(), c.Param("paymentID"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment refunded successfully", p)
}
