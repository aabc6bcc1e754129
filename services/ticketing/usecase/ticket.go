package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/eticket"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/metrics"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/qrcode"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/status"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing"
)

const defaultValidityWindow = 24 * time.Hour

type ticketUC struct {
	cfg        *models.Config
	repo       ticketing.TicketRepo
	passengers ticketing.PassengerGW
	transport  ticketing.TransportGW
	payments   ticketing.PaymentGW
	publisher  ticketing.TicketEventPublisher
	qr         *qrcode.Generator
	now        func() time.Time
	newID      func() string
}

// NewTicketUC creates a new ticket lifecycle use case
func NewTicketUC(
	cfg *models.Config,
	repo ticketing.TicketRepo,
	passengers ticketing.PassengerGW,
	transport ticketing.TransportGW,
	payments ticketing.PaymentGW,
	publisher ticketing.TicketEventPublisher,
) ticketing.TicketUC {
	return &ticketUC{
		cfg:        cfg,
		repo:       repo,
		passengers: passengers,
		transport:  transport,
		payments:   payments,
		publisher:  publisher,
		qr:         qrcode.NewGenerator(cfg.Ticketing.QRSecret),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

func (uc *ticketUC) validityWindow() time.Duration {
	if uc.cfg.Ticketing.ValidityWindow <= 0 {
		return defaultValidityWindow
	}
	return uc.cfg.Ticketing.ValidityWindow
}

// requireStatus rejects a ticket that is not in want. Moves the lifecycle
// forbids outright get the transition engine's message.
func requireStatus(ticket *models.Ticket, want, target models.TicketStatus) error {
	if ticket.Status == want {
		return nil
	}
	if err := status.ValidateTicketTransition(ticket.Status, target); err != nil {
		return err
	}
	return apperror.Validation(constants.ErrCodeInvalidTicketStatus,
		fmt.Sprintf("Ticket %s is %s, expected %s", ticket.TicketID, ticket.Status, want))
}

// Purchase checks the passenger and trip, takes a seat and issues a CREATED ticket
func (uc *ticketUC) Purchase(ctx context.Context, req *models.PurchaseTicketRequest) (*models.Ticket, error) {
	passenger, err := uc.passengers.GetPassenger(ctx, req.PassengerID)
	if err != nil {
		return nil, err
	}
	if passenger.Status != models.PassengerStatusActive {
		return nil, apperror.Validation(constants.ErrCodeInactivePassenger,
			fmt.Sprintf("Passenger %s is %s", passenger.PassengerID, passenger.Status))
	}

	trip, err := uc.transport.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.AvailableSeats <= 0 {
		return nil, apperror.Validation(constants.ErrCodeNoSeats, fmt.Sprintf("Trip %s has no seats available", trip.TripID))
	}
	if trip.Status != models.TripStatusScheduled {
		return nil, apperror.Validation(constants.ErrCodeInvalidTripStatus,
			fmt.Sprintf("Trip %s is %s, tickets can only be bought for SCHEDULED trips", trip.TripID, trip.Status))
	}

	// the seat check above is advisory; this conditional write is the real guard
	if _, err := uc.transport.ReserveSeat(ctx, trip.TripID); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	ticket := &models.Ticket{
		TicketID:    uc.newID(),
		PassengerID: passenger.PassengerID,
		TripID:      trip.TripID,
		RouteID:     trip.RouteID,
		RouteNumber: trip.RouteNumber,
		Fare:        trip.Fare,
		Status:      models.TicketStatusCreated,
		PurchasedAt: now,
		ValidUntil:  now.Add(uc.validityWindow()),
	}
	ticket.QRCode = uc.qr.Token(ticket.TicketID, ticket.PassengerID, ticket.TripID, ticket.PurchasedAt)

	if err := uc.repo.CreateTicket(ctx, ticket); err != nil {
		if releaseErr := uc.transport.ReleaseSeat(ctx, trip.TripID); releaseErr != nil {
			logger.ErrorCtx(ctx, "Failed to release seat after ticket insert failure",
				logger.String("trip_id", trip.TripID),
				logger.Err(releaseErr))
		}
		return nil, apperror.Internal(constants.ErrCodeDatabase, "Failed to store ticket", err)
	}

	metrics.RecordTicketTransition(string(models.TicketStatusCreated))
	logger.InfoCtx(ctx, "Ticket purchased",
		logger.String("ticket_id", ticket.TicketID),
		logger.String("passenger_id", ticket.PassengerID),
		logger.String("trip_id", ticket.TripID),
		logger.Float64("fare", ticket.Fare))

	if res := uc.publisher.PublishCreated(ctx, ticket); !res.Success {
		logger.WarnCtx(ctx, "Failed to publish ticket created event",
			logger.String("ticket_id", ticket.TicketID),
			logger.String("error", res.ErrorMessage))
	}
	return ticket, nil
}

// GetTicket returns a ticket by id
func (uc *ticketUC) GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	return uc.repo.GetTicket(ctx, ticketID)
}

// ListTicketsByPassenger returns a passenger's tickets
func (uc *ticketUC) ListTicketsByPassenger(ctx context.Context, passengerID string) ([]*models.Ticket, error) {
	return uc.repo.ListTicketsByPassenger(ctx, passengerID)
}

// ConfirmPayment attaches paymentID to a CREATED ticket once the payment
// service reports it SUCCESS for this ticket. A second confirmation fails
// rather than overwriting the first.
func (uc *ticketUC) ConfirmPayment(ctx context.Context, ticketID, paymentID string) (*models.Ticket, error) {
	if paymentID == "" {
		return nil, apperror.Validation(constants.ErrCodeValidation, "paymentId is required")
	}

	payment, err := uc.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.TicketID != ticketID {
		logger.WarnCtx(ctx, "Payment confirmation for another ticket",
			logger.String("ticket_id", ticketID),
			logger.String("payment_id", paymentID),
			logger.String("payment_ticket_id", payment.TicketID))
		return nil, apperror.Validation(constants.ErrCodeValidation,
			fmt.Sprintf("Payment %s does not belong to ticket %s", paymentID, ticketID))
	}
	if payment.Status != models.PaymentStatusSuccess {
		return nil, apperror.Validation(constants.ErrCodeInvalidPaymentStatus,
			fmt.Sprintf("Payment %s is %s, only SUCCESS payments confirm a ticket", paymentID, payment.Status))
	}

	return uc.confirm(ctx, ticketID, paymentID)
}

// confirm performs the conditional CREATED -> PAID write
func (uc *ticketUC) confirm(ctx context.Context, ticketID, paymentID string) (*models.Ticket, error) {
	ok, err := uc.repo.ConfirmPayment(ctx, ticketID, paymentID)
	if err != nil {
		return nil, err
	}

	ticket, err := uc.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.WarnCtx(ctx, "Payment confirmation rejected",
			logger.String("ticket_id", ticketID),
			logger.String("status", ticket.Status.String()))
		if err := requireStatus(ticket, models.TicketStatusCreated, models.TicketStatusPaid); err != nil {
			return nil, err
		}
		// matched nothing yet reads back CREATED: treat as a lost race
		return nil, apperror.Validation(constants.ErrCodeInvalidTicketStatus,
			fmt.Sprintf("Ticket %s changed while confirming payment", ticketID))
	}

	metrics.RecordTicketTransition(string(models.TicketStatusPaid))
	logger.InfoCtx(ctx, "Ticket paid",
		logger.String("ticket_id", ticketID),
		logger.String("payment_id", paymentID))
	return ticket, nil
}

// PayTicket settles a CREATED ticket through the payment service. A failed
// payment leaves the ticket unchanged.
func (uc *ticketUC) PayTicket(ctx context.Context, ticketID string, method models.PaymentMethod) (*models.PayTicketResponse, error) {
	if !method.IsValid() {
		return nil, apperror.Validation(constants.ErrCodeValidation, fmt.Sprintf("Unsupported payment method %q", method))
	}

	ticket, err := uc.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if err := requireStatus(ticket, models.TicketStatusCreated, models.TicketStatusPaid); err != nil {
		return nil, err
	}
	if ticket.Expired(uc.now()) {
		return nil, uc.expire(ctx, ticket)
	}

	payment, err := uc.payments.ProcessPayment(ctx, &models.PaymentRequest{
		TicketID:      ticket.TicketID,
		PassengerID:   ticket.PassengerID,
		Amount:        ticket.Fare,
		PaymentMethod: method,
	})
	if err != nil {
		return nil, err
	}

	if payment.Status != models.PaymentStatusSuccess {
		logger.InfoCtx(ctx, "Ticket payment declined",
			logger.String("ticket_id", ticketID),
			logger.String("payment_id", payment.PaymentID),
			logger.String("reason", payment.FailureReason))
		return &models.PayTicketResponse{Ticket: ticket, Payment: payment}, nil
	}

	paid, err := uc.confirm(ctx, ticketID, payment.PaymentID)
	if err != nil {
		logger.ErrorCtx(ctx, "Payment settled but ticket confirmation failed",
			logger.String("ticket_id", ticketID),
			logger.String("payment_id", payment.PaymentID),
			logger.Err(err))
		return nil, err
	}
	return &models.PayTicketResponse{Ticket: paid, Payment: payment}, nil
}

// ValidateTicket boards a PAID ticket. A ticket past its validity is
// expired instead and the validation rejected.
func (uc *ticketUC) ValidateTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	ticket, err := uc.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if err := requireStatus(ticket, models.TicketStatusPaid, models.TicketStatusValidated); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	if ticket.Expired(now) {
		return nil, uc.expire(ctx, ticket)
	}

	ok, err := uc.repo.MarkValidated(ctx, ticketID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Validation(constants.ErrCodeInvalidTicketStatus,
			fmt.Sprintf("Ticket %s changed while validating", ticketID))
	}

	ticket.Status = models.TicketStatusValidated
	ticket.ValidatedAt = &now
	metrics.RecordTicketTransition(string(models.TicketStatusValidated))
	logger.InfoCtx(ctx, "Ticket validated",
		logger.String("ticket_id", ticketID),
		logger.String("trip_id", ticket.TripID))

	if res := uc.publisher.PublishValidated(ctx, ticket, now); !res.Success {
		logger.WarnCtx(ctx, "Failed to publish ticket validated event",
			logger.String("ticket_id", ticketID),
			logger.String("error", res.ErrorMessage))
	}
	return ticket, nil
}

// expire moves an elapsed ticket to EXPIRED and returns the TICKET_EXPIRED rejection
func (uc *ticketUC) expire(ctx context.Context, ticket *models.Ticket) error {
	ok, err := uc.repo.MarkExpired(ctx, ticket.TicketID)
	if err != nil {
		return err
	}
	if ok {
		metrics.RecordTicketTransition(string(models.TicketStatusExpired))
	}
	logger.InfoCtx(ctx, "Ticket expired on use",
		logger.String("ticket_id", ticket.TicketID),
		logger.Time("valid_until", ticket.ValidUntil))
	return apperror.Validation(constants.ErrCodeTicketExpired,
		fmt.Sprintf("Ticket %s expired at %s", ticket.TicketID, ticket.ValidUntil.Format(time.RFC3339)))
}

// ExpireStale expires every unused ticket whose validity has elapsed
func (uc *ticketUC) ExpireStale(ctx context.Context) (*models.ExpireTicketsResponse, error) {
	now := uc.now().UTC()
	n, err := uc.repo.ExpireStale(ctx, now)
	if err != nil {
		logger.ErrorCtx(ctx, "Ticket expiry sweep failed", logger.Err(err))
		return nil, err
	}

	metrics.RecordTicketTransitions(string(models.TicketStatusExpired), n)
	if n > 0 {
		logger.InfoCtx(ctx, "Expired stale tickets", logger.Int64("count", n))
	}
	return &models.ExpireTicketsResponse{Expired: n, RanAt: now}, nil
}

// TicketPDF renders the e-ticket for a ticket
func (uc *ticketUC) TicketPDF(ctx context.Context, ticketID string) ([]byte, string, error) {
	ticket, err := uc.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, "", err
	}
	return eticket.Render(ticket)
}
