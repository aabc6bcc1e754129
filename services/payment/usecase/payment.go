package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/metrics"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/payment"
)

const defaultCurrency = "NAD"

// FailureReasons are the canned reasons a simulated payment is declined with
var FailureReasons = []string{
	"Insufficient funds",
	"Card declined",
	"Payment gateway timeout",
	"Invalid payment details",
	"Transaction limit exceeded",
}

type paymentUC struct {
	cfg  *models.Config
	repo payment.PaymentRepo

	mu  sync.Mutex // guards rng
	rng *rand.Rand

	sleep func(time.Duration)
	now   func() time.Time
}

// NewPaymentUC creates a new payment simulator. rng drives every outcome;
// pass a seeded source for repeatable runs.
func NewPaymentUC(cfg *models.Config, repo payment.PaymentRepo, rng *rand.Rand) payment.PaymentUC {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &paymentUC{
		cfg:   cfg,
		repo:  repo,
		rng:   rng,
		sleep: time.Sleep,
		now:   time.Now,
	}
}

func (uc *paymentUC) currency() string {
	if uc.cfg.Payment.Currency == "" {
		return defaultCurrency
	}
	return uc.cfg.Payment.Currency
}

// draw resolves one settlement: the transaction reference on success or
// the failure reason otherwise
func (uc *paymentUC) draw(at time.Time) (ok bool, reference, reason string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.rng.Float64() < uc.cfg.Payment.SuccessRate {
		return true, fmt.Sprintf("TXN-%d-%08x", at.Unix(), uc.rng.Uint32()), ""
	}
	return false, "", FailureReasons[uc.rng.Intn(len(FailureReasons))]
}

// ProcessPayment records a PENDING payment, waits the simulated latency and
// resolves it at random. The wait is not cut short by ctx.
func (uc *paymentUC) ProcessPayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error) {
	if req.Amount <= 0 {
		return nil, apperror.Validation(constants.ErrCodeValidation, "Amount must be greater than zero")
	}
	if !req.PaymentMethod.IsValid() {
		return nil, apperror.Validation(constants.ErrCodeValidation, fmt.Sprintf("Unsupported payment method %q", req.PaymentMethod))
	}

	p := &models.Payment{
		PaymentID:     uuid.New().String(),
		TicketID:      req.TicketID,
		PassengerID:   req.PassengerID,
		Amount:        req.Amount,
		Currency:      uc.currency(),
		Status:        models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     uc.now().UTC(),
	}
	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Processing payment",
		logger.String("payment_id", p.PaymentID),
		logger.String("ticket_id", p.TicketID),
		logger.Float64("amount", p.Amount),
		logger.String("method", p.PaymentMethod.String()))

	_ = nrpkg.WithSegment(ctx, "payment.settle", func() error {
		if uc.cfg.Payment.Latency > 0 {
			uc.sleep(uc.cfg.Payment.Latency)
		}
		return nil
	})

	processed := uc.now().UTC()
	ok, reference, reason := uc.draw(processed)
	p.ProcessedAt = &processed
	if ok {
		p.Status = models.PaymentStatusSuccess
		p.TransactionReference = &reference
	} else {
		p.Status = models.PaymentStatusFailed
		p.FailureReason = &reason
	}

	resolved, err := uc.repo.ResolvePayment(ctx, p)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to persist payment outcome",
			logger.String("payment_id", p.PaymentID),
			logger.Err(err))
		return nil, err
	}
	if !resolved {
		return nil, apperror.Validation(constants.ErrCodeInvalidPaymentStatus,
			fmt.Sprintf("Payment %s was resolved concurrently", p.PaymentID))
	}

	metrics.RecordPayment(p.PaymentMethod.String(), p.Status.String())
	if ok {
		logger.InfoCtx(ctx, "Payment succeeded",
			logger.String("payment_id", p.PaymentID),
			logger.String("transaction_reference", reference))
	} else {
		logger.InfoCtx(ctx, "Payment failed",
			logger.String("payment_id", p.PaymentID),
			logger.String("reason", reason))
	}
	return p.ToResponse(), nil
}

// GetPayment returns a payment by id
func (uc *paymentUC) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	return uc.repo.GetPayment(ctx, paymentID)
}

// GetPaymentByTicket returns the latest payment for a ticket
func (uc *paymentUC) GetPaymentByTicket(ctx context.Context, ticketID string) (*models.Payment, error) {
	return uc.repo.GetPaymentByTicket(ctx, ticketID)
}

// RefundPayment refunds a successful payment
func (uc *paymentUC) RefundPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	ok, err := uc.repo.RefundPayment(ctx, paymentID, uc.now().UTC())
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Validation(constants.ErrCodeInvalidPaymentStatus,
			fmt.Sprintf("Payment %s is %s, only SUCCESS payments can be refunded", paymentID, p.Status))
	}

	metrics.RecordPayment(p.PaymentMethod.String(), p.Status.String())
	logger.InfoCtx(ctx, "Payment refunded", logger.String("payment_id", paymentID))
	return p, nil
}
