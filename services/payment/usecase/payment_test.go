package usecase

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/payment/mocks"
)

var (
	fixedNow    = time.Date(2025, 10, 1, 6, 5, 0, 0, time.UTC)
	txnRefRegex = regexp.MustCompile(`^TXN-\d+-[0-9a-f]{8}$`)
)

func newUC(t *testing.T, successRate float64) (*paymentUC, *mocks.MockPaymentRepo, *[]time.Duration) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentRepo(ctrl)

	cfg := &models.Config{}
	cfg.Payment.SuccessRate = successRate
	cfg.Payment.Latency = 2 * time.Second
	cfg.Payment.Currency = "NAD"

	var slept []time.Duration
	uc := NewPaymentUC(cfg, repo, rand.New(rand.NewSource(42))).(*paymentUC)
	uc.sleep = func(d time.Duration) { slept = append(slept, d) }
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, &slept
}

func request() *models.PaymentRequest {
	return &models.PaymentRequest{TicketID: "tk-1", PassengerID: "p-1", Amount: 14.5, PaymentMethod: models.PaymentMethodCard}
}

func TestProcessPayment_Success(t *testing.T) {
	uc, repo, slept := newUC(t, 1)

	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			assert.Equal(t, models.PaymentStatusPending, p.Status)
			assert.Equal(t, "NAD", p.Currency)
			assert.Nil(t, p.ProcessedAt)
			return nil
		})
	repo.EXPECT().ResolvePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) (bool, error) {
			assert.Equal(t, models.PaymentStatusSuccess, p.Status)
			require.NotNil(t, p.ProcessedAt)
			return true, nil
		})

	resp, err := uc.ProcessPayment(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusSuccess, resp.Status)
	assert.Regexp(t, txnRefRegex, resp.TransactionReference)
	assert.Empty(t, resp.FailureReason)
	assert.Equal(t, []time.Duration{2 * time.Second}, *slept)
}

func TestProcessPayment_FailureUsesCannedReason(t *testing.T) {
	uc, repo, _ := newUC(t, 0)

	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().ResolvePayment(gomock.Any(), gomock.Any()).Return(true, nil)

	resp, err := uc.ProcessPayment(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusFailed, resp.Status)
	assert.Contains(t, FailureReasons, resp.FailureReason)
	assert.Empty(t, resp.TransactionReference)
}

func TestProcessPayment_OutcomeRate(t *testing.T) {
	uc, _, _ := newUC(t, 0.95)

	successes := 0
	for i := 0; i < 1000; i++ {
		if ok, _, _ := uc.draw(fixedNow); ok {
			successes++
		}
	}
	assert.InDelta(t, 950, successes, 40)
}

func TestProcessPayment_RejectsBadInput(t *testing.T) {
	uc, _, slept := newUC(t, 1)

	req := request()
	req.Amount = 0
	_, err := uc.ProcessPayment(context.Background(), req)
	assert.Equal(t, constants.ErrCodeValidation, apperror.CodeOf(err))

	req = request()
	req.PaymentMethod = "CHEQUE"
	_, err = uc.ProcessPayment(context.Background(), req)
	assert.Equal(t, constants.ErrCodeValidation, apperror.CodeOf(err))

	assert.Empty(t, *slept)
}

func TestProcessPayment_InsertFailure(t *testing.T) {
	uc, repo, slept := newUC(t, 1)

	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := uc.ProcessPayment(context.Background(), request())
	assert.Error(t, err)
	assert.Empty(t, *slept)
}

func TestProcessPayment_AlreadyResolved(t *testing.T) {
	uc, repo, _ := newUC(t, 1)

	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().ResolvePayment(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := uc.ProcessPayment(context.Background(), request())
	assert.Equal(t, constants.ErrCodeInvalidPaymentStatus, apperror.CodeOf(err))
}

func TestProcessPayment_LatencyIgnoresCancellation(t *testing.T) {
	uc, repo, slept := newUC(t, 1)

	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().ResolvePayment(gomock.Any(), gomock.Any()).Return(true, nil)

	ctx, cancel := context.WithCancel(context.Background())
	uc.sleep = func(d time.Duration) {
		cancel()
		*slept = append(*slept, d)
	}

	resp, err := uc.ProcessPayment(ctx, request())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, resp.Status)
	assert.Len(t, *slept, 1)
}

func TestRefundPayment(t *testing.T) {
	uc, repo, _ := newUC(t, 1)

	repo.EXPECT().RefundPayment(gomock.Any(), "pay-1", fixedNow).Return(true, nil)
	repo.EXPECT().GetPayment(gomock.Any(), "pay-1").
		Return(&models.Payment{PaymentID: "pay-1", Status: models.PaymentStatusRefunded, PaymentMethod: models.PaymentMethodCard}, nil)

	p, err := uc.RefundPayment(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, p.Status)
}

func TestRefundPayment_OnlySuccessful(t *testing.T) {
	uc, repo, _ := newUC(t, 1)

	repo.EXPECT().RefundPayment(gomock.Any(), "pay-1", fixedNow).Return(false, nil)
	repo.EXPECT().GetPayment(gomock.Any(), "pay-1").
		Return(&models.Payment{PaymentID: "pay-1", Status: models.PaymentStatusFailed}, nil)

	_, err := uc.RefundPayment(context.Background(), "pay-1")
	assert.Equal(t, constants.ErrCodeInvalidPaymentStatus, apperror.CodeOf(err))
}

func TestRefundPayment_Unknown(t *testing.T) {
	uc, repo, _ := newUC(t, 1)

	repo.EXPECT().RefundPayment(gomock.Any(), "nope", fixedNow).Return(false, nil)
	repo.EXPECT().GetPayment(gomock.Any(), "nope").
		Return(nil, apperror.NotFound(constants.ErrCodePaymentNotFound, "Payment nope not found"))

	_, err := uc.RefundPayment(context.Background(), "nope")
	assert.Equal(t, constants.ErrCodePaymentNotFound, apperror.CodeOf(err))
}
