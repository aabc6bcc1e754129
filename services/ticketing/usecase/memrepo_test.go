package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// memTicketRepo applies the same conditional writes as the SQL repository
type memTicketRepo struct {
	mu      sync.Mutex
	tickets map[string]models.Ticket
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{tickets: map[string]models.Ticket{}}
}

func (r *memTicketRepo) CreateTicket(_ context.Context, ticket *models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[ticket.TicketID] = *ticket
	return nil
}

func (r *memTicketRepo) GetTicket(_ context.Context, ticketID string) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[ticketID]
	if !ok {
		return nil, apperror.NotFound(constants.ErrCodeTicketNotFound, fmt.Sprintf("Ticket %s not found", ticketID))
	}
	return &t, nil
}

func (r *memTicketRepo) ListTicketsByPassenger(_ context.Context, passengerID string) ([]*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Ticket
	for _, t := range r.tickets {
		if t.PassengerID == passengerID {
			t := t
			out = append(out, &t)
		}
	}
	return out, nil
}

func (r *memTicketRepo) update(ticketID string, from []models.TicketStatus, apply func(*models.Ticket)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[ticketID]
	if !ok {
		return false
	}
	for _, s := range from {
		if t.Status == s {
			apply(&t)
			r.tickets[ticketID] = t
			return true
		}
	}
	return false
}

func (r *memTicketRepo) ConfirmPayment(_ context.Context, ticketID, paymentID string) (bool, error) {
	return r.update(ticketID, []models.TicketStatus{models.TicketStatusCreated}, func(t *models.Ticket) {
		t.Status = models.TicketStatusPaid
		t.PaymentID = &paymentID
	}), nil
}

func (r *memTicketRepo) MarkValidated(_ context.Context, ticketID string, at time.Time) (bool, error) {
	return r.update(ticketID, []models.TicketStatus{models.TicketStatusPaid}, func(t *models.Ticket) {
		t.Status = models.TicketStatusValidated
		t.ValidatedAt = &at
	}), nil
}

func (r *memTicketRepo) MarkExpired(_ context.Context, ticketID string) (bool, error) {
	return r.update(ticketID, []models.TicketStatus{models.TicketStatusCreated, models.TicketStatusPaid}, func(t *models.Ticket) {
		t.Status = models.TicketStatusExpired
	}), nil
}

func (r *memTicketRepo) ExpireStale(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, t := range r.tickets {
		if (t.Status == models.TicketStatusCreated || t.Status == models.TicketStatusPaid) && t.ValidUntil.Before(now) {
			t.Status = models.TicketStatusExpired
			r.tickets[id] = t
			n++
		}
	}
	return n, nil
}
