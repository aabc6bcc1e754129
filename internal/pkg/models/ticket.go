package models

import (
	"database/sql/driver"
	"time"
)

// TicketStatus is the lifecycle state of a ticket
type TicketStatus string

const (
	TicketStatusCreated   TicketStatus = "CREATED"
	TicketStatusPaid      TicketStatus = "PAID"
	TicketStatusValidated TicketStatus = "VALIDATED"
	TicketStatusExpired   TicketStatus = "EXPIRED"
)

var TicketStatuses = []TicketStatus{
	TicketStatusCreated,
	TicketStatusPaid,
	TicketStatusValidated,
	TicketStatusExpired,
}

// ParseTicketStatus converts a canonical name into a TicketStatus
func ParseTicketStatus(s string) (TicketStatus, error) {
	return parseEnum("ticket status", s, TicketStatuses)
}

func (s TicketStatus) IsValid() bool {
	_, err := ParseTicketStatus(string(s))
	return err == nil
}

func (s TicketStatus) String() string { return string(s) }

func (s TicketStatus) Value() (driver.Value, error) {
	if _, err := ParseTicketStatus(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *TicketStatus) Scan(src interface{}) error {
	v, err := scanEnum("ticket status", src, TicketStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *TicketStatus) UnmarshalText(text []byte) error {
	v, err := ParseTicketStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Ticket represents a passenger's right to ride one trip
type Ticket struct {
	TicketID    string       `json:"ticketId" db:"ticket_id"`
	PassengerID string       `json:"passengerId" db:"passenger_id"`
	TripID      string       `json:"tripId" db:"trip_id"`
	RouteID     string       `json:"routeId" db:"route_id"`
	RouteNumber string       `json:"routeNumber" db:"route_number"`
	Fare        float64      `json:"fare" db:"fare"`
	Status      TicketStatus `json:"status" db:"status"`
	QRCode      string       `json:"qrCode" db:"qr_code"`
	PurchasedAt time.Time    `json:"purchasedAt" db:"purchased_at"`
	ValidatedAt *time.Time   `json:"validatedAt,omitempty" db:"validated_at"`
	ValidUntil  time.Time    `json:"validUntil" db:"valid_until"`
	PaymentID   *string      `json:"paymentId,omitempty" db:"payment_id"`
}

// Expired reports whether the validity window has elapsed at now
func (t *Ticket) Expired(now time.Time) bool {
	return now.After(t.ValidUntil)
}

// PurchaseTicketRequest is the payload for buying a ticket
type PurchaseTicketRequest struct {
	PassengerID string `json:"passengerId" validate:"required"`
	TripID      string `json:"tripId" validate:"required"`
}

// ConfirmPaymentRequest attaches an externally settled payment to a ticket
type ConfirmPaymentRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

// PayTicketRequest asks the ticketing service to settle a ticket through the payment service
type PayTicketRequest struct {
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required"`
}

// PayTicketResponse carries the ticket state after a payment attempt
type PayTicketResponse struct {
	Ticket  *Ticket          `json:"ticket"`
	Payment *PaymentResponse `json:"payment"`
}

// ExpireTicketsResponse reports a sweep result
type ExpireTicketsResponse struct {
	Expired int64     `json:"expired"`
	RanAt   time.Time `json:"ranAt"`
}
