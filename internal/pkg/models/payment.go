package models

import (
	"database/sql/driver"
	"time"
)

// PaymentStatus is the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusSuccess,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

// ParsePaymentStatus converts a canonical name into a PaymentStatus
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	return parseEnum("payment status", s, PaymentStatuses)
}

func (s PaymentStatus) IsValid() bool {
	_, err := ParsePaymentStatus(string(s))
	return err == nil
}

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) Value() (driver.Value, error) {
	if _, err := ParsePaymentStatus(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *PaymentStatus) Scan(src interface{}) error {
	v, err := scanEnum("payment status", src, PaymentStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *PaymentStatus) UnmarshalText(text []byte) error {
	v, err := ParsePaymentStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// PaymentMethod is how a passenger pays
type PaymentMethod string

const (
	PaymentMethodCard        PaymentMethod = "CARD"
	PaymentMethodMobileMoney PaymentMethod = "MOBILE_MONEY"
	PaymentMethodCash        PaymentMethod = "CASH"
	PaymentMethodWallet      PaymentMethod = "WALLET"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodMobileMoney,
	PaymentMethodCash,
	PaymentMethodWallet,
}

// ParsePaymentMethod converts a canonical name into a PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	return parseEnum("payment method", s, PaymentMethods)
}

func (s PaymentMethod) IsValid() bool {
	_, err := ParsePaymentMethod(string(s))
	return err == nil
}

func (s PaymentMethod) String() string { return string(s) }

func (s PaymentMethod) Value() (driver.Value, error) {
	if _, err := ParsePaymentMethod(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *PaymentMethod) Scan(src interface{}) error {
	v, err := scanEnum("payment method", src, PaymentMethods)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *PaymentMethod) UnmarshalText(text []byte) error {
	v, err := ParsePaymentMethod(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Payment represents a simulated settlement for one ticket
type Payment struct {
	PaymentID            string        `json:"paymentId" db:"payment_id"`
	TicketID             string        `json:"ticketId" db:"ticket_id"`
	PassengerID          string        `json:"passengerId" db:"passenger_id"`
	Amount               float64       `json:"amount" db:"amount"`
	Currency             string        `json:"currency" db:"currency"`
	Status               PaymentStatus `json:"status" db:"status"`
	PaymentMethod        PaymentMethod `json:"paymentMethod" db:"payment_method"`
	TransactionReference *string       `json:"transactionReference,omitempty" db:"transaction_reference"`
	FailureReason        *string       `json:"failureReason,omitempty" db:"failure_reason"`
	CreatedAt            time.Time     `json:"createdAt" db:"created_at"`
	ProcessedAt          *time.Time    `json:"processedAt,omitempty" db:"processed_at"`
	RefundedAt           *time.Time    `json:"refundedAt,omitempty" db:"refunded_at"`
}

// PaymentRequest asks the simulator to settle a ticket
type PaymentRequest struct {
	TicketID      string        `json:"ticketId" validate:"required"`
	PassengerID   string        `json:"passengerId" validate:"required"`
	Amount        float64       `json:"amount" validate:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required"`
}

// PaymentResponse is the outcome returned to callers of the simulator
type PaymentResponse struct {
	PaymentID            string        `json:"paymentId"`
	TicketID             string        `json:"ticketId"`
	Status               PaymentStatus `json:"status"`
	Amount               float64       `json:"amount"`
	Currency             string        `json:"currency"`
	TransactionReference string        `json:"transactionReference,omitempty"`
	FailureReason        string        `json:"failureReason,omitempty"`
	ProcessedAt          *time.Time    `json:"processedAt,omitempty"`
}

// ToResponse projects a payment onto its response shape
func (p *Payment) ToResponse() *PaymentResponse {
	resp := &PaymentResponse{
		PaymentID:   p.PaymentID,
		TicketID:    p.TicketID,
		Status:      p.Status,
		Amount:      p.Amount,
		Currency:    p.Currency,
		ProcessedAt: p.ProcessedAt,
	}
	if p.TransactionReference != nil {
		resp.TransactionReference = *p.TransactionReference
	}
	if p.FailureReason != nil {
		resp.FailureReason = *p.FailureReason
	}
	return resp
}
