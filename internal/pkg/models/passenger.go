package models

import (
	"database/sql/driver"
	"time"
)

// PassengerStatus is the account state of a passenger
type PassengerStatus string

const (
	PassengerStatusActive    PassengerStatus = "ACTIVE"
	PassengerStatusInactive  PassengerStatus = "INACTIVE"
	PassengerStatusSuspended PassengerStatus = "SUSPENDED"
)

var PassengerStatuses = []PassengerStatus{
	PassengerStatusActive,
	PassengerStatusInactive,
	PassengerStatusSuspended,
}

// ParsePassengerStatus converts a canonical name into a PassengerStatus
func ParsePassengerStatus(s string) (PassengerStatus, error) {
	return parseEnum("passenger status", s, PassengerStatuses)
}

func (s PassengerStatus) IsValid() bool {
	_, err := ParsePassengerStatus(string(s))
	return err == nil
}

func (s PassengerStatus) String() string { return string(s) }

func (s PassengerStatus) Value() (driver.Value, error) {
	if _, err := ParsePassengerStatus(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *PassengerStatus) Scan(src interface{}) error {
	v, err := scanEnum("passenger status", src, PassengerStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *PassengerStatus) UnmarshalText(text []byte) error {
	v, err := ParsePassengerStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Passenger represents a registered rider
type Passenger struct {
	PassengerID  string          `json:"passengerId" db:"passenger_id"`
	FirstName    string          `json:"firstName" db:"first_name"`
	LastName     string          `json:"lastName" db:"last_name"`
	Email        string          `json:"email" db:"email"`
	Phone        string          `json:"phone,omitempty" db:"phone"`
	PasswordHash string          `json:"-" db:"password_hash"`
	Status       PassengerStatus `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}

// FullName joins first and last name
func (p *Passenger) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// RegisterPassengerRequest is the payload for creating an account
type RegisterPassengerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest carries passenger credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries an issued access token
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expiresAt"`
	Passenger *Passenger `json:"passenger"`
}

// UpdatePassengerStatusRequest changes a passenger's account state
type UpdatePassengerStatusRequest struct {
	Status PassengerStatus `json:"status" validate:"required"`
}
