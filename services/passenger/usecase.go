package passenger

import (
	"context"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// PassengerUC represents the passenger usecase interface
type PassengerUC interface {
	Register(ctx context.Context, req *models.RegisterPassengerRequest) (*models.Passenger, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetPassenger(ctx context.Context, passengerID string) (*models.Passenger, error)
	UpdateStatus(ctx context.Context, passengerID string, status models.PassengerStatus) (*models.Passenger, error)
	ListPassengers(ctx context.Context, limit, offset int) ([]*models.Passenger, error)
}
