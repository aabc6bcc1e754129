package passenger

import (
	"context"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_passenger.go -package=mocks github.com/davidNdantsi/DSA-Assignment2-2025/services/passenger PassengerRepo,PassengerUC

// PassengerRepo defines the interface for passenger data access operations
type PassengerRepo interface {
	CreatePassenger(ctx context.Context, p *models.Passenger) error
	GetPassengerByID(ctx context.Context, passengerID string) (*models.Passenger, error)
	GetPassengerByEmail(ctx context.Context, email string) (*models.Passenger, error)
	UpdateStatus(ctx context.Context, passengerID string, status models.PassengerStatus) (*models.Passenger, error)
	ListPassengers(ctx context.Context, limit, offset int) ([]*models.Passenger, error)
}
