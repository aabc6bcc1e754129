package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	jwtpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/jwt"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/passenger"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type passengerUC struct {
	cfg        *models.Config
	repo       passenger.PassengerRepo
	now        func() time.Time
	bcryptCost int
}

// NewPassengerUC creates a new passenger use case
func NewPassengerUC(cfg *models.Config, repo passenger.PassengerRepo) passenger.PassengerUC {
	return &passengerUC{
		cfg:        cfg,
		repo:       repo,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func invalidCredentials() error {
	return apperror.Unauthorized(constants.ErrCodeInvalidCredentials, "Invalid email or password")
}

// Register creates an ACTIVE passenger with a bcrypt password hash
func (uc *passengerUC) Register(ctx context.Context, req *models.RegisterPassengerRequest) (*models.Passenger, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := uc.repo.GetPassengerByEmail(ctx, email); err == nil {
		return nil, apperror.Validation(constants.ErrCodeDuplicateEmail, "Email is already registered")
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		return nil, apperror.Internal(constants.ErrCodeInternal, "Failed to hash password", err)
	}

	now := uc.now().UTC()
	p := &models.Passenger{
		PassengerID:  uuid.New().String(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Status:       models.PassengerStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.CreatePassenger(ctx, p); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Passenger registered",
		logger.String("passenger_id", p.PassengerID),
		logger.String("email", utils.MaskEmail(email)))
	return p, nil
}

// Login checks credentials and issues an access token
func (uc *passengerUC) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	p, err := uc.repo.GetPassengerByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnCtx(ctx, "Login rejected", logger.String("passenger_id", p.PassengerID))
		return nil, invalidCredentials()
	}
	if p.Status != models.PassengerStatusActive {
		return nil, apperror.Unauthorized(constants.ErrCodeInactivePassenger,
			fmt.Sprintf("Passenger account is %s", strings.ToLower(p.Status.String())))
	}

	token, expiresAt, err := jwtpkg.GenerateToken(p.PassengerID, p.Email, uc.cfg.JWT, uc.now())
	if err != nil {
		return nil, apperror.Internal(constants.ErrCodeInternal, "Failed to issue token", err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Passenger: p,
	}, nil
}

// GetPassenger returns a passenger by id
func (uc *passengerUC) GetPassenger(ctx context.Context, passengerID string) (*models.Passenger, error) {
	return uc.repo.GetPassengerByID(ctx, passengerID)
}

// UpdateStatus changes a passenger's account status
func (uc *passengerUC) UpdateStatus(ctx context.Context, passengerID string, status models.PassengerStatus) (*models.Passenger, error) {
	if !status.IsValid() {
		return nil, apperror.Validation(constants.ErrCodeValidation, fmt.Sprintf("Unknown passenger status %q", status))
	}

	p, err := uc.repo.UpdateStatus(ctx, passengerID, status)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Passenger status updated",
		logger.String("passenger_id", passengerID),
		logger.String("status", status.String()))
	return p, nil
}

// ListPassengers pages through passengers
func (uc *passengerUC) ListPassengers(ctx context.Context, limit, offset int) ([]*models.Passenger, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.ListPassengers(ctx, limit, offset)
}
