package usecase

import (
	"context"
	"fmt"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/events"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/status"
)

// UpdateTrip is the single write path for trips. A status change must be a
// legal transition; the write is conditional on the status read here, and
// a committed change is announced on the bus without failing the update.
func (uc *transportUC) UpdateTrip(ctx context.Context, tripID string, update models.TripUpdate) (*models.Trip, error) {
	current, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	previous := current.Status

	updated := *current
	update.Apply(&updated)

	if !updated.Status.IsValid() {
		return nil, apperror.Validation(constants.ErrCodeValidation, fmt.Sprintf("Unknown trip status %q", updated.Status))
	}
	if err := status.ValidateTripTransition(previous, updated.Status); err != nil {
		logger.WarnCtx(ctx, "Rejected trip status transition",
			logger.String("trip_id", tripID),
			logger.String("from", previous.String()),
			logger.String("to", updated.Status.String()))
		return nil, err
	}
	if !updated.ScheduledArrival.After(updated.ScheduledDeparture) {
		return nil, apperror.Validation(constants.ErrCodeValidation, "scheduledArrival must be after scheduledDeparture")
	}

	now := uc.now().UTC()
	if previous != updated.Status {
		switch updated.Status {
		case models.TripStatusInProgress:
			if updated.ActualDeparture == nil {
				updated.ActualDeparture = &now
			}
		case models.TripStatusCompleted:
			if updated.ActualArrival == nil {
				updated.ActualArrival = &now
			}
		}
	}
	updated.UpdatedAt = now

	ok, err := uc.repo.UpdateTrip(ctx, &updated, previous)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Validation(constants.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("Trip %s changed status concurrently; expected %s", tripID, previous))
	}

	result := uc.publisher.Publish(ctx, &updated, previous, events.EventTypeForStatus(updated.Status))
	if !result.Success {
		logger.WarnCtx(ctx, "Failed to publish schedule update",
			logger.String("trip_id", tripID),
			logger.String("new_status", updated.Status.String()),
			logger.String("error", result.ErrorMessage))
	}

	return &updated, nil
}

// UpdateTripStatus moves a trip to status
func (uc *transportUC) UpdateTripStatus(ctx context.Context, tripID string, s models.TripStatus) (*models.Trip, error) {
	return uc.UpdateTrip(ctx, tripID, models.TripUpdate{Status: &s})
}

// DelayTrip marks a trip DELAYED with the given delay and reason
func (uc *transportUC) DelayTrip(ctx context.Context, tripID string, minutes int, reason string) (*models.Trip, error) {
	if minutes <= 0 {
		return nil, apperror.Validation(constants.ErrCodeValidation, "Delay minutes must be positive")
	}
	s := models.TripStatusDelayed
	return uc.UpdateTrip(ctx, tripID, models.TripUpdate{
		Status:       &s,
		DelayMinutes: &minutes,
		DelayReason:  &reason,
	})
}

// CancelTrip cancels a trip, recording reason
func (uc *transportUC) CancelTrip(ctx context.Context, tripID string, reason string) (*models.Trip, error) {
	s := models.TripStatusCancelled
	return uc.UpdateTrip(ctx, tripID, models.TripUpdate{
		Status:      &s,
		DelayReason: &reason,
	})
}

// ReserveSeat takes one seat. The decrement is a single conditional write;
// when it matches nothing the trip is re-read to explain why.
func (uc *transportUC) ReserveSeat(ctx context.Context, tripID string) (*models.Trip, error) {
	ok, err := uc.repo.ReserveSeat(ctx, tripID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if ok {
		return trip, nil
	}

	if trip.Status != models.TripStatusScheduled {
		return nil, apperror.Validation(constants.ErrCodeInvalidTripStatus,
			fmt.Sprintf("Trip %s is %s", tripID, trip.Status))
	}
	return nil, apperror.Validation(constants.ErrCodeNoSeats, fmt.Sprintf("Trip %s has no seats available", tripID))
}

// ReleaseSeat returns one seat; releasing into a full trip is a no-op
func (uc *transportUC) ReleaseSeat(ctx context.Context, tripID string) (*models.Trip, error) {
	ok, err := uc.repo.ReleaseSeat(ctx, tripID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.WarnCtx(ctx, "Seat release ignored, trip already at capacity", logger.String("trip_id", tripID))
	}
	return trip, nil
}
