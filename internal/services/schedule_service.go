package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/Madiyar4565/Travel_Scheduler/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleStore is the storage contract the schedule service depends
// on. *repository.ScheduleRepository satisfies it in production; tests
// substitute an in-memory double.
type ScheduleStore interface {
	GetAllSchedules(ctx context.Context) ([]models.Schedule, error)
	GetScheduleByID(ctx context.Context, id primitive.ObjectID) (*models.Schedule, error)
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id primitive.ObjectID, schedule *models.Schedule) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id primitive.ObjectID) error
}

// ScheduleService encapsulates the business logic for schedule entries.
type ScheduleService struct {
	repo ScheduleStore
}

// NewScheduleService creates a new instance of ScheduleService.
func NewScheduleService(repo ScheduleStore) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// ValidateSchedule checks a complete schedule entry against the input
// rules and reports the first failing field. It is pure: no I/O.
func ValidateSchedule(schedule *models.Schedule) error {
	if len(strings.TrimSpace(schedule.Destination)) < 3 {
		return fmt.Errorf("%w: destination must be at least 3 characters long", models.ErrValidation)
	}
	if strings.TrimSpace(schedule.Date) == "" {
		return fmt.Errorf("%w: date is required", models.ErrValidation)
	}
	if strings.TrimSpace(schedule.Time) == "" {
		return fmt.Errorf("%w: time is required", models.ErrValidation)
	}
	return nil
}

// validateChanges checks only the fields a partial update supplies.
// Empty fields mean "keep the stored value" and are skipped.
func validateChanges(changes *models.Schedule) error {
	if changes.Destination != "" && len(strings.TrimSpace(changes.Destination)) < 3 {
		return fmt.Errorf("%w: destination must be at least 3 characters long", models.ErrValidation)
	}
	return nil
}

// GetAllSchedules retrieves every stored schedule entry.
func (s *ScheduleService) GetAllSchedules(ctx context.Context) ([]models.Schedule, error) {
	schedules, err := s.repo.GetAllSchedules(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch schedules in service layer")
		return nil, fmt.Errorf("failed to fetch schedules: %v", err)
	}
	return schedules, nil
}

// GetSchedule retrieves a schedule entry by its ID.
func (s *ScheduleService) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.WithField("schedule_id", id).Warn("Invalid schedule ID in GetSchedule")
		return nil, fmt.Errorf("%w: %q is not a valid schedule ID", models.ErrInvalidID, id)
	}

	return s.repo.GetScheduleByID(ctx, objID)
}

// CreateSchedule validates a new entry and stores it.
func (s *ScheduleService) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	if err := ValidateSchedule(schedule); err != nil {
		logger.Log.WithField("destination", schedule.Destination).Warn("Schedule rejected by validation")
		return nil, err
	}

	created, err := s.repo.CreateSchedule(ctx, schedule)
	if err != nil {
		logger.Log.WithError(err).Error("Service failed to create schedule")
		return nil, fmt.Errorf("failed to create schedule: %v", err)
	}

	logger.Log.WithField("schedule_id", created.ID.Hex()).Info("Schedule created in service layer")
	return created, nil
}

// UpdateSchedule applies a partial update to an existing entry. Fields
// left empty in changes keep their stored value; a non-nil image
// replaces the stored one. It returns the post-update record plus the
// image sub-record that was displaced, if any, so the caller can remove
// the file once the write is known to have succeeded.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, id string, changes *models.Schedule) (*models.Schedule, *models.ScheduleImage, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.WithField("schedule_id", id).Warn("Invalid schedule ID in UpdateSchedule")
		return nil, nil, fmt.Errorf("%w: %q is not a valid schedule ID", models.ErrInvalidID, id)
	}

	if err := validateChanges(changes); err != nil {
		return nil, nil, err
	}

	existing, err := s.repo.GetScheduleByID(ctx, objID)
	if err != nil {
		return nil, nil, err
	}

	merged := *existing
	if changes.Destination != "" {
		merged.Destination = changes.Destination
	}
	if changes.Date != "" {
		merged.Date = changes.Date
	}
	if changes.Time != "" {
		merged.Time = changes.Time
	}

	var replaced *models.ScheduleImage
	if changes.Image != nil {
		replaced = existing.Image
		merged.Image = changes.Image
	}

	if err := ValidateSchedule(&merged); err != nil {
		return nil, nil, err
	}

	updated, err := s.repo.UpdateSchedule(ctx, objID, &merged)
	if err != nil {
		logger.Log.WithError(err).WithField("schedule_id", id).Error("Failed to update schedule")
		return nil, nil, err
	}

	logger.Log.WithField("schedule_id", id).Info("Schedule updated in service layer")
	return updated, replaced, nil
}

// DeleteSchedule removes an entry and returns the image sub-record it
// carried, if any, so the caller can clean up the stored file.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, id string) (*models.ScheduleImage, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.WithField("schedule_id", id).Warn("Invalid schedule ID in DeleteSchedule")
		return nil, fmt.Errorf("%w: %q is not a valid schedule ID", models.ErrInvalidID, id)
	}

	existing, err := s.repo.GetScheduleByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteSchedule(ctx, objID); err != nil {
		logger.Log.WithError(err).WithField("schedule_id", id).Error("Failed to delete schedule")
		return nil, err
	}

	logger.Log.WithField("schedule_id", id).Info("Schedule deleted in service layer")
	return existing.Image, nil
}
