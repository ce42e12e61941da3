package services

import (
	"context"
	"fmt"

	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/Madiyar4565/Travel_Scheduler/pkg/logger"
)

// DestinationStore is the storage contract the destination service
// depends on. *repository.DestinationRepository satisfies it.
type DestinationStore interface {
	GetAllDestinations(ctx context.Context) ([]models.Destination, error)
	CountDestinations(ctx context.Context) (int64, error)
	InsertDestinations(ctx context.Context, destinations []models.Destination) error
}

// DestinationService encapsulates the read-only destination catalog.
type DestinationService struct {
	repo DestinationStore
}

// NewDestinationService creates a new instance of DestinationService.
func NewDestinationService(repo DestinationStore) *DestinationService {
	return &DestinationService{repo: repo}
}

// GetAllDestinations retrieves the full catalog.
func (s *DestinationService) GetAllDestinations(ctx context.Context) ([]models.Destination, error) {
	destinations, err := s.repo.GetAllDestinations(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch destinations in service layer")
		return nil, fmt.Errorf("failed to fetch destinations: %v", err)
	}
	return destinations, nil
}

// SeedDestinations inserts the built-in catalog if the collection is
// empty. Run once at startup; it is a no-op on every later start, so
// seeding stays idempotent as long as the first insert succeeded.
func (s *DestinationService) SeedDestinations(ctx context.Context) error {
	count, err := s.repo.CountDestinations(ctx)
	if err != nil {
		return fmt.Errorf("failed to count destinations: %v", err)
	}
	if count > 0 {
		logger.Log.WithField("count", count).Info("Destinations already seeded, skipping")
		return nil
	}

	if err := s.repo.InsertDestinations(ctx, models.DefaultDestinations); err != nil {
		return fmt.Errorf("failed to seed destinations: %v", err)
	}

	logger.Log.WithField("count", len(models.DefaultDestinations)).Info("Destinations seeded")
	return nil
}
