package services

import (
	"context"
	"testing"
	"time"

	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// scheduleStoreStub is an in-memory stand-in for the Mongo-backed
// schedule repository.
type scheduleStoreStub struct {
	entries     map[primitive.ObjectID]models.Schedule
	createCalls int
	updateCalls int
}

func newScheduleStoreStub() *scheduleStoreStub {
	return &scheduleStoreStub{entries: make(map[primitive.ObjectID]models.Schedule)}
}

func (s *scheduleStoreStub) GetAllSchedules(ctx context.Context) ([]models.Schedule, error) {
	var all []models.Schedule
	for _, entry := range s.entries {
		all = append(all, entry)
	}
	return all, nil
}

func (s *scheduleStoreStub) GetScheduleByID(ctx context.Context, id primitive.ObjectID) (*models.Schedule, error) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &entry, nil
}

func (s *scheduleStoreStub) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	s.createCalls++
	schedule.ID = primitive.NewObjectID()
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()
	s.entries[schedule.ID] = *schedule
	return schedule, nil
}

func (s *scheduleStoreStub) UpdateSchedule(ctx context.Context, id primitive.ObjectID, schedule *models.Schedule) (*models.Schedule, error) {
	s.updateCalls++
	if _, ok := s.entries[id]; !ok {
		return nil, models.ErrNotFound
	}
	updated := *schedule
	updated.ID = id
	updated.UpdatedAt = time.Now()
	s.entries[id] = updated
	return &updated, nil
}

func (s *scheduleStoreStub) DeleteSchedule(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.entries[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

var _ ScheduleStore = (*scheduleStoreStub)(nil)

func validSchedule() *models.Schedule {
	return &models.Schedule{
		Destination: "Crater Lake",
		Date:        "2026-09-12",
		Time:        "09:30",
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.Schedule)
		wantErr string
	}{
		{"valid entry", func(s *models.Schedule) {}, ""},
		{"destination too short", func(s *models.Schedule) { s.Destination = "ab" }, "destination"},
		{"destination only spaces", func(s *models.Schedule) { s.Destination = "    " }, "destination"},
		{"missing date", func(s *models.Schedule) { s.Date = "" }, "date"},
		{"missing time", func(s *models.Schedule) { s.Time = "" }, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := validSchedule()
			tt.mutate(schedule)

			err := ValidateSchedule(schedule)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, models.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateScheduleRejectsInvalidEntryWithoutStoring(t *testing.T) {
	store := newScheduleStoreStub()
	service := NewScheduleService(store)

	schedule := validSchedule()
	schedule.Destination = "ab"

	_, err := service.CreateSchedule(context.Background(), schedule)
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Zero(t, store.createCalls)
}

func TestCreateScheduleStoresValidEntry(t *testing.T) {
	store := newScheduleStoreStub()
	service := NewScheduleService(store)

	created, err := service.CreateSchedule(context.Background(), validSchedule())
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Crater Lake", created.Destination)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdateScheduleRejectsMalformedID(t *testing.T) {
	store := newScheduleStoreStub()
	service := NewScheduleService(store)

	_, _, err := service.UpdateSchedule(context.Background(), "not-an-id", validSchedule())
	require.ErrorIs(t, err, models.ErrInvalidID)
	assert.Zero(t, store.updateCalls)
}

func TestUpdateScheduleUnknownID(t *testing.T) {
	store := newScheduleStoreStub()
	service := NewScheduleService(store)

	_, _, err := service.UpdateSchedule(context.Background(), primitive.NewObjectID().Hex(), &models.Schedule{Date: "2026-10-01"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateScheduleValidatesBeforeLookup(t *testing.T) {
	store := newScheduleStoreStub()
	service := NewScheduleService(store)

	// Short destination against an id that does not exist: validation wins.
	_, _, err := service.UpdateSchedule(context.Background(), primitive.NewObjectID().Hex(), &models.Schedule{Destination: "ab"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateScheduleKeepsUnsetFields(t *testing.T) {
	store := newScheduleStoreStub()
	service := NewScheduleService(store)

	created, err := service.CreateSchedule(context.Background(), validSchedule())
	require.NoError(t, err)

	updated, replaced, err := service.UpdateSchedule(context.Background(), created.ID.Hex(), &models.Schedule{Date: "2026-10-01"})
	require.NoError(t, err)

	assert.Nil(t, replaced)
	assert.Equal(t, "2026-10-01", updated.Date)
	assert.Equal(t, created.Destination, updated.Destination)
	assert.Equal(t, created.Time, updated.Time)
}

func TestUpdateScheduleReportsReplacedImage(t *testing.T) {
	store := newScheduleStoreStub()
	service := NewScheduleService(store)

	oldImage := &models.ScheduleImage{Filename: "old.png", Path: "uploads/old.png"}
	schedule := validSchedule()
	schedule.Image = oldImage
	created, err := service.CreateSchedule(context.Background(), schedule)
	require.NoError(t, err)

	newImage := &models.ScheduleImage{Filename: "new.png", Path: "uploads/new.png"}
	updated, replaced, err := service.UpdateSchedule(context.Background(), created.ID.Hex(), &models.Schedule{Image: newImage})
	require.NoError(t, err)

	require.NotNil(t, replaced)
	assert.Equal(t, "uploads/old.png", replaced.Path)
	assert.Equal(t, "new.png", updated.Image.Filename)
}

func TestDeleteScheduleReturnsAttachedImage(t *testing.T) {
	store := newScheduleStoreStub()
	service := NewScheduleService(store)

	schedule := validSchedule()
	schedule.Image = &models.ScheduleImage{Filename: "trip.jpg", Path: "uploads/trip.jpg"}
	created, err := service.CreateSchedule(context.Background(), schedule)
	require.NoError(t, err)

	image, err := service.DeleteSchedule(context.Background(), created.ID.Hex())
	require.NoError(t, err)

	require.NotNil(t, image)
	assert.Equal(t, "uploads/trip.jpg", image.Path)
	assert.Empty(t, store.entries)
}

func TestDeleteScheduleMalformedID(t *testing.T) {
	service := NewScheduleService(newScheduleStoreStub())

	_, err := service.DeleteSchedule(context.Background(), "12345")
	assert.ErrorIs(t, err, models.ErrInvalidID)
}
