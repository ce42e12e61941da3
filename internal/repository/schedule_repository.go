package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/Madiyar4565/Travel_Scheduler/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScheduleRepository struct handles database operations related to schedules
type ScheduleRepository struct {
	collection *mongo.Collection
}

// NewScheduleRepository creates a new instance of ScheduleRepository
func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{
		collection: db.Collection("schedules"),
	}
}

// GetAllSchedules fetches all schedule entries from the database
func (r *ScheduleRepository) GetAllSchedules(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch schedules")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var schedule models.Schedule
		if err := cursor.Decode(&schedule); err != nil {
			logger.Log.WithError(err).Error("Failed to decode schedule")
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	logger.Log.WithField("count", len(schedules)).Info("Schedules fetched successfully")
	return schedules, nil
}

// GetScheduleByID fetches a schedule entry by its ID
func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id primitive.ObjectID) (*models.Schedule, error) {
	var schedule models.Schedule

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		logger.Log.WithError(err).WithField("schedule_id", id.Hex()).Error("Failed to find schedule by ID")
		return nil, err
	}

	return &schedule, nil
}

// CreateSchedule creates a new schedule entry in the database
func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, schedule)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert schedule")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted schedule ID")
		return nil, errors.New("unexpected inserted ID type")
	}
	schedule.ID = insertedID

	logger.Log.WithField("schedule_id", schedule.ID.Hex()).Info("Schedule created successfully")
	return schedule, nil
}

// UpdateSchedule replaces the updatable fields of an existing entry and
// returns the post-update record. The single-document update is atomic:
// the entry is either fully replaced or left untouched.
func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, id primitive.ObjectID, schedule *models.Schedule) (*models.Schedule, error) {
	update := bson.M{"$set": bson.M{
		"destination": schedule.Destination,
		"date":        schedule.Date,
		"time":        schedule.Time,
		"image":       schedule.Image,
		"updated_at":  time.Now(),
	}}

	var updated models.Schedule
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		logger.Log.WithError(err).WithField("schedule_id", id.Hex()).Error("Failed to update schedule")
		return nil, err
	}

	logger.Log.WithField("schedule_id", id.Hex()).Info("Schedule updated successfully")
	return &updated, nil
}

// DeleteSchedule deletes a schedule entry from the database by its ID
func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("schedule_id", id.Hex()).Error("Failed to delete schedule")
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}

	logger.Log.WithField("schedule_id", id.Hex()).Info("Schedule deleted successfully")
	return nil
}
