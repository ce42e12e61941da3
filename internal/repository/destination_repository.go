package repository

import (
	"context"

	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/Madiyar4565/Travel_Scheduler/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DestinationRepository struct handles database operations related to destinations
type DestinationRepository struct {
	collection *mongo.Collection
}

// NewDestinationRepository creates a new instance of DestinationRepository
func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	return &DestinationRepository{
		collection: db.Collection("destinations"),
	}
}

// GetAllDestinations fetches the whole destination catalog
func (r *DestinationRepository) GetAllDestinations(ctx context.Context) ([]models.Destination, error) {
	var destinations []models.Destination

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch destinations")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var destination models.Destination
		if err := cursor.Decode(&destination); err != nil {
			logger.Log.WithError(err).Error("Failed to decode destination")
			return nil, err
		}
		destinations = append(destinations, destination)
	}

	logger.Log.WithField("count", len(destinations)).Info("Destinations fetched successfully")
	return destinations, nil
}

// CountDestinations returns how many destinations are currently stored
func (r *DestinationRepository) CountDestinations(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to count destinations")
		return 0, err
	}
	return count, nil
}

// InsertDestinations inserts the given destinations in one batch
func (r *DestinationRepository) InsertDestinations(ctx context.Context, destinations []models.Destination) error {
	docs := make([]interface{}, 0, len(destinations))
	for _, destination := range destinations {
		docs = append(docs, destination)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		logger.Log.WithError(err).Error("Failed to insert destinations")
		return err
	}

	logger.Log.WithField("count", len(destinations)).Info("Destinations inserted successfully")
	return nil
}
