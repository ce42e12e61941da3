package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleImage holds the metadata of an uploaded image attached to a
// schedule entry. Path points at the file inside the upload directory.
type ScheduleImage struct {
	Filename     string `bson:"filename" json:"filename"`
	OriginalName string `bson:"original_name" json:"originalName"`
	MimeType     string `bson:"mime_type" json:"mimeType"`
	Path         string `bson:"path" json:"path"`
}

// Schedule is a user-created plan to visit a destination at a given
// date and time, with an optional photo.
type Schedule struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Destination string             `bson:"destination" json:"destination"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Image       *ScheduleImage     `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
