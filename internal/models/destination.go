package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Destination is a travel destination from the catalog. Records are
// read-only after seeding; the ID is assigned by MongoDB on insert.
type Destination struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Activities  string             `bson:"activities" json:"activities"`
	BestTime    string             `bson:"best_time" json:"bestTime"`
	MainImage   string             `bson:"main_image" json:"main_image"`
}

// DefaultDestinations is the built-in catalog used to seed the
// destinations collection the first time the server starts against an
// empty database. IDs are left zero so storage assigns its own.
var DefaultDestinations = []Destination{
	{
		Name:        "Space Needle",
		Location:    "Seattle, WA",
		Description: "An iconic landmark offering breathtaking views of Seattle and the surrounding landscapes.",
		Activities:  "Observation deck, Sky Café, VR experience",
		BestTime:    "May to September",
		MainImage:   "space-needle.jpeg",
	},
	{
		Name:        "Olympic National Park",
		Location:    "Washington",
		Description: "A national park featuring diverse ecosystems from rainforests to rugged coastlines.",
		Activities:  "Hiking, Wildlife watching, Camping",
		BestTime:    "June to October",
		MainImage:   "olympic.png",
	},
	{
		Name:        "Leavenworth",
		Location:    "Washington",
		Description: "A Bavarian-themed village with year-round outdoor activities and cultural events.",
		Activities:  "Wine tasting, Festivals, Hiking trails",
		BestTime:    "December for holiday lights or September for fall activities",
		MainImage:   "leavenworth.jpeg",
	},
	{
		Name:        "Whistler",
		Location:    "British Columbia, Canada",
		Description: "A popular ski resort offering activities all year round, from snow sports to mountain biking.",
		Activities:  "Skiing, Mountain biking, Zip-lining",
		BestTime:    "December to February for skiing, June to August for biking",
		MainImage:   "whistler.jpeg",
	},
	{
		Name:        "Crater Lake",
		Location:    "Oregon",
		Description: "The deepest lake in the U.S. with striking blue waters formed by a collapsed volcano.",
		Activities:  "Boat tours, Scenic drive, Photography",
		BestTime:    "July to September",
		MainImage:   "crater-lake.jpeg",
	},
	{
		Name:        "The Gorge Amphitheatre",
		Location:    "Washington",
		Description: "A stunning concert venue known for its natural acoustics and beautiful views of the Columbia River.",
		Activities:  "Concerts, Camping, Hiking",
		BestTime:    "May to September",
		MainImage:   "the-gorge.jpeg",
	},
	{
		Name:        "Mount Rainier National Park",
		Location:    "Washington",
		Description: "An iconic volcanic peak with beautiful wildflower meadows and hiking trails.",
		Activities:  "Climbing, Wildflower viewing, Snowshoeing",
		BestTime:    "July to August",
		MainImage:   "mount-rainier.jpeg",
	},
	{
		Name:        "Portland Japanese Garden",
		Location:    "Portland, OR",
		Description: "A beautiful traditional Japanese garden offering tranquil paths and scenic views.",
		Activities:  "Garden tour, Tea ceremony, Photography",
		BestTime:    "March to May or September to November",
		MainImage:   "portland-garden.png",
	},
}
