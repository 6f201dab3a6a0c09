// Package catalog ships the built-in NYC attraction list and loads it into
// the database at startup. Seeded rows are pre-approved; the live tables are
// authoritative from then on.
package catalog

import (
	_ "embed"
	"encoding/json"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gotham/internal/models/db_models"
)

//go:embed data/attractions.json
var seedData []byte

type seedAttraction struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	PriceRange      string   `json:"priceRange"`
	Duration        string   `json:"duration"`
	Location        string   `json:"location"`
	VenueSize       string   `json:"venueSize"`
	WalkingDistance string   `json:"walkingDistance"`
	Notes           string   `json:"notes"`
}

type seedFile struct {
	Categories  []string         `json:"categories"`
	Attractions []seedAttraction `json:"attractions"`
}

// Seed upserts the embedded catalog. Rows are matched by name, so reruns and
// later edits through the API are left alone.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var file seedFile
	if err := json.Unmarshal(seedData, &file); err != nil {
		return err
	}

	for _, name := range file.Categories {
		if err := db.Where("name = ?", name).
			FirstOrCreate(&db_models.Category{Name: name}).Error; err != nil {
			return err
		}
	}

	seeded := 0
	for _, a := range file.Attractions {
		attraction := db_models.Attraction{
			Name:            a.Name,
			Category:        a.Category,
			Tags:            pq.StringArray(a.Tags),
			PriceRange:      a.PriceRange,
			Duration:        a.Duration,
			Location:        a.Location,
			VenueSize:       a.VenueSize,
			WalkingDistance: a.WalkingDistance,
			Notes:           a.Notes,
			Status:          db_models.AttractionStatusApproved,
		}
		result := db.Where("name = ?", a.Name).FirstOrCreate(&attraction)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			seeded++
		}
	}

	log.Info("attraction catalog seeded",
		zap.Int("categories", len(file.Categories)),
		zap.Int("new_attractions", seeded))
	return nil
}
