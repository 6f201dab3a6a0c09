package db_models

import "github.com/google/uuid"

// TripSchedule is one saved trip. Deleting a trip flips IsActive rather than
// removing the row; full account erasure is the only hard-delete path.
type TripSchedule struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	StartDate string    `gorm:"type:date" json:"start_date"`
	EndDate   string    `gorm:"type:date" json:"end_date"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`

	ScheduledAttractions []ScheduledAttraction `gorm:"foreignKey:ScheduleID" json:"-"`
}

func (TripSchedule) TableName() string { return "trip_schedules" }

// ScheduledAttraction is a denormalized snapshot of one planned item: only the
// attraction id and name are kept, full detail is re-joined from the catalog
// on load.
type ScheduledAttraction struct {
	BaseModel
	ScheduleID     uuid.UUID `gorm:"type:uuid;index" json:"schedule_id"`
	AttractionID   string    `gorm:"not null" json:"attraction_id"`
	AttractionName string    `json:"attraction_name"`
	DayDate        string    `gorm:"type:date;index" json:"day_date"`
}

func (ScheduledAttraction) TableName() string { return "scheduled_attractions" }
