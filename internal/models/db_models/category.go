package db_models

// Category is a name-only grouping for attractions. The set is append-only:
// there is no update or delete path.
type Category struct {
	BaseModel
	Name string `gorm:"unique;not null" json:"name"`
}

func (Category) TableName() string { return "categories" }
