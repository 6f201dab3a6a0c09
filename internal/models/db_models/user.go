package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User rows are created lazily on first successful sign-in. The role stored
// here is authoritative for authorization, whatever the session token says.
type User struct {
	BaseModel
	Email string `gorm:"unique;not null" json:"email"`
	Role  string `gorm:"default:user" json:"role"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
