package model

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'student'" json:"role"`
	Points   int      `gorm:"default:0" json:"points"`
	Level    int      `gorm:"default:1" json:"level"` // always floor(points/100)+1, written together with Points
	Avatar   string   `gorm:"size:255" json:"avatar"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName resolves the name shown on leaderboards and posts:
// full name, then email, then a fallback literal.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "User"
}
