package model

// Course is static catalogue data, seeded at startup and never mutated
// (the cover image is the one admin-editable field).
type Course struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Slug        string     `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Image       string     `gorm:"size:255" json:"image"`
	Premium     bool       `gorm:"default:false" json:"premium"`
	Materials   []Material `gorm:"foreignKey:CourseID" json:"materials"`
}

func (Course) TableName() string {
	return "courses"
}

// Material belongs to exactly one course. IDs follow the m1..mN
// convention within a course, so the primary key is composite.
type Material struct {
	ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CourseID string `gorm:"primaryKey;type:varchar(36)" json:"-"`
	Position int    `gorm:"not null" json:"position"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content,omitempty"`
}

func (Material) TableName() string {
	return "materials"
}
