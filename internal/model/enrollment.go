package model

// Enrollment records course membership. Created on enroll, never removed.
type Enrollment struct {
	BaseModel
	UserID   uint   `gorm:"index:idx_enroll_user_course,unique" json:"userId"`
	CourseID string `gorm:"index:idx_enroll_user_course,unique;type:varchar(36)" json:"courseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
