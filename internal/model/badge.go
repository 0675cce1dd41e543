package model

const (
	BadgeFirstCourse    = "First Course!"
	BadgeCourseComplete = "Course Complete!"
	BadgePerfectQuiz    = "Perfect Quiz!"
)

// Badge is an idempotent named achievement flag.
type Badge struct {
	BaseModel
	UserID uint   `gorm:"index:idx_badge_user_name,unique" json:"userId"`
	Name   string `gorm:"index:idx_badge_user_name,unique;size:100" json:"name"`
}

func (Badge) TableName() string {
	return "badges"
}
