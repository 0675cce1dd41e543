package model

import "time"

// QuizQuestion is static quiz content, seeded at startup.
type QuizQuestion struct {
	BaseModel
	CourseID   string      `gorm:"index:idx_quiz_course_material" json:"courseId"`
	MaterialID string      `gorm:"index:idx_quiz_course_material;type:varchar(36)" json:"materialId"`
	Position   int         `gorm:"not null" json:"position"`
	Text       string      `gorm:"type:text;not null" json:"question"`
	Options    StringSlice `gorm:"type:json" json:"options"`
	Answer     int         `gorm:"not null" json:"-"` // index of the correct option, never exposed
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizScore keeps only the most recent attempt per user and material.
type QuizScore struct {
	BaseModel
	UserID     uint   `gorm:"index:idx_score_user_material,unique" json:"userId"`
	CourseID   string `gorm:"index:idx_score_user_material,unique;type:varchar(36)" json:"courseId"`
	MaterialID string `gorm:"index:idx_score_user_material,unique;type:varchar(36)" json:"materialId"`
	Score      int    `gorm:"not null" json:"score"`
}

func (QuizScore) TableName() string {
	return "quiz_scores"
}

// QuizLeaderboardEntry is keyed by display name, not user ID: a
// resubmission replaces any prior entry carrying the same name.
type QuizLeaderboardEntry struct {
	BaseModel
	CourseID    string    `gorm:"index:idx_board_quiz;type:varchar(36)" json:"-"`
	MaterialID  string    `gorm:"index:idx_board_quiz;type:varchar(36)" json:"-"`
	DisplayName string    `gorm:"size:100;not null" json:"user"`
	Score       int       `gorm:"not null" json:"score"`
	SubmittedAt time.Time `gorm:"not null" json:"date"`
}

func (QuizLeaderboardEntry) TableName() string {
	return "quiz_leaderboard_entries"
}
