package model

type AwardKind string

const (
	AwardMaterial AwardKind = "material"
	AwardQuiz     AwardKind = "quiz"
)

// AwardGrant is the one-time marker behind every point grant: at most
// one row per (user, course, material, kind), independent of the score
// and progress values themselves.
type AwardGrant struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_award_once,unique" json:"userId"`
	CourseID   string    `gorm:"index:idx_award_once,unique;type:varchar(36)" json:"courseId"`
	MaterialID string    `gorm:"index:idx_award_once,unique;type:varchar(36)" json:"materialId"`
	Kind       AwardKind `gorm:"index:idx_award_once,unique;size:20" json:"kind"`
}

func (AwardGrant) TableName() string {
	return "award_grants"
}
