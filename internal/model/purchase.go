package model

// CoursePurchase is recorded only after the payment provider redirects
// back with success; nothing is committed before that.
type CoursePurchase struct {
	BaseModel
	UserID   uint   `gorm:"index:idx_purchase_user_course,unique" json:"userId"`
	CourseID string `gorm:"index:idx_purchase_user_course,unique;type:varchar(36)" json:"courseId"`
	Email    string `gorm:"size:100" json:"email"`
}

func (CoursePurchase) TableName() string {
	return "course_purchases"
}
