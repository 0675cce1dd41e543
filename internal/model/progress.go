package model

// MaterialProgress is the per-material completion flag. No foreign-key
// enforcement against materials: the caller owns that consistency.
type MaterialProgress struct {
	BaseModel
	UserID     uint   `gorm:"index:idx_progress_user_material,unique" json:"userId"`
	CourseID   string `gorm:"index:idx_progress_user_material,unique;type:varchar(36)" json:"courseId"`
	MaterialID string `gorm:"index:idx_progress_user_material,unique;type:varchar(36)" json:"materialId"`
	Completed  bool   `gorm:"default:false" json:"completed"`
}

func (MaterialProgress) TableName() string {
	return "material_progress"
}

// CourseProgressOverride is the legacy directly-stored percentage. The
// dashboard "+10%" action writes it; it can diverge from the
// material-derived percentage and that divergence is accepted.
type CourseProgressOverride struct {
	BaseModel
	UserID   uint   `gorm:"index:idx_override_user_course,unique" json:"userId"`
	CourseID string `gorm:"index:idx_override_user_course,unique;type:varchar(36)" json:"courseId"`
	Percent  int    `gorm:"default:0" json:"percent"`
}

func (CourseProgressOverride) TableName() string {
	return "course_progress_overrides"
}
