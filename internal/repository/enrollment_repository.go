package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Create is idempotent: enrolling twice leaves a single row.
func (r *EnrollmentRepository) Create(userID uint, courseID string) error {
	enrollment := model.Enrollment{UserID: userID, CourseID: courseID}
	return r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		FirstOrCreate(&enrollment).Error
}

func (r *EnrollmentRepository) Exists(userID uint, courseID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) FindCourseIDsByUser(userID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Pluck("course_id", &ids).Error
	return ids, err
}
