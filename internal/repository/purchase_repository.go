package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

func (r *PurchaseRepository) Create(userID uint, courseID, email string) error {
	purchase := model.CoursePurchase{UserID: userID, CourseID: courseID, Email: email}
	return r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		FirstOrCreate(&purchase).Error
}

func (r *PurchaseRepository) Exists(userID uint, courseID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CoursePurchase{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *PurchaseRepository) FindCourseIDsByUser(userID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.CoursePurchase{}).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Pluck("course_id", &ids).Error
	return ids, err
}
