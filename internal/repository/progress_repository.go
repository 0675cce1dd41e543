package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) UpsertMaterial(userID uint, courseID, materialID string, completed bool) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var progress model.MaterialProgress
		err := tx.Where("user_id = ? AND course_id = ? AND material_id = ?",
			userID, courseID, materialID).First(&progress).Error
		if err == gorm.ErrRecordNotFound {
			progress = model.MaterialProgress{
				UserID:     userID,
				CourseID:   courseID,
				MaterialID: materialID,
				Completed:  completed,
			}
			return tx.Create(&progress).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&progress).Update("completed", completed).Error
	})
}

// GetMaterial defaults to false when no row exists.
func (r *ProgressRepository) GetMaterial(userID uint, courseID, materialID string) (bool, error) {
	var progress model.MaterialProgress
	err := r.DB.Where("user_id = ? AND course_id = ? AND material_id = ?",
		userID, courseID, materialID).First(&progress).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return progress.Completed, nil
}

// CountCompleted counts completion flags among the given material IDs
// only, so stray flags for unknown materials never inflate the count.
func (r *ProgressRepository) CountCompleted(userID uint, courseID string, materialIDs []string) (int, error) {
	if len(materialIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.MaterialProgress{}).
		Where("user_id = ? AND course_id = ? AND material_id IN ? AND completed = ?",
			userID, courseID, materialIDs, true).
		Count(&count).Error
	return int(count), err
}

func (r *ProgressRepository) UpsertOverride(userID uint, courseID string, percent int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var override model.CourseProgressOverride
		err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&override).Error
		if err == gorm.ErrRecordNotFound {
			override = model.CourseProgressOverride{
				UserID:   userID,
				CourseID: courseID,
				Percent:  percent,
			}
			return tx.Create(&override).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&override).Update("percent", percent).Error
	})
}

func (r *ProgressRepository) GetOverride(userID uint, courseID string) (int, error) {
	var override model.CourseProgressOverride
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&override).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return override.Percent, nil
}
