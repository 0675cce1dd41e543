package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

// Add is an idempotent set-insert.
func (r *BadgeRepository) Add(userID uint, name string) error {
	badge := model.Badge{UserID: userID, Name: name}
	return r.DB.Where("user_id = ? AND name = ?", userID, name).
		FirstOrCreate(&badge).Error
}

// FindByUserID preserves insertion order.
func (r *BadgeRepository) FindByUserID(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Where("user_id = ?", userID).Order("id asc").Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *BadgeRepository) Count(userID uint) (int, error) {
	var count int64
	err := r.DB.Model(&model.Badge{}).Where("user_id = ?", userID).Count(&count).Error
	return int(count), err
}

type AwardRepository struct {
	DB *gorm.DB
}

func NewAwardRepository(db *gorm.DB) *AwardRepository {
	return &AwardRepository{DB: db}
}

// TryGrant consumes the one-time marker for (user, course, material,
// kind). It reports true exactly once; later calls find the existing
// row and report false.
func (r *AwardRepository) TryGrant(userID uint, courseID, materialID string, kind model.AwardKind) (bool, error) {
	grant := model.AwardGrant{
		UserID:     userID,
		CourseID:   courseID,
		MaterialID: materialID,
		Kind:       kind,
	}
	result := r.DB.Where("user_id = ? AND course_id = ? AND material_id = ? AND kind = ?",
		userID, courseID, materialID, kind).
		FirstOrCreate(&grant)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type LeaderboardRepository struct {
	DB *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{DB: db}
}

// Upsert is keyed by user ID; the board grows without bound.
func (r *LeaderboardRepository) Upsert(userID uint, displayName string, points int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var entry model.LeaderboardEntry
		err := tx.Where("user_id = ?", userID).First(&entry).Error
		if err == gorm.ErrRecordNotFound {
			entry = model.LeaderboardEntry{
				UserID:      userID,
				DisplayName: displayName,
				Points:      points,
			}
			return tx.Create(&entry).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&entry).Updates(map[string]interface{}{
			"display_name": displayName,
			"points":       points,
		}).Error
	})
}

func (r *LeaderboardRepository) FindAll() ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.DB.Order("points desc, id asc").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
