package repository

import (
	"learnhub_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

const leaderboardSize = 10

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindQuestions(courseID, materialID string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("course_id = ? AND material_id = ?", courseID, materialID).
		Order("position asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuizRepository) UpsertScore(userID uint, courseID, materialID string, score int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.QuizScore
		err := tx.Where("user_id = ? AND course_id = ? AND material_id = ?",
			userID, courseID, materialID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			existing = model.QuizScore{
				UserID:     userID,
				CourseID:   courseID,
				MaterialID: materialID,
				Score:      score,
			}
			return tx.Create(&existing).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&existing).Update("score", score).Error
	})
}

// GetScore reports (score, attempted). Absence of the row is the only
// thing distinguishing "never attempted" from "scored zero".
func (r *QuizRepository) GetScore(userID uint, courseID, materialID string) (int, bool, error) {
	var score model.QuizScore
	err := r.DB.Where("user_id = ? AND course_id = ? AND material_id = ?",
		userID, courseID, materialID).First(&score).Error
	if err == gorm.ErrRecordNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return score.Score, true, nil
}

// ReplaceLeaderboardEntry removes any prior entry with the same display
// name, inserts the new one, and trims the board back to the top 10
// (score descending, earlier submission winning ties).
func (r *QuizRepository) ReplaceLeaderboardEntry(courseID, materialID, displayName string, score int, submittedAt time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().
			Where("course_id = ? AND material_id = ? AND display_name = ?",
				courseID, materialID, displayName).
			Delete(&model.QuizLeaderboardEntry{}).Error
		if err != nil {
			return err
		}

		entry := model.QuizLeaderboardEntry{
			CourseID:    courseID,
			MaterialID:  materialID,
			DisplayName: displayName,
			Score:       score,
			SubmittedAt: submittedAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		var entries []model.QuizLeaderboardEntry
		err = tx.Where("course_id = ? AND material_id = ?", courseID, materialID).
			Order("score desc, submitted_at asc").
			Find(&entries).Error
		if err != nil {
			return err
		}

		if len(entries) > leaderboardSize {
			var overflow []uint
			for _, e := range entries[leaderboardSize:] {
				overflow = append(overflow, e.ID)
			}
			if err := tx.Unscoped().Delete(&model.QuizLeaderboardEntry{}, overflow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *QuizRepository) FindLeaderboard(courseID, materialID string) ([]model.QuizLeaderboardEntry, error) {
	var entries []model.QuizLeaderboardEntry
	err := r.DB.Where("course_id = ? AND material_id = ?", courseID, materialID).
		Order("score desc, submitted_at asc").
		Limit(leaderboardSize).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
