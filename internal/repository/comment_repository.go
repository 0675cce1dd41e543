package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) FindByMaterial(courseID, materialID string) ([]model.MaterialComment, error) {
	var comments []model.MaterialComment
	err := r.DB.Where("course_id = ? AND material_id = ?", courseID, materialID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) FindByID(id string) (*model.MaterialComment, error) {
	var comment model.MaterialComment
	err := r.DB.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Create(comment *model.MaterialComment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) UpdateContent(id, content string) error {
	return r.DB.Model(&model.MaterialComment{}).Where("id = ?", id).
		Update("content", content).Error
}

// FindChildIDs returns the direct children of the given comments.
func (r *CommentRepository) FindChildIDs(parentIDs []string) ([]string, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.DB.Model(&model.MaterialComment{}).
		Where("parent_id IN ?", parentIDs).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *CommentRepository) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Where("id IN ?", ids).Delete(&model.MaterialComment{}).Error
}
