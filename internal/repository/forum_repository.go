package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ForumRepository struct {
	DB *gorm.DB
}

func NewForumRepository(db *gorm.DB) *ForumRepository {
	return &ForumRepository{DB: db}
}

// FindThreads lists pinned threads first, newest first within each group.
func (r *ForumRepository) FindThreads() ([]model.ForumThread, error) {
	var threads []model.ForumThread
	err := r.DB.Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("forum_replies.created_at asc")
		}).
		Preload("Replies.Author").
		Order("pinned desc, created_at desc").
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *ForumRepository) FindThreadByID(id string) (*model.ForumThread, error) {
	var thread model.ForumThread
	err := r.DB.Preload("Author").Where("id = ?", id).First(&thread).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *ForumRepository) CreateThread(thread *model.ForumThread) error {
	return r.DB.Create(thread).Error
}

func (r *ForumRepository) UpdateThread(thread *model.ForumThread) error {
	return r.DB.Save(thread).Error
}

func (r *ForumRepository) DeleteThread(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thread_id = ?", id).Delete(&model.ForumReply{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.ForumThread{}).Error
	})
}

func (r *ForumRepository) FindReplyByID(id string) (*model.ForumReply, error) {
	var reply model.ForumReply
	err := r.DB.Where("id = ?", id).First(&reply).Error
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *ForumRepository) CreateReply(reply *model.ForumReply) error {
	return r.DB.Create(reply).Error
}

func (r *ForumRepository) UpdateReply(reply *model.ForumReply) error {
	return r.DB.Save(reply).Error
}

func (r *ForumRepository) DeleteReply(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.ForumReply{}).Error
}
