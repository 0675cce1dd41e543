package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Materials", func(db *gorm.DB) *gorm.DB {
		return db.Order("materials.position asc")
	}).Order("id asc").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Materials", func(db *gorm.DB) *gorm.DB {
		return db.Order("materials.position asc")
	}).Where("id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindBySlug(slug string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Materials", func(db *gorm.DB) *gorm.DB {
		return db.Order("materials.position asc")
	}).Where("slug = ?", slug).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) MaterialCount(courseID string) (int, error) {
	var count int64
	err := r.DB.Model(&model.Material{}).Where("course_id = ?", courseID).Count(&count).Error
	return int(count), err
}

func (r *CourseRepository) UpdateImage(courseID, imageURL string) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", courseID).Update("image", imageURL).Error
}
