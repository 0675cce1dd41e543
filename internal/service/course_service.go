package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Checkout   *CheckoutService
	Storage    *StorageService
}

func NewCourseService(courseRepo *repository.CourseRepository, checkout *CheckoutService, storage *StorageService) *CourseService {
	return &CourseService{CourseRepo: courseRepo, Checkout: checkout, Storage: storage}
}

// CourseView is a course plus the caller's access to it. Locked means
// the course is premium and this user has not paid.
type CourseView struct {
	model.Course
	Locked bool `json:"locked"`
}

func (s *CourseService) ListCourses(userID uint) ([]CourseView, error) {
	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]CourseView, len(courses))
	for i, course := range courses {
		locked, err := s.isLocked(userID, &course)
		if err != nil {
			return nil, err
		}
		views[i] = CourseView{Course: course, Locked: locked}
	}
	return views, nil
}

func (s *CourseService) GetBySlug(userID uint, slug string) (*CourseView, error) {
	course, err := s.CourseRepo.FindBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	locked, err := s.isLocked(userID, course)
	if err != nil {
		return nil, err
	}
	view := &CourseView{Course: *course, Locked: locked}
	if locked {
		// hide lesson bodies behind the paywall, keep the outline
		for i := range view.Materials {
			view.Materials[i].Content = ""
		}
	}
	return view, nil
}

// Get resolves a course by ID first, then by slug, so routes can accept
// either form of identifier.
func (s *CourseService) Get(userID uint, idOrSlug string) (*CourseView, error) {
	course, err := s.CourseRepo.FindByID(idOrSlug)
	if err == gorm.ErrRecordNotFound {
		return s.GetBySlug(userID, idOrSlug)
	}
	if err != nil {
		return nil, err
	}
	locked, err := s.isLocked(userID, course)
	if err != nil {
		return nil, err
	}
	view := &CourseView{Course: *course, Locked: locked}
	if locked {
		for i := range view.Materials {
			view.Materials[i].Content = ""
		}
	}
	return view, nil
}

func (s *CourseService) GetByID(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// UploadImage stores a new cover image and points the course at it.
func (s *CourseService) UploadImage(ctx context.Context, courseID string, reader io.Reader, size int64, originalName, contentType string) (string, error) {
	course, err := s.GetByID(courseID)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("courses/%s/cover-%d%s", course.ID, time.Now().Unix(), filepath.Ext(originalName))
	url, err := s.Storage.Upload(ctx, filename, reader, size, contentType)
	if err != nil {
		return "", err
	}
	if err := s.CourseRepo.UpdateImage(course.ID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *CourseService) isLocked(userID uint, course *model.Course) (bool, error) {
	if !course.Premium {
		return false, nil
	}
	if userID == 0 {
		return true, nil
	}
	purchased, err := s.Checkout.HasPurchased(userID, course.ID)
	if err != nil {
		return false, err
	}
	return !purchased, nil
}
