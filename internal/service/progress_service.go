package service

import (
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	CourseRepo     *repository.CourseRepository
	Gamification   *GamificationService
}

func NewProgressService(
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	courseRepo *repository.CourseRepository,
	gamification *GamificationService,
) *ProgressService {
	return &ProgressService{
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		CourseRepo:     courseRepo,
		Gamification:   gamification,
	}
}

type EnrolledCourse struct {
	Course   model.Course `json:"course"`
	Progress int          `json:"progress"`
}

// Enroll is idempotent.
func (s *ProgressService) Enroll(userID uint, courseID string) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrCourseNotFound
		}
		return err
	}
	return s.EnrollmentRepo.Create(userID, courseID)
}

func (s *ProgressService) IsEnrolled(userID uint, courseID string) (bool, error) {
	return s.EnrollmentRepo.Exists(userID, courseID)
}

func (s *ProgressService) EnrolledCourses(userID uint) ([]EnrolledCourse, error) {
	ids, err := s.EnrollmentRepo.FindCourseIDsByUser(userID)
	if err != nil {
		return nil, err
	}

	courses := make([]EnrolledCourse, 0, len(ids))
	for _, id := range ids {
		course, err := s.CourseRepo.FindByID(id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}
		percent, err := s.GetCourseProgress(userID, id, len(course.Materials))
		if err != nil {
			return nil, err
		}
		courses = append(courses, EnrolledCourse{Course: *course, Progress: percent})
	}
	return courses, nil
}

// SetMaterialProgress overwrites the stored flag and nothing else. No
// validation that the material belongs to the course; that is the
// caller's responsibility.
func (s *ProgressService) SetMaterialProgress(userID uint, courseID, materialID string, completed bool) error {
	return s.ProgressRepo.UpsertMaterial(userID, courseID, materialID, completed)
}

// MarkMaterial is the user-facing flavor of SetMaterialProgress: it
// additionally runs the point/badge award policy when a material is
// being marked complete.
func (s *ProgressService) MarkMaterial(userID uint, displayName, courseID, materialID string, completed bool) error {
	if err := s.SetMaterialProgress(userID, courseID, materialID, completed); err != nil {
		return err
	}
	if completed {
		return s.Gamification.HandleMaterialCompleted(userID, displayName, courseID, materialID)
	}
	return nil
}

func (s *ProgressService) GetMaterialProgress(userID uint, courseID, materialID string) (bool, error) {
	return s.ProgressRepo.GetMaterial(userID, courseID, materialID)
}

// GetCourseProgress derives the completion percentage from the
// per-material flags, iterating the conventional m1..mN IDs. With an
// unknown material count it falls back to the legacy stored percentage.
func (s *ProgressService) GetCourseProgress(userID uint, courseID string, materialCount int) (int, error) {
	if materialCount > 0 {
		materialIDs := make([]string, materialCount)
		for i := 0; i < materialCount; i++ {
			materialIDs[i] = fmt.Sprintf("m%d", i+1)
		}
		completed, err := s.ProgressRepo.CountCompleted(userID, courseID, materialIDs)
		if err != nil {
			return 0, err
		}
		return util.PercentOf(completed, materialCount), nil
	}
	return s.ProgressRepo.GetOverride(userID, courseID)
}

// SetCourseProgress writes the legacy percentage directly, bypassing
// the material flags. The dashboard "+10%" action uses it, and the
// stored value may diverge from the derived one; that divergence is an
// accepted part of the model, not something to reconcile here.
func (s *ProgressService) SetCourseProgress(userID uint, courseID string, percent int) error {
	return s.ProgressRepo.UpsertOverride(userID, courseID, percent)
}
