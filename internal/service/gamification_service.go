package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"

	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	materialPoints = 20
	quizPoints     = 30
	pointsPerLevel = 100
)

type GamificationService struct {
	UserRepo        *repository.UserRepository
	BadgeRepo       *repository.BadgeRepository
	AwardRepo       *repository.AwardRepository
	LeaderboardRepo *repository.LeaderboardRepository
	ProgressRepo    *repository.ProgressRepository
	CourseRepo      *repository.CourseRepository
}

func NewGamificationService(
	userRepo *repository.UserRepository,
	badgeRepo *repository.BadgeRepository,
	awardRepo *repository.AwardRepository,
	leaderboardRepo *repository.LeaderboardRepository,
	progressRepo *repository.ProgressRepository,
	courseRepo *repository.CourseRepository,
) *GamificationService {
	return &GamificationService{
		UserRepo:        userRepo,
		BadgeRepo:       badgeRepo,
		AwardRepo:       awardRepo,
		LeaderboardRepo: leaderboardRepo,
		ProgressRepo:    progressRepo,
		CourseRepo:      courseRepo,
	}
}

type LevelProgress struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

type UserAchievements struct {
	Points        int           `json:"points"`
	Level         int           `json:"level"`
	LevelProgress LevelProgress `json:"levelProgress"`
	Badges        []string      `json:"badges"`
}

type GlobalLeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// AddPoints increments the user's total and rewrites the derived level
// in the same write. Negative deltas are accepted, no caller uses them.
func (s *GamificationService) AddPoints(userID uint, delta int) (int, error) {
	return s.UserRepo.AddPoints(userID, delta)
}

func (s *GamificationService) GetPoints(userID uint) (int, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return 0, err
	}
	return user.Points, nil
}

func (s *GamificationService) GetLevel(userID uint) (int, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return 0, err
	}
	// the column defaults to 1; values below that come from negative
	// point totals and are reported as stored
	return user.Level, nil
}

func (s *GamificationService) GetLevelProgress(userID uint) (*LevelProgress, error) {
	points, err := s.GetPoints(userID)
	if err != nil {
		return nil, err
	}
	return &LevelProgress{Current: points % pointsPerLevel, Max: pointsPerLevel}, nil
}

func (s *GamificationService) AddBadge(userID uint, name string) error {
	return s.BadgeRepo.Add(userID, name)
}

func (s *GamificationService) GetBadges(userID uint) ([]string, error) {
	badges, err := s.BadgeRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = b.Name
	}
	return names, nil
}

func (s *GamificationService) GetUserAchievements(userID uint) (*UserAchievements, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	badges, err := s.GetBadges(userID)
	if err != nil {
		return nil, err
	}
	level := user.Level
	if level < 1 {
		level = 1
	}
	return &UserAchievements{
		Points: user.Points,
		Level:  level,
		LevelProgress: LevelProgress{
			Current: user.Points % pointsPerLevel,
			Max:     pointsPerLevel,
		},
		Badges: badges,
	}, nil
}

func (s *GamificationService) UpdateGlobalLeaderboard(userID uint, displayName string, points int) error {
	return s.LeaderboardRepo.Upsert(userID, displayName, points)
}

func (s *GamificationService) GetGlobalLeaderboard() ([]GlobalLeaderboardEntry, error) {
	entries, err := s.LeaderboardRepo.FindAll()
	if err != nil {
		return nil, err
	}
	board := make([]GlobalLeaderboardEntry, len(entries))
	for i, e := range entries {
		board[i] = GlobalLeaderboardEntry{
			Rank:   i + 1,
			UserID: e.UserID,
			Name:   e.DisplayName,
			Points: e.Points,
		}
	}
	return board, nil
}

// HandleMaterialCompleted runs the award policy for a user marking a
// material complete: 20 points once per (user, course, material), plus
// the first-course and course-complete badges. Everything hangs off the
// one-time marker, so toggling the material off and on again later
// grants nothing more.
func (s *GamificationService) HandleMaterialCompleted(userID uint, displayName, courseID, materialID string) error {
	granted, err := s.AwardRepo.TryGrant(userID, courseID, materialID, model.AwardMaterial)
	if err != nil {
		return err
	}
	if !granted {
		return nil
	}

	total, err := s.AddPoints(userID, materialPoints)
	if err != nil {
		return err
	}
	if err := s.UpdateGlobalLeaderboard(userID, displayName, total); err != nil {
		return err
	}

	badgeCount, err := s.BadgeRepo.Count(userID)
	if err != nil {
		return err
	}
	if badgeCount == 0 {
		if err := s.AddBadge(userID, model.BadgeFirstCourse); err != nil {
			return err
		}
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		// no ownership validation on material IDs; an unknown course
		// simply means no course-complete badge to evaluate
		logger.Log.Warn("award check for unknown course", zap.String("courseId", courseID))
		return nil
	}

	materialIDs := make([]string, len(course.Materials))
	for i, m := range course.Materials {
		materialIDs[i] = m.ID
	}
	completed, err := s.ProgressRepo.CountCompleted(userID, courseID, materialIDs)
	if err != nil {
		return err
	}
	if completed == len(materialIDs) && len(materialIDs) > 0 {
		return s.AddBadge(userID, model.BadgeCourseComplete)
	}
	return nil
}

// HandleQuizScored runs the award policy for a scored quiz attempt: 30
// points once per (user, course, material) when the score is positive,
// and the perfect-quiz badge when that first scored attempt is perfect.
func (s *GamificationService) HandleQuizScored(userID uint, displayName, courseID, materialID string, score, total int) error {
	if score <= 0 {
		return nil
	}

	granted, err := s.AwardRepo.TryGrant(userID, courseID, materialID, model.AwardQuiz)
	if err != nil {
		return err
	}
	if !granted {
		return nil
	}

	points, err := s.AddPoints(userID, quizPoints)
	if err != nil {
		return err
	}
	if err := s.UpdateGlobalLeaderboard(userID, displayName, points); err != nil {
		return err
	}

	if score == total {
		return s.AddBadge(userID, model.BadgePerfectQuiz)
	}
	return nil
}
