package service

import (
	"fmt"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db           *gorm.DB
	users        *repository.UserRepository
	courses      *repository.CourseRepository
	quizzes      *repository.QuizRepository
	progress     *ProgressService
	gamification *GamificationService
	quiz         *QuizService
	forum        *ForumService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	awardRepo := repository.NewAwardRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	forumRepo := repository.NewForumRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	gamification := NewGamificationService(userRepo, badgeRepo, awardRepo, leaderboardRepo, progressRepo, courseRepo)
	progress := NewProgressService(enrollmentRepo, progressRepo, courseRepo, gamification)
	quiz := NewQuizService(quizRepo, progress, gamification, nil)
	forum := NewForumService(forumRepo, commentRepo)

	return &testEnv{
		db:           db,
		users:        userRepo,
		courses:      courseRepo,
		quizzes:      quizRepo,
		progress:     progress,
		gamification: gamification,
		quiz:         quiz,
		forum:        forum,
	}
}

func (e *testEnv) createUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, Password: "x", Role: model.Student, Level: 1}
	require.NoError(t, e.users.Create(user))
	return user
}

func (e *testEnv) createCourse(t *testing.T, id, slug string, premium bool, materialCount int) *model.Course {
	t.Helper()
	course := &model.Course{
		ID:      id,
		Slug:    slug,
		Title:   "Course " + id,
		Premium: premium,
	}
	for i := 1; i <= materialCount; i++ {
		course.Materials = append(course.Materials, model.Material{
			ID:       fmt.Sprintf("m%d", i),
			CourseID: id,
			Position: i,
			Title:    fmt.Sprintf("Lesson %d", i),
			Content:  "content",
		})
	}
	require.NoError(t, e.db.Create(course).Error)
	return course
}

func (e *testEnv) seedQuiz(t *testing.T, courseID, materialID string, answers ...int) {
	t.Helper()
	for i, answer := range answers {
		q := &model.QuizQuestion{
			CourseID:   courseID,
			MaterialID: materialID,
			Position:   i,
			Text:       fmt.Sprintf("Question %d", i+1),
			Options:    model.StringSlice{"A", "B", "C", "D"},
			Answer:     answer,
		}
		require.NoError(t, e.db.Create(q).Error)
	}
}
