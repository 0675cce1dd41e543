package service

import (
	"context"
	"encoding/json"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"time"

	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardCacheTTL = 5 * time.Minute

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	Progress     *ProgressService
	Gamification *GamificationService
	Redis        *redis.Client
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	progress *ProgressService,
	gamification *GamificationService,
	rdb *redis.Client,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		Progress:     progress,
		Gamification: gamification,
		Redis:        rdb,
	}
}

type QuizQuestionView struct {
	Position int      `json:"position"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizSubmission struct {
	// answers keyed by the position each question reports; an absent
	// position is an unanswered question and never matches
	Answers map[int]int `json:"answers" binding:"required"`
}

type QuizResult struct {
	Score    int    `json:"score"`
	Total    int    `json:"total"`
	Perfect  bool   `json:"perfect"`
	Feedback []bool `json:"feedback"`
}

type QuizStats struct {
	Attempts int     `json:"attempts"`
	AvgScore float64 `json:"avgScore"`
	Perfect  int     `json:"perfect"`
}

// GetQuiz returns the question set without correct-answer indices. An
// empty slice means no quiz is defined and callers hide the section.
func (s *QuizService) GetQuiz(courseID, materialID string) ([]QuizQuestionView, error) {
	questions, err := s.QuizRepo.FindQuestions(courseID, materialID)
	if err != nil {
		return nil, err
	}
	views := make([]QuizQuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuizQuestionView{
			Position: q.Position,
			Question: q.Text,
			Options:  q.Options,
		}
	}
	return views, nil
}

// SubmitQuiz scores the submission, stores the result (last attempt
// wins), refreshes the per-quiz leaderboard, and hands the outcome to
// the award policy. A perfect score also auto-marks the material
// complete.
func (s *QuizService) SubmitQuiz(userID uint, displayName, courseID, materialID string, answers map[int]int) (*QuizResult, error) {
	questions, err := s.QuizRepo.FindQuestions(courseID, materialID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrQuizNotFound
	}

	// answers are keyed by the same Position values GetQuiz returns
	score := 0
	feedback := make([]bool, len(questions))
	for i, q := range questions {
		if answer, ok := answers[q.Position]; ok && answer == q.Answer {
			feedback[i] = true
			score++
		}
	}

	if err := s.QuizRepo.UpsertScore(userID, courseID, materialID, score); err != nil {
		return nil, err
	}

	if err := s.QuizRepo.ReplaceLeaderboardEntry(courseID, materialID, displayName, score, time.Now()); err != nil {
		return nil, err
	}
	s.invalidateLeaderboardCache(courseID, materialID)

	perfect := score == len(questions)
	if perfect {
		// auto-completion only flips the flag; material points are
		// granted when the user marks the material, not here
		if err := s.Progress.SetMaterialProgress(userID, courseID, materialID, true); err != nil {
			return nil, err
		}
	}

	if err := s.Gamification.HandleQuizScored(userID, displayName, courseID, materialID, score, len(questions)); err != nil {
		return nil, err
	}

	return &QuizResult{
		Score:    score,
		Total:    len(questions),
		Perfect:  perfect,
		Feedback: feedback,
	}, nil
}

func (s *QuizService) GetMyScore(userID uint, courseID, materialID string) (int, bool, error) {
	return s.QuizRepo.GetScore(userID, courseID, materialID)
}

// GetLeaderboard serves from redis when possible and falls back to the
// database. Cache problems are logged and otherwise ignored.
func (s *QuizService) GetLeaderboard(courseID, materialID string) ([]model.QuizLeaderboardEntry, error) {
	ctx := context.Background()
	key := leaderboardCacheKey(courseID, materialID)

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			var entries []model.QuizLeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
			// unparseable cache payload reads as a miss
		}
	}

	entries, err := s.QuizRepo.FindLeaderboard(courseID, materialID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			if err := s.Redis.Set(ctx, key, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}
	return entries, nil
}

// GetStats derives statistics from the retained top-10 leaderboard, not
// from all historical attempts.
func (s *QuizService) GetStats(courseID, materialID string) (*QuizStats, error) {
	entries, err := s.GetLeaderboard(courseID, materialID)
	if err != nil {
		return nil, err
	}
	questions, err := s.QuizRepo.FindQuestions(courseID, materialID)
	if err != nil {
		return nil, err
	}

	stats := &QuizStats{Attempts: len(entries)}
	if len(entries) == 0 {
		return stats, nil
	}

	totalScore := 0
	for _, e := range entries {
		totalScore += e.Score
		if e.Score == len(questions) {
			stats.Perfect++
		}
	}
	stats.AvgScore = util.Round2(float64(totalScore) / float64(len(entries)))
	return stats, nil
}

func (s *QuizService) invalidateLeaderboardCache(courseID, materialID string) {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	if err := s.Redis.Del(ctx, leaderboardCacheKey(courseID, materialID)).Err(); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}

func leaderboardCacheKey(courseID, materialID string) string {
	return "quiz:leaderboard:" + courseID + ":" + materialID
}
