package service

import (
	"fmt"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuizScoring(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)
	env.seedQuiz(t, "c1", "m1", 0, 2, 1)

	// one right, one wrong, one unanswered
	result, err := env.quiz.SubmitQuiz(user.ID, "Ada", "c1", "m1", map[int]int{0: 0, 1: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.False(t, result.Perfect)
	assert.Equal(t, []bool{true, false, false}, result.Feedback)

	score, attempted, err := env.quiz.GetMyScore(user.ID, "c1", "m1")
	require.NoError(t, err)
	assert.True(t, attempted)
	assert.Equal(t, 1, score)

	// the stored score is the last attempt, even when it is worse
	result, err = env.quiz.SubmitQuiz(user.ID, "Ada", "c1", "m1", map[int]int{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)

	score, attempted, err = env.quiz.GetMyScore(user.ID, "c1", "m1")
	require.NoError(t, err)
	assert.True(t, attempted)
	assert.Equal(t, 0, score)
}

func TestSubmitQuizKeyedByReportedPositions(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)
	// the shipped catalogue numbers questions from 1, not 0
	require.NoError(t, env.db.Create(&model.QuizQuestion{
		CourseID:   "c1",
		MaterialID: "m1",
		Position:   1,
		Text:       "Question 1",
		Options:    model.StringSlice{"A", "B", "C"},
		Answer:     2,
	}).Error)

	views, err := env.quiz.GetQuiz("c1", "m1")
	require.NoError(t, err)
	require.Len(t, views, 1)

	// a client knows only what GetQuiz returned
	result, err := env.quiz.SubmitQuiz(user.ID, "Ada", "c1", "m1", map[int]int{views[0].Position: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.True(t, result.Perfect)
}

func TestSubmitQuizWithoutQuiz(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	_, err := env.quiz.SubmitQuiz(user.ID, "Ada", "c1", "m1", map[int]int{0: 0})
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestPerfectScoreAutoCompletesMaterial(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)
	env.seedQuiz(t, "c1", "m1", 0, 2, 1)

	result, err := env.quiz.SubmitQuiz(user.ID, "Ada", "c1", "m1", map[int]int{0: 0, 1: 2, 2: 1})
	require.NoError(t, err)
	assert.True(t, result.Perfect)

	completed, err := env.progress.GetMaterialProgress(user.ID, "c1", "m1")
	require.NoError(t, err)
	assert.True(t, completed)

	// auto-completion takes the flag-only path: quiz points, but no
	// material points
	points, err := env.gamification.GetPoints(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, points)
}

func TestGetQuizHidesAnswers(t *testing.T) {
	env := newTestEnv(t)
	env.createCourse(t, "c1", "course-one", false, 3)
	env.seedQuiz(t, "c1", "m1", 0, 2)

	views, err := env.quiz.GetQuiz("c1", "m1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 0, views[0].Position)
	assert.Equal(t, "Question 1", views[0].Question)
	assert.Equal(t, []string{"A", "B", "C", "D"}, []string(views[0].Options))

	none, err := env.quiz.GetQuiz("c1", "m2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLeaderboardKeepsTopTen(t *testing.T) {
	env := newTestEnv(t)
	env.createCourse(t, "c1", "course-one", false, 3)
	env.seedQuiz(t, "c1", "m1", 0, 0, 0)

	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("User%02d", i)
		user := env.createUser(t, name, fmt.Sprintf("u%d@example.com", i))
		// scores 0, 1, 2, 0, 1, 2, ...
		answers := map[int]int{}
		for q := 0; q < i%3; q++ {
			answers[q] = 0
		}
		_, err := env.quiz.SubmitQuiz(user.ID, name, "c1", "m1", answers)
		require.NoError(t, err)
	}

	entries, err := env.quiz.GetLeaderboard("c1", "m1")
	require.NoError(t, err)
	require.Len(t, entries, 10)

	// descending by score, earlier submission winning ties
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score == entries[i].Score {
			assert.False(t, entries[i].SubmittedAt.Before(entries[i-1].SubmittedAt))
		} else {
			assert.Greater(t, entries[i-1].Score, entries[i].Score)
		}
	}

	// submissions scored 0,1,2 repeating, so the overflow shed two of
	// the four zero scores
	zeros := 0
	for _, e := range entries {
		if e.Score == 0 {
			zeros++
		}
	}
	assert.Equal(t, 2, zeros)
}

func TestLeaderboardReplacesSameName(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)
	env.seedQuiz(t, "c1", "m1", 0, 0, 0)

	_, err := env.quiz.SubmitQuiz(user.ID, "Ada", "c1", "m1", map[int]int{0: 0, 1: 0, 2: 0})
	require.NoError(t, err)
	_, err = env.quiz.SubmitQuiz(user.ID, "Ada", "c1", "m1", map[int]int{0: 0})
	require.NoError(t, err)

	entries, err := env.quiz.GetLeaderboard("c1", "m1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ada", entries[0].DisplayName)
	assert.Equal(t, 1, entries[0].Score)
}

func TestQuizStats(t *testing.T) {
	env := newTestEnv(t)
	env.createCourse(t, "c1", "course-one", false, 3)
	env.seedQuiz(t, "c1", "m1", 0, 0, 0)

	ada := env.createUser(t, "Ada", "ada@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	_, err := env.quiz.SubmitQuiz(ada.ID, "Ada", "c1", "m1", map[int]int{0: 0, 1: 0, 2: 0})
	require.NoError(t, err)
	_, err = env.quiz.SubmitQuiz(bob.ID, "Bob", "c1", "m1", map[int]int{0: 0, 1: 0})
	require.NoError(t, err)

	stats, err := env.quiz.GetStats("c1", "m1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Attempts)
	assert.Equal(t, 2.5, stats.AvgScore)
	assert.Equal(t, 1, stats.Perfect)
}

func TestQuizStatsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.createCourse(t, "c1", "course-one", false, 3)
	env.seedQuiz(t, "c1", "m1", 0)

	stats, err := env.quiz.GetStats("c1", "m1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Attempts)
	assert.Equal(t, 0.0, stats.AvgScore)
	assert.Equal(t, 0, stats.Perfect)
}
