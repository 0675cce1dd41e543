package service

import (
	"testing"

	"learnhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialCompletionAwardsPointsOnce(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	require.NoError(t, env.gamification.HandleMaterialCompleted(user.ID, "Ada", "c1", "m1"))
	points, err := env.gamification.GetPoints(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, points)

	// repeating the completion grants nothing more
	require.NoError(t, env.gamification.HandleMaterialCompleted(user.ID, "Ada", "c1", "m1"))
	points, err = env.gamification.GetPoints(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, points)
}

func TestFirstCourseBadgeOnFirstCompletion(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	require.NoError(t, env.gamification.HandleMaterialCompleted(user.ID, "Ada", "c1", "m1"))

	badges, err := env.gamification.GetBadges(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{model.BadgeFirstCourse}, badges)

	// a second material grants no second first-course badge
	require.NoError(t, env.gamification.HandleMaterialCompleted(user.ID, "Ada", "c1", "m2"))
	badges, err = env.gamification.GetBadges(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{model.BadgeFirstCourse}, badges)
}

func TestCourseCompleteBadge(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	for _, m := range []string{"m1", "m2", "m3"} {
		require.NoError(t, env.progress.MarkMaterial(user.ID, "Ada", "c1", m, true))
	}

	badges, err := env.gamification.GetBadges(user.ID)
	require.NoError(t, err)
	assert.Contains(t, badges, model.BadgeCourseComplete)

	// toggling a material off and back on duplicates nothing
	require.NoError(t, env.progress.MarkMaterial(user.ID, "Ada", "c1", "m3", false))
	require.NoError(t, env.progress.MarkMaterial(user.ID, "Ada", "c1", "m3", true))

	badges, err = env.gamification.GetBadges(user.ID)
	require.NoError(t, err)
	count := 0
	for _, b := range badges {
		if b == model.BadgeCourseComplete {
			count++
		}
	}
	assert.Equal(t, 1, count)

	points, err := env.gamification.GetPoints(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, points)
}

func TestLevelDerivedFromPoints(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")

	_, err := env.gamification.AddPoints(user.ID, 250)
	require.NoError(t, err)

	level, err := env.gamification.GetLevel(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, level)

	lp, err := env.gamification.GetLevelProgress(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, lp.Current)
	assert.Equal(t, 100, lp.Max)
}

func TestLevelFloorsOnNegativeTotal(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")

	total, err := env.gamification.AddPoints(user.ID, -50)
	require.NoError(t, err)
	assert.Equal(t, -50, total)

	// floor(-50/100)+1 = 0, not the truncated 1
	level, err := env.gamification.GetLevel(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, level)
}

func TestQuizScoredAwards(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")

	// a zero score grants nothing
	require.NoError(t, env.gamification.HandleQuizScored(user.ID, "Ada", "c1", "m1", 0, 3))
	points, err := env.gamification.GetPoints(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, points)

	// the first positive score grants 30 points, once
	require.NoError(t, env.gamification.HandleQuizScored(user.ID, "Ada", "c1", "m1", 2, 3))
	require.NoError(t, env.gamification.HandleQuizScored(user.ID, "Ada", "c1", "m1", 3, 3))
	points, err = env.gamification.GetPoints(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, points)

	// the perfect badge rides on the first grant only; the later perfect
	// resubmission found the marker consumed
	badges, err := env.gamification.GetBadges(user.ID)
	require.NoError(t, err)
	assert.NotContains(t, badges, model.BadgePerfectQuiz)
}

func TestPerfectFirstQuizGrantsBadge(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")

	require.NoError(t, env.gamification.HandleQuizScored(user.ID, "Ada", "c1", "m1", 3, 3))

	badges, err := env.gamification.GetBadges(user.ID)
	require.NoError(t, err)
	assert.Contains(t, badges, model.BadgePerfectQuiz)
}

func TestGlobalLeaderboardOrdering(t *testing.T) {
	env := newTestEnv(t)
	ada := env.createUser(t, "Ada", "ada@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	require.NoError(t, env.gamification.UpdateGlobalLeaderboard(ada.ID, "Ada", 50))
	require.NoError(t, env.gamification.UpdateGlobalLeaderboard(bob.ID, "Bob", 80))

	board, err := env.gamification.GetGlobalLeaderboard()
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Bob", board[0].Name)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "Ada", board[1].Name)
	assert.Equal(t, 2, board[1].Rank)

	// an upsert for an existing user replaces the entry
	require.NoError(t, env.gamification.UpdateGlobalLeaderboard(ada.ID, "Ada", 120))
	board, err = env.gamification.GetGlobalLeaderboard()
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Ada", board[0].Name)
	assert.Equal(t, 120, board[0].Points)
}

func TestAchievementsSnapshot(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	require.NoError(t, env.progress.MarkMaterial(user.ID, "Ada", "c1", "m1", true))

	a, err := env.gamification.GetUserAchievements(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, a.Points)
	assert.Equal(t, 1, a.Level)
	assert.Equal(t, 20, a.LevelProgress.Current)
	assert.Equal(t, []string{model.BadgeFirstCourse}, a.Badges)
}
