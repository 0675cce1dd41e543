package service

import (
	"net/http"
	"testing"

	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseService(t *testing.T) (*testEnv, *CourseService, *CheckoutService) {
	t.Helper()
	env, checkout, _ := newCheckoutEnv(t, http.StatusOK)
	course := NewCourseService(env.courses, checkout, nil)
	return env, course, checkout
}

func TestCatalogueLocking(t *testing.T) {
	env, svc, checkout := newCourseService(t)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)
	env.createCourse(t, "c3", "fullstack-nextjs", true, 3)

	// anonymous browsing locks premium content
	courses, err := svc.ListCourses(0)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.False(t, courses[0].Locked)
	assert.True(t, courses[1].Locked)

	locked, err := svc.GetBySlug(0, "fullstack-nextjs")
	require.NoError(t, err)
	assert.True(t, locked.Locked)
	for _, m := range locked.Materials {
		assert.Empty(t, m.Content)
	}

	// a purchase unlocks it for that user
	require.NoError(t, checkout.RecordPurchase(user.ID, "c3", "ada@example.com"))
	unlocked, err := svc.GetBySlug(user.ID, "fullstack-nextjs")
	require.NoError(t, err)
	assert.False(t, unlocked.Locked)
	for _, m := range unlocked.Materials {
		assert.NotEmpty(t, m.Content)
	}
}

func TestGetByIDOrSlug(t *testing.T) {
	env, svc, _ := newCourseService(t)
	env.createCourse(t, "c1", "course-one", false, 3)

	byID, err := svc.Get(0, "c1")
	require.NoError(t, err)
	assert.Equal(t, "course-one", byID.Slug)

	bySlug, err := svc.Get(0, "course-one")
	require.NoError(t, err)
	assert.Equal(t, "c1", bySlug.ID)

	_, err = svc.Get(0, "nope")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}
