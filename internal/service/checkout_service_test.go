package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutEnv(t *testing.T, providerStatus int) (*testEnv, *CheckoutService, *checkoutSessionPayload) {
	t.Helper()

	env := newTestEnv(t)
	var captured checkoutSessionPayload

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.Equal(t, "Bearer sk_test_xyz", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(providerStatus)
		json.NewEncoder(w).Encode(map[string]string{
			"id":  "cs_test_123",
			"url": "https://pay.example.com/cs_test_123",
		})
	}))
	t.Cleanup(provider.Close)

	cfg := &config.Config{}
	cfg.Server.BaseURL = "http://localhost:3000"
	cfg.Payment.BaseURL = provider.URL
	cfg.Payment.SecretKey = "sk_test_xyz"
	cfg.Payment.PriceCents = 1000
	cfg.Payment.Currency = "usd"

	svc := NewCheckoutService(env.courses, repository.NewPurchaseRepository(env.db), cfg)
	return env, svc, &captured
}

func TestCreateSession(t *testing.T) {
	env, svc, captured := newCheckoutEnv(t, http.StatusOK)
	env.createCourse(t, "c3", "fullstack-nextjs", true, 3)

	session, err := svc.CreateSession("c3", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", session.SessionID)
	assert.Equal(t, "https://pay.example.com/cs_test_123", session.URL)

	assert.Equal(t, 1000, captured.AmountCents)
	assert.Equal(t, "usd", captured.Currency)
	assert.Equal(t, "http://localhost:3000/courses/fullstack-nextjs?checkout=success", captured.SuccessURL)
	assert.Equal(t, "http://localhost:3000/courses/fullstack-nextjs?checkout=cancelled", captured.CancelURL)
	assert.Equal(t, "ada@example.com", captured.Email)
}

func TestCreateSessionRejectsNonPremium(t *testing.T) {
	env, svc, _ := newCheckoutEnv(t, http.StatusOK)
	env.createCourse(t, "c1", "course-one", false, 3)

	_, err := svc.CreateSession("c1", "")
	assert.ErrorIs(t, err, util.ErrCourseNotPremium)

	_, err = svc.CreateSession("missing", "")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCreateSessionProviderFailure(t *testing.T) {
	env, svc, _ := newCheckoutEnv(t, http.StatusInternalServerError)
	env.createCourse(t, "c3", "fullstack-nextjs", true, 3)

	_, err := svc.CreateSession("c3", "")
	assert.ErrorIs(t, err, util.ErrPaymentProvider)
}

func TestRecordPurchase(t *testing.T) {
	env, svc, _ := newCheckoutEnv(t, http.StatusOK)
	user := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c3", "fullstack-nextjs", true, 3)
	env.createCourse(t, "c1", "course-one", false, 3)

	require.NoError(t, svc.RecordPurchase(user.ID, "c3", "ada@example.com"))
	// success redirects can replay
	require.NoError(t, svc.RecordPurchase(user.ID, "c3", "ada@example.com"))

	purchased, err := svc.HasPurchased(user.ID, "c3")
	require.NoError(t, err)
	assert.True(t, purchased)

	courses, err := svc.Purchases(user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c3", courses[0].ID)

	// free courses are not purchasable
	err = svc.RecordPurchase(user.ID, "c1", "ada@example.com")
	assert.ErrorIs(t, err, util.ErrCourseNotPremium)
}
