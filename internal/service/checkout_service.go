package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CheckoutService struct {
	CourseRepo   *repository.CourseRepository
	PurchaseRepo *repository.PurchaseRepository
	Config       *config.Config
	HTTPClient   *http.Client
}

func NewCheckoutService(courseRepo *repository.CourseRepository, purchaseRepo *repository.PurchaseRepository, cfg *config.Config) *CheckoutService {
	return &CheckoutService{
		CourseRepo:   courseRepo,
		PurchaseRepo: purchaseRepo,
		Config:       cfg,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

type CheckoutRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Email    string `json:"email"`
}

type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type checkoutSessionPayload struct {
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	SuccessURL  string `json:"success_url"`
	CancelURL   string `json:"cancel_url"`
	Email       string `json:"customer_email,omitempty"`
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateSession opens a hosted payment session for a premium course.
// Only premium courses are purchasable; the price is the configured
// flat rate, not per-course.
func (s *CheckoutService) CreateSession(courseID, email string) (*CheckoutSession, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	if !course.Premium {
		return nil, util.ErrCourseNotPremium
	}

	payload := checkoutSessionPayload{
		AmountCents: s.Config.Payment.PriceCents,
		Currency:    s.Config.Payment.Currency,
		Description: course.Title,
		Reference:   course.ID,
		SuccessURL:  fmt.Sprintf("%s/courses/%s?checkout=success", s.Config.Server.BaseURL, course.Slug),
		CancelURL:   fmt.Sprintf("%s/courses/%s?checkout=cancelled", s.Config.Server.BaseURL, course.Slug),
		Email:       email,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.Config.Payment.BaseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Config.Payment.SecretKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		logger.Log.Error("payment provider unreachable", zap.Error(err))
		return nil, util.ErrPaymentProvider
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Log.Error("payment provider rejected session",
			zap.Int("status", resp.StatusCode),
			zap.String("courseId", courseID))
		return nil, util.ErrPaymentProvider
	}

	var session checkoutSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		logger.Log.Error("payment provider response unreadable", zap.Error(err))
		return nil, util.ErrPaymentProvider
	}

	return &CheckoutSession{SessionID: session.ID, URL: session.URL}, nil
}

// RecordPurchase marks the course paid for the user. Idempotent, the
// success redirect can be replayed.
func (s *CheckoutService) RecordPurchase(userID uint, courseID, email string) error {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrCourseNotFound
		}
		return err
	}
	if !course.Premium {
		return util.ErrCourseNotPremium
	}
	return s.PurchaseRepo.Create(userID, courseID, email)
}

func (s *CheckoutService) HasPurchased(userID uint, courseID string) (bool, error) {
	return s.PurchaseRepo.Exists(userID, courseID)
}

func (s *CheckoutService) Purchases(userID uint) ([]model.Course, error) {
	ids, err := s.PurchaseRepo.FindCourseIDsByUser(userID)
	if err != nil {
		return nil, err
	}
	courses := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		course, err := s.CourseRepo.FindByID(id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}
