package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	CheckoutService *service.CheckoutService
}

func NewCheckoutController(checkoutService *service.CheckoutService) *CheckoutController {
	return &CheckoutController{CheckoutService: checkoutService}
}

// @Summary Create a checkout session
// @Description Opens a hosted payment session for a premium course
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body service.CheckoutRequest true "Checkout payload"
// @Success 200 {object} util.Response
// @Router /api/checkout [post]
func (c *CheckoutController) CreateSession(ctx *gin.Context) {
	var req service.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	email := req.Email
	if user := util.GetUserFromContext(ctx); user != nil && email == "" {
		email = user.Email
	}

	session, err := c.CheckoutService.CreateSession(req.CourseID, email)
	if err != nil {
		switch err {
		case util.ErrCourseNotFound, util.ErrCourseNotPremium:
			util.BadRequest(ctx, err.Error())
		case util.ErrPaymentProvider:
			util.InternalServerError(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, session)
}

// @Summary Confirm a purchase
// @Description Records the course as paid for the caller; idempotent
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/purchases/confirm [post]
func (c *CheckoutController) ConfirmPurchase(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		CourseID string `json:"courseId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CheckoutService.RecordPurchase(user.UserID, req.CourseID, user.Email); err != nil {
		switch err {
		case util.ErrCourseNotFound, util.ErrCourseNotPremium:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"purchased": true, "courseId": req.CourseID})
}

// @Summary List purchases
// @Description Premium courses the caller has paid for
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/purchases [get]
func (c *CheckoutController) ListPurchases(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CheckoutService.Purchases(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}
