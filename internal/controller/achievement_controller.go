package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	GamificationService *service.GamificationService
}

func NewAchievementController(gamificationService *service.GamificationService) *AchievementController {
	return &AchievementController{GamificationService: gamificationService}
}

// @Summary User achievements
// @Description Points, level, level progress and badges for the caller
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) GetUserAchievements(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.GamificationService.GetUserAchievements(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// @Summary Global leaderboard
// @Description All scored users ranked by total points
// @Tags achievements
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (c *AchievementController) GetGlobalLeaderboard(ctx *gin.Context) {
	board, err := c.GamificationService.GetGlobalLeaderboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, board)
}
