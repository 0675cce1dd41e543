package controller

import (
	"strconv"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary Get a material's quiz
// @Description Questions without correct-answer indices; empty when no quiz exists
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/quiz [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	questions, err := c.QuizService.GetQuiz(ctx.Param("courseId"), ctx.Param("materialId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Submit quiz answers
// @Description Scores the attempt, updates the leaderboard and awards
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Param body body service.QuizSubmission true "Answers keyed by question index"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/quiz [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courseID := ctx.Param("courseId")
	result, err := c.QuizService.SubmitQuiz(user.UserID, user.DisplayName(), courseID, ctx.Param("materialId"), req.Answers)
	if err != nil {
		if err == util.ErrQuizNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.QuizSubmissions.WithLabelValues(courseID, strconv.FormatBool(result.Perfect)).Inc()
	util.Success(ctx, result)
}

// @Summary Quiz leaderboard
// @Description Top 10 scores for the material's quiz
// @Tags quizzes
// @Produce json
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/quiz/leaderboard [get]
func (c *QuizController) GetLeaderboard(ctx *gin.Context) {
	entries, err := c.QuizService.GetLeaderboard(ctx.Param("courseId"), ctx.Param("materialId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary Quiz statistics
// @Description Attempts, average score and perfect count over the retained leaderboard
// @Tags quizzes
// @Produce json
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/quiz/stats [get]
func (c *QuizController) GetStats(ctx *gin.Context) {
	stats, err := c.QuizService.GetStats(ctx.Param("courseId"), ctx.Param("materialId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary My quiz score
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/quiz/score [get]
func (c *QuizController) GetMyScore(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	score, attempted, err := c.QuizService.GetMyScore(user.UserID, ctx.Param("courseId"), ctx.Param("materialId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"score": score, "attempted": attempted})
}
