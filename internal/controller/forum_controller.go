package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ForumController struct {
	ForumService *service.ForumService
}

func NewForumController(forumService *service.ForumService) *ForumController {
	return &ForumController{ForumService: forumService}
}

func isAdmin(user *util.Claims) bool {
	return user != nil && user.Role == model.Admin
}

func (c *ForumController) respondForumError(ctx *gin.Context, err error) {
	switch err {
	case util.ErrThreadNotFound, util.ErrReplyNotFound, util.ErrCommentNotFound:
		util.NotFound(ctx)
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary List forum threads
// @Description Pinned threads first, then newest first
// @Tags forum
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/forum/threads [get]
func (c *ForumController) ListThreads(ctx *gin.Context) {
	threads, err := c.ForumService.ListThreads()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, threads)
}

// @Summary Get a thread
// @Tags forum
// @Produce json
// @Param threadId path string true "Thread ID"
// @Success 200 {object} util.Response
// @Router /api/forum/threads/{threadId} [get]
func (c *ForumController) GetThread(ctx *gin.Context) {
	thread, err := c.ForumService.GetThread(ctx.Param("threadId"))
	if err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Success(ctx, thread)
}

// @Summary Create a thread
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateThreadRequest true "Thread payload"
// @Success 201 {object} util.Response
// @Router /api/forum/threads [post]
func (c *ForumController) CreateThread(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateThreadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	thread, err := c.ForumService.CreateThread(user.UserID, &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, thread)
}

// @Summary Update a thread
// @Description Author or admin only
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Param body body service.UpdateThreadRequest true "Thread payload"
// @Success 200 {object} util.Response
// @Router /api/forum/threads/{threadId} [put]
func (c *ForumController) UpdateThread(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateThreadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	thread, err := c.ForumService.UpdateThread(user.UserID, isAdmin(user), ctx.Param("threadId"), &req)
	if err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Success(ctx, thread)
}

// @Summary Delete a thread
// @Description Author or admin only; replies go with it
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Success 200 {object} util.Response
// @Router /api/forum/threads/{threadId} [delete]
func (c *ForumController) DeleteThread(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ForumService.DeleteThread(user.UserID, isAdmin(user), ctx.Param("threadId")); err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Pin or unpin a thread
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Success 200 {object} util.Response
// @Router /api/forum/threads/{threadId}/pin [patch]
func (c *ForumController) PinThread(ctx *gin.Context) {
	var req struct {
		Pinned *bool `json:"pinned" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	thread, err := c.ForumService.PinThread(ctx.Param("threadId"), *req.Pinned)
	if err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Success(ctx, thread)
}

// @Summary Reply to a thread
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Param body body service.ReplyRequest true "Reply payload"
// @Success 201 {object} util.Response
// @Router /api/forum/threads/{threadId}/replies [post]
func (c *ForumController) CreateReply(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.ForumService.CreateReply(user.UserID, ctx.Param("threadId"), &req)
	if err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Created(ctx, reply)
}

// @Summary Edit a reply
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param replyId path string true "Reply ID"
// @Param body body service.ReplyRequest true "Reply payload"
// @Success 200 {object} util.Response
// @Router /api/forum/replies/{replyId} [put]
func (c *ForumController) UpdateReply(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.ForumService.UpdateReply(user.UserID, isAdmin(user), ctx.Param("replyId"), &req)
	if err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Success(ctx, reply)
}

// @Summary Delete a reply
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param replyId path string true "Reply ID"
// @Success 200 {object} util.Response
// @Router /api/forum/replies/{replyId} [delete]
func (c *ForumController) DeleteReply(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ForumService.DeleteReply(user.UserID, isAdmin(user), ctx.Param("replyId")); err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary List material comments
// @Description Threaded discussion under a course material
// @Tags forum
// @Produce json
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/comments [get]
func (c *ForumController) ListComments(ctx *gin.Context) {
	comments, err := c.ForumService.ListComments(ctx.Param("courseId"), ctx.Param("materialId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// @Summary Post a material comment
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Param body body service.CommentRequest true "Comment payload"
// @Success 201 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/comments [post]
func (c *ForumController) CreateComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.ForumService.CreateComment(user.UserID, user.DisplayName(), ctx.Param("courseId"), ctx.Param("materialId"), &req)
	if err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}

// @Summary Edit a material comment
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Success 200 {object} util.Response
// @Router /api/comments/{commentId} [put]
func (c *ForumController) UpdateComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.ForumService.UpdateComment(user.UserID, isAdmin(user), ctx.Param("commentId"), req.Text)
	if err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Success(ctx, comment)
}

// @Summary Delete a material comment
// @Description Removes the comment and its reply subtree
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Success 200 {object} util.Response
// @Router /api/comments/{commentId} [delete]
func (c *ForumController) DeleteComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ForumService.DeleteComment(user.UserID, isAdmin(user), ctx.Param("commentId")); err != nil {
		c.respondForumError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
