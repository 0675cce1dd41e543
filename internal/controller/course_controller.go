package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService   *service.CourseService
	ProgressService *service.ProgressService
	StorageService  *service.StorageService
}

func NewCourseController(courseService *service.CourseService, progressService *service.ProgressService, storageService *service.StorageService) *CourseController {
	return &CourseController{
		CourseService:   courseService,
		ProgressService: progressService,
		StorageService:  storageService,
	}
}

func currentUserID(ctx *gin.Context) uint {
	if user := util.GetUserFromContext(ctx); user != nil {
		return user.UserID
	}
	return 0
}

// @Summary List courses
// @Description Full catalogue; paywall state reflects the caller when signed in
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses(currentUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Get a course
// @Description Looks up by ID or slug; locked premium courses have lesson bodies stripped
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID or slug"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.Get(currentUserID(ctx), ctx.Param("courseId"))
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary Enroll in a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := ctx.Param("courseId")
	if err := c.ProgressService.Enroll(user.UserID, courseID); err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"enrolled": true, "courseId": courseID})
}

// @Summary List enrollments
// @Description Courses the caller enrolled in, with progress percentages
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/enrollments [get]
func (c *CourseController) ListEnrollments(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.ProgressService.EnrolledCourses(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Mark material progress
// @Description Sets the completion flag; completing a material can award points and badges
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/progress [put]
func (c *CourseController) MarkMaterial(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courseID := ctx.Param("courseId")
	materialID := ctx.Param("materialId")
	err := c.ProgressService.MarkMaterial(user.UserID, user.DisplayName(), courseID, materialID, *req.Completed)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"completed": *req.Completed})
}

// @Summary Get material progress
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param materialId path string true "Material ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/materials/{materialId}/progress [get]
func (c *CourseController) GetMaterialProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	completed, err := c.ProgressService.GetMaterialProgress(user.UserID, ctx.Param("courseId"), ctx.Param("materialId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"completed": completed})
}

// @Summary Get course progress
// @Description Completion percentage derived from material flags
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/progress [get]
func (c *CourseController) GetCourseProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := ctx.Param("courseId")
	course, err := c.CourseService.GetByID(courseID)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	percent, err := c.ProgressService.GetCourseProgress(user.UserID, courseID, len(course.Materials))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"progress": percent})
}

// @Summary Set course progress
// @Description Writes the stored percentage directly, independent of material flags
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/progress [put]
func (c *CourseController) SetCourseProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Progress *int `json:"progress" binding:"required,min=0,max=100"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.SetCourseProgress(user.UserID, ctx.Param("courseId"), *req.Progress); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"progress": *req.Progress})
}

// @Summary Upload course cover image
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param image formData file true "Image file"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseId}/image [post]
func (c *CourseController) UploadCourseImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	url, err := c.CourseService.UploadImage(
		ctx.Request.Context(),
		ctx.Param("courseId"),
		src,
		file.Size,
		file.Filename,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
