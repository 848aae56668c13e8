package controller

import (
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	UserService    *service.UserService
	AttemptService *service.AttemptService
}

func NewStudentController(userService *service.UserService, attemptService *service.AttemptService) *StudentController {
	return &StudentController{
		UserService:    userService,
		AttemptService: attemptService,
	}
}

// swagger:model PrimarySubjectRequest
type PrimarySubjectRequest struct {
	SubjectID uint `json:"subjectId" binding:"required"`
}

// SetPrimarySubject godoc
// @Summary 选择主攻科目
// @Description 每个学生只能选择一次，之后不可修改
// @Tags 学生
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body PrimarySubjectRequest true "科目"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "科目不存在"
// @Failure 409 {object} util.Response "已选择过主攻科目"
// @Router /api/student/primary-subject [put]
func (c *StudentController) SetPrimarySubject(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req PrimarySubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.SetPrimarySubject(ctx.Request.Context(), user, req.SubjectID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}

// AttemptHistory godoc
// @Summary 答题记录
// @Tags 学生
// @Produce  json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/student/attempts [get]
func (c *StudentController) AttemptHistory(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	page, limit := pageParams(ctx)
	rows, total, page, limit, err := c.AttemptService.History(ctx.Request.Context(), user.ID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: rows, Total: total, Page: page, Limit: limit})
}
