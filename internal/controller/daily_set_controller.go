package controller

import (
	"context"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// DailySetProvider 每日题组的组题与判分
type DailySetProvider interface {
	GetOrCreate(ctx context.Context, studentID uint) (*service.DailySetView, error)
	Submit(ctx context.Context, studentID uint, date string, answers []service.AnswerInput) (*service.SubmitResult, error)
}

type DailySetController struct {
	DailySets DailySetProvider
}

func NewDailySetController(dailySets DailySetProvider) *DailySetController {
	return &DailySetController{DailySets: dailySets}
}

// swagger:model SubmitDailySetRequest
type SubmitDailySetRequest struct {
	Date    string                `json:"date" binding:"required"`
	Answers []service.AnswerInput `json:"answers" binding:"required,dive"`
}

// GetDailySet godoc
// @Summary 获取今日题组
// @Description 返回学生今天的题组，不存在时从主攻科目中挑选未做过的题组成新题组；没有可做的题时返回 completed=true 与提示信息
// @Tags 每日练习
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DailySetView}
// @Failure 400 {object} util.Response "未选择主攻科目"
// @Failure 401 {object} util.Response "未登录"
// @Failure 403 {object} util.Response "非学生角色"
// @Router /api/student/daily-set [get]
func (c *DailySetController) GetDailySet(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	view, err := c.DailySets.GetOrCreate(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// SubmitDailySet godoc
// @Summary 提交今日题组
// @Description 对指定日期的题组判分，选项字母为题组展示时的字母；每个题组只能提交一次
// @Tags 每日练习
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitDailySetRequest true "答案"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response "答案不合法"
// @Failure 404 {object} util.Response "题组不存在"
// @Failure 409 {object} util.Response "题组已完成"
// @Router /api/student/daily-set [post]
func (c *DailySetController) SubmitDailySet(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req SubmitDailySetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.DailySets.Submit(ctx.Request.Context(), user.ID, req.Date, req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
