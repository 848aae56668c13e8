package controller

import (
	"errors"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// primarySubjectHint 返回给客户端，引导学生先选主攻科目
const primarySubjectHint = "Select a primary subject via PUT /api/student/primary-subject before requesting a daily set"

// respondError 把领域错误映射到统一的响应结构，未识别的错误按 500 处理并记录日志
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidCredentials), errors.Is(err, util.ErrUserDisabled):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrPermissionDenied), errors.Is(err, util.ErrNotQuestionOwner):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrNoPrimarySubject):
		util.ErrorWithData(ctx, http.StatusBadRequest, err.Error(), gin.H{"hint": primarySubjectHint})
	case errors.Is(err, util.ErrInvalidSubmission),
		errors.Is(err, util.ErrInvalidQuestion),
		errors.Is(err, util.ErrInvalidSubject),
		errors.Is(err, model.ErrInvalidRole):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrSetNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrSubjectNotFound),
		errors.Is(err, util.ErrQuestionNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrSetAlreadyCompleted),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrSubjectNameTaken),
		errors.Is(err, util.ErrSubjectInUse),
		errors.Is(err, util.ErrPrimarySubjectLocked):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// pathID 解析路径中的数字 ID，非法时直接返回 400
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// currentUser 由 AuthMiddleware 写入
func currentUser(ctx *gin.Context) (*model.User, bool) {
	user := util.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return nil, false
	}
	return user, true
}

func pageParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(util.DefaultPageSize)))
	return util.NormalizePage(page, limit)
}
