package controller

import (
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// maxImageSize 题目配图大小上限
const maxImageSize = 5 << 20

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// CreateQuestion godoc
// @Summary 新建题目
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.QuestionInput true "题目"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response "题目不合法"
// @Failure 404 {object} util.Response "科目不存在"
// @Router /api/author/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req service.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.Create(ctx.Request.Context(), user, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// ListQuestions godoc
// @Summary 我的题目
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param subjectId query int false "科目ID"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/author/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	page, limit := pageParams(ctx)
	subjectID, _ := strconv.ParseUint(ctx.Query("subjectId"), 10, 32)

	qs, total, err := c.QuestionService.List(ctx.Request.Context(), user, uint(subjectID), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: qs, Total: total, Page: page, Limit: limit})
}

// GetQuestion godoc
// @Summary 题目详情
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 403 {object} util.Response "不是自己的题目"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/author/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	q, err := c.QuestionService.Get(ctx.Request.Context(), user, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// UpdateQuestion godoc
// @Summary 修改题目
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param   body body service.QuestionInput true "题目"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 403 {object} util.Response "不是自己的题目"
// @Router /api/author/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.Update(ctx.Request.Context(), user, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Description 软删除，已组进题组的题目仍可判分
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "不是自己的题目"
// @Router /api/author/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.QuestionService.Delete(ctx.Request.Context(), user, id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// UploadQuestionImage godoc
// @Summary 上传题目配图
// @Tags 题目
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param file formData file true "图片文件"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response "文件不合法"
// @Router /api/author/questions/{id}/image [post]
func (c *QuestionController) UploadQuestionImage(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		util.BadRequest(ctx, "image exceeds 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType, err := util.ValidateMimeType(file, []string{util.MimeImage})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	// 嗅探读走了文件头，回到开头再上传
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	q, err := c.QuestionService.UploadImage(ctx.Request.Context(), user, id, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}
