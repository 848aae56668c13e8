package controller

import (
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// ListSubjects godoc
// @Summary 科目列表
// @Tags 科目
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Subject}
// @Router /api/subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.SubjectService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// CreateSubject godoc
// @Summary 新建科目
// @Tags 科目管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SubjectInput true "科目信息"
// @Success 201 {object} util.Response{data=model.Subject}
// @Failure 409 {object} util.Response "科目名称已存在"
// @Router /api/admin/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req service.SubjectInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, subject)
}

// UpdateSubject godoc
// @Summary 修改科目
// @Tags 科目管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Param   body body service.SubjectInput true "科目信息"
// @Success 200 {object} util.Response{data=model.Subject}
// @Failure 404 {object} util.Response "科目不存在"
// @Router /api/admin/subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.SubjectInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, subject)
}

// DeleteSubject godoc
// @Summary 删除科目
// @Description 科目下仍有题目时拒绝删除
// @Tags 科目管理
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "科目仍有题目"
// @Router /api/admin/subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.SubjectService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}
