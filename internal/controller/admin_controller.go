package controller

import (
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	UserService  *service.UserService
	StatsService *service.StatsService
}

func NewAdminController(userService *service.UserService, statsService *service.StatsService) *AdminController {
	return &AdminController{
		UserService:  userService,
		StatsService: statsService,
	}
}

// ListUsers godoc
// @Summary 用户列表
// @Tags 管理员
// @Produce  json
// @Security ApiKeyAuth
// @Param role query string false "角色过滤 SUPERADMIN/QAUTHOR/STUDENT"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	users, total, err := c.UserService.ListUsers(ctx.Request.Context(), ctx.Query("role"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// swagger:model UpdateRoleRequest
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole godoc
// @Summary 修改用户角色
// @Tags 管理员
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param   body body UpdateRoleRequest true "新角色"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "未知角色"
// @Failure 403 {object} util.Response "不能修改自己的角色"
// @Router /api/admin/users/{id}/role [put]
func (c *AdminController) UpdateUserRole(ctx *gin.Context) {
	operator, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.UserService.UpdateRole(ctx.Request.Context(), operator, id, role); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id, "role": role})
}

// swagger:model DisableUserRequest
type DisableUserRequest struct {
	Disabled *bool `json:"disabled"`
}

// DisableUser godoc
// @Summary 禁用/启用用户
// @Description 请求体为空时禁用，{"disabled": false} 重新启用
// @Tags 管理员
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param   body body DisableUserRequest false "禁用状态"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/disable [post]
func (c *AdminController) DisableUser(ctx *gin.Context) {
	operator, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	disabled := true
	if ctx.Request.ContentLength > 0 {
		var req DisableUserRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		if req.Disabled != nil {
			disabled = *req.Disabled
		}
	}

	if err := c.UserService.SetDisabled(ctx.Request.Context(), operator, id, disabled); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id, "disabled": disabled})
}

// Stats godoc
// @Summary 平台统计
// @Tags 管理员
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.PlatformStats}
// @Router /api/admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.StatsService.Platform(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
