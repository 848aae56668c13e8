package middleware

import (
	"context"
	"errors"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/logger"
	"exam_prep_backend/pkg/tracing"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLoader 按 ID 重新读取用户，角色与禁用状态以数据库为准
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

func AuthMiddleware(cfg *config.Config, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}
		util.SetClaims(c, claims)

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, util.ErrUserNotFound) {
				util.Unauthorized(c)
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}
		if user.Disabled {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetCurrentUser(c, user)
		c.Set(tracing.UserIDContextKey, user.ID)
		c.Next()
	}
}

// RoleMiddleware 只放行 roles 中列出的角色，未知角色一律拒绝
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetCurrentUser(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if !user.Role.Valid() || !hasRole(user.Role, roles) {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func hasRole(role model.UserRole, allowed []model.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
