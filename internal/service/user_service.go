package service

import (
	"context"
	"errors"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/logger"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// UserService 处理用户相关的业务逻辑
type UserService struct {
	Users    UserStore
	Subjects SubjectStore
	cache    Cache
}

func NewUserService(users UserStore, subjects SubjectStore, cache Cache) *UserService {
	return &UserService{
		Users:    users,
		Subjects: subjects,
		cache:    cache,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	return s.Users.FindByID(ctx, id)
}

// SetPrimarySubject 学生只能选择一次主攻科目
func (s *UserService) SetPrimarySubject(ctx context.Context, user *model.User, subjectID uint) (*model.User, error) {
	if user.Role != model.Student {
		return nil, util.ErrPermissionDenied
	}
	if user.PrimarySubjectID != nil {
		return nil, util.ErrPrimarySubjectLocked
	}
	if _, err := s.Subjects.FindByID(ctx, subjectID); err != nil {
		return nil, err
	}

	updated, err := s.Users.SetPrimarySubjectOnce(ctx, user.ID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("set primary subject: %w", err)
	}
	if !updated {
		// 并发请求已经写入
		return nil, util.ErrPrimarySubjectLocked
	}

	logger.Log.Info("primary subject selected", zap.Uint("userID", user.ID), zap.Uint("subjectID", subjectID))
	return s.Users.FindByID(ctx, user.ID)
}

func (s *UserService) ListUsers(ctx context.Context, role string, page, limit int) ([]model.User, int64, error) {
	var r model.UserRole
	if role != "" {
		parsed, err := model.ParseRole(role)
		if err != nil {
			return nil, 0, err
		}
		r = parsed
	}
	page, limit = util.NormalizePage(page, limit)
	return s.Users.List(ctx, r, page, limit)
}

// UpdateRole 管理员不能修改自己的角色，避免系统失去超级管理员
func (s *UserService) UpdateRole(ctx context.Context, operator *model.User, id uint, role model.UserRole) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidRole, role)
	}
	if operator.ID == id {
		return util.ErrPermissionDenied
	}
	if err := s.Users.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	s.cache.del(ctx, platformStatsKey)
	logger.Log.Info("user role updated",
		zap.Uint("operatorID", operator.ID), zap.Uint("userID", id), zap.String("role", string(role)))
	return nil
}

func (s *UserService) SetDisabled(ctx context.Context, operator *model.User, id uint, disabled bool) error {
	if operator.ID == id {
		return util.ErrPermissionDenied
	}
	if err := s.Users.SetDisabled(ctx, id, disabled); err != nil {
		return err
	}
	logger.Log.Info("user disabled flag changed",
		zap.Uint("operatorID", operator.ID), zap.Uint("userID", id), zap.Bool("disabled", disabled))
	return nil
}

// CreateAdmin 命令行创建超级管理员
func (s *UserService) CreateAdmin(ctx context.Context, name, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 6 {
		return nil, errors.New("email and a password of at least 6 characters are required")
	}
	if name == "" {
		name = "admin"
	}
	user, err := newUser(name, email, password, model.SuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
