package service

import (
	"context"
	"errors"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/logger"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users UserStore
	Cfg   *config.Config
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		Users: users,
		Cfg:   cfg,
	}
}

type RegisterInput struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Role     model.UserRole `json:"role"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register 自助注册只允许学生或出题人，超级管理员走命令行创建
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	role := in.Role
	if role == "" {
		role = model.Student
	}
	switch role {
	case model.Student, model.QAuthor:
	case model.SuperAdmin:
		return nil, util.ErrPermissionDenied
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidRole, in.Role)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	_, err := s.Users.FindByEmail(ctx, email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	user, err := newUser(in.Name, email, in.Password, role)
	if err != nil {
		return nil, err
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Log.Info("user registered", zap.Uint("userID", user.ID), zap.String("role", string(role)))
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	if user.Disabled {
		return nil, util.ErrUserDisabled
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

func newUser(name, email, password string, role model.UserRole) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &model.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}, nil
}
