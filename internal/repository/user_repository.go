package repository

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.DB.WithContext(ctx).Create(user).Error
	return translate(err, nil, util.ErrEmailRegistered)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate(err, util.ErrUserNotFound, nil)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err, util.ErrUserNotFound, nil)
	}
	return &user, nil
}

// List 分页列出用户，role 为空表示不过滤
func (r *UserRepository) List(ctx context.Context, role model.UserRole, page, limit int) ([]model.User, int64, error) {
	var (
		users []model.User
		total int64
	)
	query := r.DB.WithContext(ctx).Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uint, role model.UserRole) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.mustExist(ctx, id)
	}
	return nil
}

func (r *UserRepository) SetDisabled(ctx context.Context, id uint, disabled bool) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("disabled", disabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.mustExist(ctx, id)
	}
	return nil
}

// mustExist MySQL 的 RowsAffected 只统计实际变化的行，值未变时需要再确认用户是否存在
func (r *UserRepository) mustExist(ctx context.Context, id uint) error {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return util.ErrUserNotFound
	}
	return nil
}

// SetPrimarySubjectOnce 只有学生且尚未选择时才会写入，返回是否真的更新了
func (r *UserRepository) SetPrimarySubjectOnce(ctx context.Context, userID, subjectID uint) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND role = ? AND primary_subject_id IS NULL", userID, model.Student).
		Update("primary_subject_id", subjectID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *UserRepository) CountByRole(ctx context.Context) (map[model.UserRole]int64, error) {
	var rows []struct {
		Role  model.UserRole
		Total int64
	}
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Select("role, COUNT(*) AS total").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[model.UserRole]int64{
		model.SuperAdmin: 0,
		model.QAuthor:    0,
		model.Student:    0,
	}
	for _, row := range rows {
		counts[row.Role] = row.Total
	}
	return counts, nil
}
