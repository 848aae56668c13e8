package repository

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	err := r.DB.WithContext(ctx).Create(subject).Error
	return translate(err, nil, util.ErrSubjectNameTaken)
}

func (r *SubjectRepository) FindByID(ctx context.Context, id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.DB.WithContext(ctx).First(&subject, id).Error; err != nil {
		return nil, translate(err, util.ErrSubjectNotFound, nil)
	}
	return &subject, nil
}

func (r *SubjectRepository) List(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.WithContext(ctx).Order("exam_category asc, name asc").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) Update(ctx context.Context, subject *model.Subject) error {
	err := r.DB.WithContext(ctx).Save(subject).Error
	return translate(err, nil, util.ErrSubjectNameTaken)
}

func (r *SubjectRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Subject{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrSubjectNotFound
	}
	return nil
}

func (r *SubjectRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.Subject{}).Count(&total).Error
	return total, err
}
