package repository

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.DB.WithContext(ctx).Create(q).Error
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, translate(err, util.ErrQuestionNotFound, nil)
	}
	return &q, nil
}

// QuestionFilter 出题人查看自己题目时的筛选条件
type QuestionFilter struct {
	CreatorID uint
	SubjectID uint
	Page      int
	Limit     int
}

func (r *QuestionRepository) List(ctx context.Context, f QuestionFilter) ([]model.Question, int64, error) {
	var (
		qs    []model.Question
		total int64
	)
	query := r.DB.WithContext(ctx).Model(&model.Question{})
	if f.CreatorID != 0 {
		query = query.Where("creator_id = ?", f.CreatorID)
	}
	if f.SubjectID != 0 {
		query = query.Where("subject_id = ?", f.SubjectID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(f.Limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	return r.DB.WithContext(ctx).Save(q).Error
}

func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}

// ListUnattempted 取科目下未做过的题，按创建时间升序，最多 limit 道
func (r *QuestionRepository) ListUnattempted(ctx context.Context, subjectID uint, attempted []uint, limit int) ([]model.Question, error) {
	var qs []model.Question
	query := r.DB.WithContext(ctx).Where("subject_id = ?", subjectID)
	// 空切片会生成 NOT IN (NULL)，把所有行都过滤掉
	if len(attempted) > 0 {
		query = query.Where("id NOT IN ?", attempted)
	}
	err := query.Order("created_at asc").Order("id asc").Limit(limit).Find(&qs).Error
	return qs, err
}

// FindByIDs 包含已软删除的题，已组进题组的题被删除后仍可判分
func (r *QuestionRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error) {
	var qs []model.Question
	if len(ids) == 0 {
		return qs, nil
	}
	err := r.DB.WithContext(ctx).Unscoped().Where("id IN ?", ids).Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) CountBySubject(ctx context.Context, subjectID uint) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.Question{}).Where("subject_id = ?", subjectID).Count(&total).Error
	return total, err
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.Question{}).Count(&total).Error
	return total, err
}
