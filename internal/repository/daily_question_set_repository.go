package repository

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"

	"gorm.io/gorm"
)

type DailyQuestionSetRepository struct {
	DB *gorm.DB
}

func NewDailyQuestionSetRepository(db *gorm.DB) *DailyQuestionSetRepository {
	return &DailyQuestionSetRepository{DB: db}
}

func (r *DailyQuestionSetRepository) FindByStudentAndDate(ctx context.Context, studentID uint, date string) (*model.DailyQuestionSet, error) {
	var set model.DailyQuestionSet
	err := r.DB.WithContext(ctx).
		Where("student_id = ? AND set_date = ?", studentID, date).
		First(&set).Error
	if err != nil {
		return nil, translate(err, util.ErrSetNotFound, nil)
	}
	return &set, nil
}

// Create 依赖 (student_id, set_date) 唯一索引，并发组题时后写入者得到 ErrSetExists
func (r *DailyQuestionSetRepository) Create(ctx context.Context, set *model.DailyQuestionSet) error {
	err := r.DB.WithContext(ctx).Create(set).Error
	return translate(err, nil, util.ErrSetExists)
}

// CompleteWithAttempts 在同一事务里条件更新题组并追加答题流水。
// 题组已完成时返回 ErrSetAlreadyCompleted，事务回滚，不写任何流水。
func (r *DailyQuestionSetRepository) CompleteWithAttempts(ctx context.Context, setID string, score int, attempts []model.StudentAttempt) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.DailyQuestionSet{}).
			Where("id = ? AND completed = ?", setID, false).
			Updates(map[string]interface{}{
				"completed": true,
				"score":     score,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrSetAlreadyCompleted
		}

		if len(attempts) == 0 {
			return nil
		}
		return tx.Create(&attempts).Error
	})
}

func (r *DailyQuestionSetRepository) Count(ctx context.Context) (total int64, completed int64, err error) {
	db := r.DB.WithContext(ctx).Model(&model.DailyQuestionSet{})
	if err = db.Count(&total).Error; err != nil {
		return
	}
	err = r.DB.WithContext(ctx).Model(&model.DailyQuestionSet{}).Where("completed = ?", true).Count(&completed).Error
	return
}
