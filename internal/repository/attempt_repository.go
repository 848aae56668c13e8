package repository

import (
	"context"
	"exam_prep_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// AttemptedQuestionIDs 学生做过的全部题目（去重）
func (r *AttemptRepository) AttemptedQuestionIDs(ctx context.Context, studentID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).Model(&model.StudentAttempt{}).
		Where("student_id = ?", studentID).
		Distinct("question_id").
		Pluck("question_id", &ids).Error
	return ids, err
}

// AttemptHistoryRow 答题记录列表行
type AttemptHistoryRow struct {
	ID             uint      `json:"id"`
	QuestionID     uint      `json:"questionId"`
	QuestionTitle  string    `json:"questionTitle"`
	SubjectID      uint      `json:"subjectId"`
	DailySetID     string    `json:"dailySetId"`
	SelectedOption string    `json:"selectedOption"`
	CorrectOption  string    `json:"correctOption"`
	IsCorrect      bool      `json:"isCorrect"`
	AttemptedAt    time.Time `json:"attemptedAt"`
}

func (r *AttemptRepository) ListByStudent(ctx context.Context, studentID uint, page, limit int) ([]AttemptHistoryRow, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.StudentAttempt{}).
		Where("student_id = ?", studentID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []AttemptHistoryRow
	offset := (page - 1) * limit
	err := r.DB.WithContext(ctx).Table("student_attempts a").
		Select("a.id, a.question_id, q.title AS question_title, q.subject_id, a.daily_set_id, " +
			"a.selected_option, q.correct_option, a.is_correct, a.attempted_at").
		Joins("LEFT JOIN questions q ON q.id = a.question_id").
		Where("a.student_id = ?", studentID).
		Order("a.attempted_at desc, a.id desc").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}

func (r *AttemptRepository) Count(ctx context.Context) (total int64, correct int64, err error) {
	if err = r.DB.WithContext(ctx).Model(&model.StudentAttempt{}).Count(&total).Error; err != nil {
		return
	}
	err = r.DB.WithContext(ctx).Model(&model.StudentAttempt{}).Where("is_correct = ?", true).Count(&correct).Error
	return
}
