package service

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
)

// 服务层依赖的存储接口，由 repository 包的 gorm 实现满足

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, role model.UserRole, page, limit int) ([]model.User, int64, error)
	UpdateRole(ctx context.Context, id uint, role model.UserRole) error
	SetDisabled(ctx context.Context, id uint, disabled bool) error
	SetPrimarySubjectOnce(ctx context.Context, userID, subjectID uint) (bool, error)
	CountByRole(ctx context.Context) (map[model.UserRole]int64, error)
}

type SubjectStore interface {
	Create(ctx context.Context, subject *model.Subject) error
	FindByID(ctx context.Context, id uint) (*model.Subject, error)
	List(ctx context.Context) ([]model.Subject, error)
	Update(ctx context.Context, subject *model.Subject) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type QuestionStore interface {
	Create(ctx context.Context, q *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	List(ctx context.Context, f repository.QuestionFilter) ([]model.Question, int64, error)
	Update(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, id uint) error
	ListUnattempted(ctx context.Context, subjectID uint, attempted []uint, limit int) ([]model.Question, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error)
	CountBySubject(ctx context.Context, subjectID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type DailySetStore interface {
	FindByStudentAndDate(ctx context.Context, studentID uint, date string) (*model.DailyQuestionSet, error)
	Create(ctx context.Context, set *model.DailyQuestionSet) error
	CompleteWithAttempts(ctx context.Context, setID string, score int, attempts []model.StudentAttempt) error
	Count(ctx context.Context) (total int64, completed int64, err error)
}

type AttemptStore interface {
	AttemptedQuestionIDs(ctx context.Context, studentID uint) ([]uint, error)
	ListByStudent(ctx context.Context, studentID uint, page, limit int) ([]repository.AttemptHistoryRow, int64, error)
	Count(ctx context.Context) (total int64, correct int64, err error)
}

var (
	_ UserStore     = (*repository.UserRepository)(nil)
	_ SubjectStore  = (*repository.SubjectRepository)(nil)
	_ QuestionStore = (*repository.QuestionRepository)(nil)
	_ DailySetStore = (*repository.DailyQuestionSetRepository)(nil)
	_ AttemptStore  = (*repository.AttemptRepository)(nil)
)
