package service

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"fmt"
	"strings"
)

type SubjectInput struct {
	Name         string `json:"name" binding:"required"`
	ExamCategory string `json:"examCategory" binding:"required"`
	Description  string `json:"description"`
}

// SubjectService 科目管理；科目列表读多写少，缓存在 Redis
type SubjectService struct {
	Subjects  SubjectStore
	Questions QuestionStore
	cache     Cache
}

func NewSubjectService(subjects SubjectStore, questions QuestionStore, cache Cache) *SubjectService {
	return &SubjectService{
		Subjects:  subjects,
		Questions: questions,
		cache:     cache,
	}
}

func (s *SubjectService) List(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	if s.cache.get(ctx, subjectListCacheKey, &subjects) {
		return subjects, nil
	}

	subjects, err := s.Subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, subjectListCacheKey, subjects, subjectListTTL)
	return subjects, nil
}

func (s *SubjectService) Create(ctx context.Context, in SubjectInput) (*model.Subject, error) {
	subject := &model.Subject{
		Name:         strings.TrimSpace(in.Name),
		ExamCategory: strings.TrimSpace(in.ExamCategory),
		Description:  in.Description,
	}
	if subject.Name == "" || subject.ExamCategory == "" {
		return nil, fmt.Errorf("%w: name and exam category are required", util.ErrInvalidSubject)
	}
	if err := s.Subjects.Create(ctx, subject); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return subject, nil
}

func (s *SubjectService) Update(ctx context.Context, id uint, in SubjectInput) (*model.Subject, error) {
	subject, err := s.Subjects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		subject.Name = name
	}
	if category := strings.TrimSpace(in.ExamCategory); category != "" {
		subject.ExamCategory = category
	}
	subject.Description = in.Description

	if err := s.Subjects.Update(ctx, subject); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return subject, nil
}

// Delete 科目下还有题目时拒绝删除
func (s *SubjectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Subjects.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.Questions.CountBySubject(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return util.ErrSubjectInUse
	}
	if err := s.Subjects.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *SubjectService) invalidate(ctx context.Context) {
	s.cache.del(ctx, subjectListCacheKey, platformStatsKey)
}
