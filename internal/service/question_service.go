package service

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/logger"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
)

type QuestionInput struct {
	Title         string           `json:"title" binding:"required"`
	Content       string           `json:"content" binding:"required"`
	OptionA       string           `json:"optionA" binding:"required"`
	OptionB       string           `json:"optionB" binding:"required"`
	OptionC       string           `json:"optionC" binding:"required"`
	OptionD       string           `json:"optionD" binding:"required"`
	CorrectOption string           `json:"correctOption" binding:"required"`
	Difficulty    model.Difficulty `json:"difficulty"`
	SubjectID     uint             `json:"subjectId" binding:"required"`
}

// QuestionService 出题人维护自己的题目
type QuestionService struct {
	Questions QuestionStore
	Subjects  SubjectStore
	Storage   *StorageService
	cache     Cache
}

func NewQuestionService(questions QuestionStore, subjects SubjectStore, storage *StorageService, cache Cache) *QuestionService {
	return &QuestionService{
		Questions: questions,
		Subjects:  subjects,
		Storage:   storage,
		cache:     cache,
	}
}

func (in QuestionInput) normalize() (QuestionInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.CorrectOption = strings.ToUpper(strings.TrimSpace(in.CorrectOption))
	if in.Difficulty == "" {
		in.Difficulty = model.Medium
	}
	in.Difficulty = model.Difficulty(strings.ToUpper(string(in.Difficulty)))

	if in.Title == "" || in.Content == "" {
		return in, fmt.Errorf("%w: title and content are required", util.ErrInvalidQuestion)
	}
	for _, opt := range []string{in.OptionA, in.OptionB, in.OptionC, in.OptionD} {
		if strings.TrimSpace(opt) == "" {
			return in, fmt.Errorf("%w: all four options are required", util.ErrInvalidQuestion)
		}
	}
	if !model.ValidOption(in.CorrectOption) {
		return in, fmt.Errorf("%w: correct option must be one of A-D", util.ErrInvalidQuestion)
	}
	if !in.Difficulty.Valid() {
		return in, fmt.Errorf("%w: unknown difficulty %q", util.ErrInvalidQuestion, in.Difficulty)
	}
	return in, nil
}

func (in QuestionInput) apply(q *model.Question) {
	q.Title = in.Title
	q.Content = in.Content
	q.OptionA = in.OptionA
	q.OptionB = in.OptionB
	q.OptionC = in.OptionC
	q.OptionD = in.OptionD
	q.CorrectOption = in.CorrectOption
	q.Difficulty = in.Difficulty
	q.SubjectID = in.SubjectID
}

func (s *QuestionService) Create(ctx context.Context, author *model.User, in QuestionInput) (*model.Question, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	if _, err := s.Subjects.FindByID(ctx, in.SubjectID); err != nil {
		return nil, err
	}

	q := &model.Question{CreatorID: author.ID}
	in.apply(q)
	if err := s.Questions.Create(ctx, q); err != nil {
		return nil, err
	}
	s.cache.del(ctx, platformStatsKey)

	logger.Log.Info("question created",
		zap.Uint("questionID", q.ID), zap.Uint("authorID", author.ID), zap.Uint("subjectID", q.SubjectID))
	return q, nil
}

// owned 取出题目并校验归属
func (s *QuestionService) owned(ctx context.Context, author *model.User, id uint) (*model.Question, error) {
	q, err := s.Questions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.CreatorID != author.ID {
		return nil, util.ErrNotQuestionOwner
	}
	return q, nil
}

func (s *QuestionService) Get(ctx context.Context, author *model.User, id uint) (*model.Question, error) {
	return s.owned(ctx, author, id)
}

func (s *QuestionService) List(ctx context.Context, author *model.User, subjectID uint, page, limit int) ([]model.Question, int64, error) {
	page, limit = util.NormalizePage(page, limit)
	return s.Questions.List(ctx, repository.QuestionFilter{
		CreatorID: author.ID,
		SubjectID: subjectID,
		Page:      page,
		Limit:     limit,
	})
}

// Update 已组进题组的题目修改后，后续判分使用新的正确答案
func (s *QuestionService) Update(ctx context.Context, author *model.User, id uint, in QuestionInput) (*model.Question, error) {
	q, err := s.owned(ctx, author, id)
	if err != nil {
		return nil, err
	}
	in, err = in.normalize()
	if err != nil {
		return nil, err
	}
	if in.SubjectID != q.SubjectID {
		if _, err := s.Subjects.FindByID(ctx, in.SubjectID); err != nil {
			return nil, err
		}
	}

	in.apply(q)
	if err := s.Questions.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(ctx context.Context, author *model.User, id uint) error {
	if _, err := s.owned(ctx, author, id); err != nil {
		return err
	}
	if err := s.Questions.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.del(ctx, platformStatsKey)
	logger.Log.Info("question deleted", zap.Uint("questionID", id), zap.Uint("authorID", author.ID))
	return nil
}

// UploadImage 上传题目配图并回写 ImageURL
func (s *QuestionService) UploadImage(ctx context.Context, author *model.User, id uint, filename string, reader io.Reader, size int64, contentType string) (*model.Question, error) {
	q, err := s.owned(ctx, author, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	objectName := fmt.Sprintf("questions/%d/%d%s", q.ID, time.Now().UnixNano(), ext)
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload question image: %w", err)
	}

	q.ImageURL = url
	if err := s.Questions.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}
