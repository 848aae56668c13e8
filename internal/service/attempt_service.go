package service

import (
	"context"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"
)

type AttemptService struct {
	Attempts AttemptStore
}

func NewAttemptService(attempts AttemptStore) *AttemptService {
	return &AttemptService{Attempts: attempts}
}

// History 学生自己的答题记录，最新的在前
func (s *AttemptService) History(ctx context.Context, studentID uint, page, limit int) ([]repository.AttemptHistoryRow, int64, int, int, error) {
	page, limit = util.NormalizePage(page, limit)
	rows, total, err := s.Attempts.ListByStudent(ctx, studentID, page, limit)
	if err != nil {
		return nil, 0, page, limit, err
	}
	if rows == nil {
		rows = []repository.AttemptHistoryRow{}
	}
	return rows, total, page, limit, nil
}
