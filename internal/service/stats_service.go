package service

import (
	"context"
	"exam_prep_backend/internal/model"
	"fmt"
	"math"
)

// StatsService 管理员统计，结果缓存 60 秒
type StatsService struct {
	Users     UserStore
	Subjects  SubjectStore
	Questions QuestionStore
	Sets      DailySetStore
	Attempts  AttemptStore
	cache     Cache
}

func NewStatsService(users UserStore, subjects SubjectStore, questions QuestionStore, sets DailySetStore, attempts AttemptStore, cache Cache) *StatsService {
	return &StatsService{
		Users:     users,
		Subjects:  subjects,
		Questions: questions,
		Sets:      sets,
		Attempts:  attempts,
		cache:     cache,
	}
}

func (s *StatsService) Platform(ctx context.Context) (*model.PlatformStats, error) {
	var stats model.PlatformStats
	if s.cache.get(ctx, platformStatsKey, &stats) {
		return &stats, nil
	}

	var err error
	if stats.UsersByRole, err = s.Users.CountByRole(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.Subjects, err = s.Subjects.Count(ctx); err != nil {
		return nil, fmt.Errorf("count subjects: %w", err)
	}
	if stats.Questions, err = s.Questions.Count(ctx); err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	if stats.DailySets, stats.CompletedSets, err = s.Sets.Count(ctx); err != nil {
		return nil, fmt.Errorf("count daily sets: %w", err)
	}
	if stats.Attempts, stats.CorrectAttempts, err = s.Attempts.Count(ctx); err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}
	if stats.Attempts > 0 {
		ratio := float64(stats.CorrectAttempts) / float64(stats.Attempts) * 100
		stats.AccuracyPercent = math.Round(ratio*100) / 100
	}

	s.cache.set(ctx, platformStatsKey, &stats, platformStatsTTL)
	return &stats, nil
}
