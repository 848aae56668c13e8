package service

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptService_History(t *testing.T) {
	ctx := context.Background()
	attempts := &fakeAttempts{}
	svc := NewAttemptService(attempts)

	t.Run("empty history is an empty list", func(t *testing.T) {
		rows, total, page, limit, err := svc.History(ctx, 3, 1, 10)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
		assert.EqualValues(t, 0, total)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)
	})

	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	var ledger []model.StudentAttempt
	for i := 0; i < 5; i++ {
		ledger = append(ledger, model.StudentAttempt{
			StudentID:      3,
			QuestionID:     uint(i + 1),
			DailySetID:     "set-1",
			SelectedOption: "A",
			IsCorrect:      i%2 == 0,
			AttemptedAt:    base.Add(time.Duration(i) * time.Minute),
		})
	}
	// 其他学生的记录不可见
	ledger = append(ledger, model.StudentAttempt{StudentID: 4, QuestionID: 9, SelectedOption: "B", AttemptedAt: base})
	attempts.append(ledger)

	t.Run("newest first with normalized paging", func(t *testing.T) {
		rows, total, page, limit, err := svc.History(ctx, 3, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page)
		assert.Equal(t, util.DefaultPageSize, limit)
		assert.EqualValues(t, 5, total)
		require.Len(t, rows, 5)
		for i := 1; i < len(rows); i++ {
			assert.False(t, rows[i].AttemptedAt.After(rows[i-1].AttemptedAt))
		}
		assert.EqualValues(t, 5, rows[0].QuestionID)
	})

	t.Run("limit is capped", func(t *testing.T) {
		_, _, _, limit, err := svc.History(ctx, 3, 1, 1000)
		require.NoError(t, err)
		assert.Equal(t, util.MaxPageSize, limit)
	})

	t.Run("second page", func(t *testing.T) {
		rows, total, _, _, err := svc.History(ctx, 3, 2, 2)
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		require.Len(t, rows, 2)
		assert.EqualValues(t, 3, rows[0].QuestionID)
		assert.EqualValues(t, 2, rows[1].QuestionID)
	})

	t.Run("page past the end is an empty list", func(t *testing.T) {
		rows, total, _, _, err := svc.History(ctx, 3, 9, 2)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
		assert.EqualValues(t, 5, total)
	})
}
