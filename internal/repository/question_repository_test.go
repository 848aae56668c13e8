package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionColumns = []string{"id", "created_at", "title", "subject_id", "correct_option"}

func TestQuestionRepository_ListUnattempted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionRepository(db)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE subject_id = ? AND id NOT IN (?,?) AND `questions`.`deleted_at` IS NULL ORDER BY created_at asc,id asc")).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(3, created, "q3", 1, "A").
			AddRow(4, created.Add(time.Minute), "q4", 1, "B"))

	qs, err := repo.ListUnattempted(context.Background(), 1, []uint{1, 2}, 10)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.EqualValues(t, 3, qs[0].ID)
	assert.EqualValues(t, 4, qs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_ListUnattemptedWithoutHistory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionRepository(db)

	// 没有答题记录时不能生成 NOT IN (NULL)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE subject_id = ? AND `questions`.`deleted_at` IS NULL ORDER BY")).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	qs, err := repo.ListUnattempted(context.Background(), 1, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, qs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_FindByIDsIncludesDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `questions` WHERE id IN (?,?)")).
		WillReturnRows(sqlmock.NewRows(questionColumns).AddRow(1, time.Now(), "q1", 1, "D"))

	qs, err := repo.FindByIDs(context.Background(), []uint{1, 2})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "D", qs[0].CorrectOption)

	qs, err = repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, qs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
