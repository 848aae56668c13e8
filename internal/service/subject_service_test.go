package service

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectService_CRUD(t *testing.T) {
	ctx := context.Background()
	subjects := newFakeSubjects()
	questions := newFakeQuestions()
	svc := NewSubjectService(subjects, questions, NewCache(nil))

	math, err := svc.Create(ctx, SubjectInput{Name: " Mathematics ", ExamCategory: "JEE"})
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", math.Name)

	_, err = svc.Create(ctx, SubjectInput{Name: "Mathematics", ExamCategory: "CAT"})
	assert.ErrorIs(t, err, util.ErrSubjectNameTaken)

	_, err = svc.Create(ctx, SubjectInput{Name: " ", ExamCategory: "CAT"})
	assert.ErrorIs(t, err, util.ErrInvalidSubject)

	updated, err := svc.Update(ctx, math.ID, SubjectInput{ExamCategory: "CAT", Description: "quant"})
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", updated.Name)
	assert.Equal(t, "CAT", updated.ExamCategory)

	_, err = svc.Update(ctx, 99, SubjectInput{Name: "x"})
	assert.ErrorIs(t, err, util.ErrSubjectNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, questions.Create(ctx, &model.Question{Title: "q", SubjectID: math.ID, CorrectOption: "A"}))
	assert.ErrorIs(t, svc.Delete(ctx, math.ID), util.ErrSubjectInUse)

	empty, err := svc.Create(ctx, SubjectInput{Name: "Logic", ExamCategory: "CAT"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, empty.ID))
	assert.ErrorIs(t, svc.Delete(ctx, empty.ID), util.ErrSubjectNotFound)
}
